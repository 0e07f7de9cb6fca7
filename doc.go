/*
Package locsheet converts translation files between a nested object literal
and a flat two-column spreadsheet, so translators can work in a spreadsheet
while the application keeps its typed translation module.

The literal side is a default-exported const object whose leaves are
single-quoted strings:

	export default {
	  home: {
	    title: 'Welcome',
	  },
	  footer: 'Bye',
	} as const;

The table side has a Key/Value header and one row per leaf, keyed by the
dot-joined path of the leaf:

	Key         | Value
	home.title  | Welcome
	footer      | Bye

1. Whole-file Conversion

Most callers only need Convert, which runs the full pipeline in either
direction and reads or writes XLSX (or CSV) bytes:

	xlsx, err := locsheet.Convert(locsheet.LiteralToTable, src)
	if err != nil {
		// handle error
	}

	ts, err := locsheet.Convert(locsheet.TableToLiteral, xlsx)

2. The Individual Steps

Each stage is available on its own. ParseLiteral reads a module into a
*tree.Node without evaluating it, Flatten and Unflatten move between the tree
and []Entry, WriteTable and ReadTable move between entries and a Table, and
MarshalLiteral writes the module text back:

	root, err := locsheet.ParseLiteral(src)
	entries := locsheet.Flatten(root)
	table := locsheet.WriteTable(entries)

	back, err := locsheet.ReadTable(table)
	root2, err := locsheet.Unflatten(back)
	text, err := locsheet.MarshalLiteral(root2)

Key order is kept through every step. Behaviour is tuned with functional
options such as MaxDepth, LooseValues, StrictPaths and WithTableFormat.

Every failure matches one of the Err* kinds with errors.Is.
*/
package locsheet
