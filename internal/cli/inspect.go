package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	locsheet "github.com/KimNorgaard/go-locsheet"
)

func newInspectCommand() *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show the Key/Value rows of a module or spreadsheet",
		Long: `Print the flattened Key/Value rows of a translation module or spreadsheet
as a table, together with the column widths a converted workbook would use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger := getLogger(cmd.Context())
			input := args[0]

			dir, err := resolveDirection(direction, input)
			if err != nil {
				return err
			}
			format, err := tableFormat(cfg, dir, input, "")
			if err != nil {
				return err
			}
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			conv, err := locsheet.NewConverter(append(cfg.ConverterOptions(logger), locsheet.WithTableFormat(format))...)
			if err != nil {
				return err
			}
			entries, err := conv.Inspect(dir, data)
			if err != nil {
				return err
			}
			renderEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Read the input as the source of this direction")

	return cmd
}

func renderEntries(w io.Writer, entries []locsheet.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "(0 entries)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{locsheet.HeaderKey, locsheet.HeaderValue})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, e.Value})
	}
	t.Render()

	widths := locsheet.Widths(entries)
	_, _ = fmt.Fprintf(w, "(%d entries, column widths: key=%d value=%d)\n", len(entries), widths.Key, widths.Value)
}
