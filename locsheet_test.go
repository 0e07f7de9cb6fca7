package locsheet_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locsheet "github.com/KimNorgaard/go-locsheet"
	"github.com/KimNorgaard/go-locsheet/internal/testutil"
	"github.com/KimNorgaard/go-locsheet/tree"
)

func TestParseLiteral(t *testing.T) {
	root, err := locsheet.ParseLiteral(testutil.Fixture(t, "translations.ts"))
	require.NoError(t, err)

	require.Equal(t, []string{"home", "nav-bar", "footer"}, root.Keys())
	home, ok := root.Get("home")
	require.True(t, ok)
	subtitle, ok := home.(*tree.Node).Get("subtitle")
	require.True(t, ok)
	assert.Equal(t, tree.Leaf("It's good to see you"), subtitle)
}

func TestParseLiteral_Wrappers(t *testing.T) {
	want := tree.NewNode()
	want.Set("a", tree.Leaf("x"))

	for _, src := range []string{
		"export default { a: 'x' } as const;",
		"export default { a: 'x' }",
		"{ a: 'x' } as const",
		"{ a: 'x', }",
		"// header\n{ /* only */ a: 'x' }\n",
	} {
		t.Run(src, func(t *testing.T) {
			root, err := locsheet.ParseLiteral([]byte(src))
			require.NoError(t, err)
			require.True(t, tree.Equal(want, root))
		})
	}
}

func TestParseLiteral_RepeatedKeys(t *testing.T) {
	root, err := locsheet.ParseLiteral([]byte("{ a: 'x', b: 'y', a: 'z' }"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, root.Keys())
	v, _ := root.Get("a")
	require.Equal(t, tree.Leaf("z"), v)
}

func TestParseLiteral_KeywordAndNumericKeys(t *testing.T) {
	root, err := locsheet.ParseLiteral([]byte("{ default: 'd', const: 'c', 'with space': 's' }"))
	require.NoError(t, err)
	require.Equal(t, []string{"default", "const", "with space"}, root.Keys())

	_, err = locsheet.ParseLiteral([]byte("{ 1: 'one' }"))
	require.ErrorIs(t, err, locsheet.ErrMalformedLiteral)

	root, err = locsheet.ParseLiteral([]byte("{ 1: 'one', 2.50: 'two' }"), locsheet.LooseValues())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2.5"}, root.Keys())
}

func TestParseLiteral_LooseValues(t *testing.T) {
	src := `export default {
  label: "double",
  count: 3,
  ratio: 1.50,
  big: 1e21,
  tiny: 0.0000001,
  on: true,
  off: false,
  none: null,
  missing: undefined,
  list: ['a', 1, null, ['b', 'c'], undefined],
  empty: [],
} as const;`

	_, err := locsheet.ParseLiteral([]byte(src))
	require.ErrorIs(t, err, locsheet.ErrMalformedLiteral)

	root, err := locsheet.ParseLiteral([]byte(src), locsheet.LooseValues())
	require.NoError(t, err)
	require.Equal(t, []locsheet.Entry{
		{Key: "label", Value: "double"},
		{Key: "count", Value: "3"},
		{Key: "ratio", Value: "1.5"},
		{Key: "big", Value: "1e+21"},
		{Key: "tiny", Value: "1e-7"},
		{Key: "on", Value: "true"},
		{Key: "off", Value: "false"},
		{Key: "none", Value: "null"},
		{Key: "missing", Value: "undefined"},
		{Key: "list", Value: "a,1,,b,c,"},
		{Key: "empty", Value: ""},
	}, locsheet.Flatten(root))
}

func TestParseLiteral_Errors(t *testing.T) {
	src := "export default {\n  a: 'x',\n  b: 42,\n  c: 'y' 'z',\n}"
	_, err := locsheet.ParseLiteral([]byte(src))
	require.Error(t, err)
	require.ErrorIs(t, err, locsheet.ErrMalformedLiteral)
	require.False(t, errors.Is(err, locsheet.ErrEmptyTable))

	var perrs locsheet.ParseErrors
	require.True(t, errors.As(err, &perrs))
	require.Len(t, perrs, 2)
	assert.Equal(t, 3, perrs[0].Line)
	assert.Equal(t, 6, perrs[0].Column)
	assert.Equal(t, 4, perrs[1].Line)
	assert.True(t, strings.HasPrefix(err.Error(), "locsheet: parsing error at line 3, column 6:"), err.Error())
}

func TestParseLiteral_MaxDepth(t *testing.T) {
	src := []byte("{ a: { b: { c: 'x' } } }")

	_, err := locsheet.ParseLiteral(src, locsheet.MaxDepth(3))
	require.NoError(t, err)

	_, err = locsheet.ParseLiteral(src, locsheet.MaxDepth(2))
	require.ErrorIs(t, err, locsheet.ErrMalformedLiteral)
	require.Contains(t, err.Error(), "maximum nesting depth of 2 exceeded")

	_, err = locsheet.ParseLiteral(src, locsheet.MaxDepth(0))
	require.Error(t, err)
	require.NotErrorIs(t, err, locsheet.ErrMalformedLiteral)
}

func TestDecoder(t *testing.T) {
	root, err := locsheet.NewDecoder(bytes.NewReader(testutil.Fixture(t, "translations.ts"))).Decode()
	require.NoError(t, err)
	require.Equal(t, 3, root.Len())

	_, err = locsheet.NewDecoder(nil).Decode()
	require.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDecoder_ReadError(t *testing.T) {
	_, err := locsheet.NewDecoder(errReader{}).Decode()
	require.EqualError(t, err, "read failed")
}

func TestMarshalLiteral(t *testing.T) {
	root, err := locsheet.ParseLiteral(testutil.Fixture(t, "translations.ts"))
	require.NoError(t, err)

	out, err := locsheet.MarshalLiteral(root)
	require.NoError(t, err)
	require.Equal(t, `export default {
  home: {
    title: 'Welcome',
    subtitle: 'It\'s good to see you'
  },
  'nav-bar': {
    signIn: 'Sign in',
    signOut: 'Sign out'
  },
  footer: 'Bye'
} as const;
`, string(out))
}

func TestMarshalLiteral_Quoting(t *testing.T) {
	root := tree.NewNode()
	root.Set("navBar", tree.Leaf("it's fine"))
	root.Set("nav-bar", tree.Leaf(`say "hi"`))

	out, err := locsheet.MarshalLiteral(root)
	require.NoError(t, err)
	require.Equal(t, "export default {\n  navBar: 'it\\'s fine',\n  'nav-bar': 'say \"hi\"'\n} as const;\n", string(out))

	back, err := locsheet.ParseLiteral(out)
	require.NoError(t, err)
	require.True(t, tree.Equal(root, back))
}

func TestMarshalLiteral_Errors(t *testing.T) {
	_, err := locsheet.MarshalLiteral(nil)
	require.Error(t, err)

	_, err = locsheet.MarshalLiteral(tree.NewNode(), locsheet.Indent(-1))
	require.Error(t, err)
}

func TestEncoder_Indent(t *testing.T) {
	root := tree.NewNode()
	inner := tree.NewNode()
	inner.Set("b", tree.Leaf("x"))
	root.Set("a", inner)

	var buf bytes.Buffer
	require.NoError(t, locsheet.NewEncoder(&buf, locsheet.Indent(4)).Encode(root))
	require.Equal(t, "export default {\n    a: {\n        b: 'x'\n    }\n} as const;\n", buf.String())
}

func TestEmptyObjectsVanishFromTable(t *testing.T) {
	root, err := locsheet.ParseLiteral([]byte("{ a: {}, b: { c: {} }, d: 'x' }"))
	require.NoError(t, err)
	require.Equal(t, []locsheet.Entry{{Key: "d", Value: "x"}}, locsheet.Flatten(root))
}
