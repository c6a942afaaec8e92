package treefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
value: root
left: left
right:
  value: right
  right:
    value: rightright
    left: rightrightleft
`

func TestParseExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, err := Parse(strings.NewReader(example))
	require.NoError(t, err)
	want := bintree.MustBuild("root",
		bintree.Left("left"),
		bintree.Right("right",
			bintree.Right("rightright",
				bintree.Left("rightrightleft"))))
	assert.True(t, bintree.Equal(tree, want), "unexpected layout %v", tree.Layout())
	assert.NoError(t, tree.Check())
}

func TestParseScalarRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, err := Parse(strings.NewReader("lonely\n"))
	require.NoError(t, err)
	assert.Equal(t, "lonely", tree.Root().Value())
	assert.True(t, tree.Root().IsLeaf())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	cases := map[string]string{
		"empty":             "",
		"right before left": "value: r\nright: b\nleft: a\n",
		"missing value":     "left: a\n",
		"unknown key":       "value: r\nmiddle: m\n",
		"sequence":          "- a\n- b\n",
		"mapping as value":  "value: {a: b}\n",
		"duplicate value":   "value: r\nleft: {value: a, value: b}\n",
		"broken yaml":       "value: [\n",
	}
	for name, input := range cases {
		_, err := Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrNotATreeFile, name)
	}
	_, err := Parse(strings.NewReader("value: r\nright: b\nleft: a\n"))
	assert.ErrorIs(t, err, bintree.ErrMalformedLiteral)
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	dir := t.TempDir()
	name := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(name, []byte(example), 0o644))
	tree, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 4, tree.Height())

	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrNotATreeFile)
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
