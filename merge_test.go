// FILE: miniconf/merge_test.go
package miniconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, Path{"a"}, splitPath("a"))
	assert.Equal(t, Path{"part2", "subpart1", "value1"}, splitPath("part2.subpart1.value1"))
	assert.Equal(t, "part2.subpart1.value1", Path{"part2", "subpart1", "value1"}.String())
}

func TestTreeConversion(t *testing.T) {
	tree := make(map[string]any)
	setTreeValue(tree, splitPath("a"), int64(1))
	setTreeValue(tree, splitPath("b.c"), "deep")
	setTreeValue(tree, splitPath("b.d"), true)

	require.Equal(t, int64(1), tree["a"])
	b, ok := tree["b"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "deep", b["c"])
	assert.Equal(t, true, b["d"])

	flat := flattenTree(tree, nil)
	assert.Equal(t, map[string]any{
		"a":   int64(1),
		"b.c": "deep",
		"b.d": true,
	}, flat)
}

// TestTreeLeafReplacedByObject covers a leaf and a deeper path sharing a
// prefix: descending replaces the leaf with an object.
func TestTreeLeafReplacedByObject(t *testing.T) {
	tree := make(map[string]any)
	setTreeValue(tree, splitPath("x"), "leaf")
	setTreeValue(tree, splitPath("x.y"), "nested")

	x, ok := tree["x"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nested", x["y"])
}

func TestImportLeafTyping(t *testing.T) {
	conf := New()
	conf.Option("declared.int").DefaultInt(0)
	conf.Option("declared.float").DefaultFloat(0)

	t.Run("DeclaredIntCoercion", func(t *testing.T) {
		v, err := conf.importLeaf("declared.int", float64(7))
		require.NoError(t, err)
		assert.Equal(t, NewInt(7), v)
	})

	t.Run("DeclaredFloatKeepsFloat", func(t *testing.T) {
		v, err := conf.importLeaf("declared.float", float64(7))
		require.NoError(t, err)
		assert.Equal(t, NewFloat(7), v)
	})

	t.Run("StrayNumberBecomesFloat", func(t *testing.T) {
		v, err := conf.importLeaf("stray", int64(3))
		require.NoError(t, err)
		assert.Equal(t, NewFloat(3), v)
	})

	t.Run("BoolAndStringPassThrough", func(t *testing.T) {
		v, err := conf.importLeaf("stray", true)
		require.NoError(t, err)
		assert.Equal(t, NewBool(true), v)

		v, err = conf.importLeaf("stray", "text")
		require.NoError(t, err)
		assert.Equal(t, NewString("text"), v)
	})

	t.Run("UnsupportedNode", func(t *testing.T) {
		_, err := conf.importLeaf("stray", []any{1, 2})
		assert.Error(t, err)
	})
}

// TestMergeTreeBadSibling pins that an unparseable node fails the import
// call without stopping traversal of its siblings.
func TestMergeTreeBadSibling(t *testing.T) {
	conf := New()
	conf.Option("good").DefaultString("")

	err := conf.mergeTree(map[string]any{
		"good": "kept",
		"bad":  []any{1, 2, 3},
	})
	assert.Error(t, err)

	s, gerr := conf.GetString("good")
	require.NoError(t, gerr)
	assert.Equal(t, "kept", s)
}
