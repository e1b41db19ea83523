package pbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubpathEmptyIsSelf(t *testing.T) {
	p := testProject()
	root := p.MainGroup()
	assert.Same(t, root, root.FindSubpath("", true))
	assert.Same(t, root, root.FindSubpath("", false))
}

func TestFindSubpathCreates(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	b := root.FindSubpath("A/B", true)
	require.NotNil(t, b)
	assert.Equal(t, "B", b.DisplayName())

	a := root.Child("A")
	require.NotNil(t, a)
	assert.Equal(t, KindGroup, a.Kind)
	assert.Same(t, b, a.Child("B"))

	// Creation is idempotent: no duplicate A, same B back.
	again := root.FindSubpath("A/B", true)
	assert.Same(t, b, again)
	assert.Len(t, root.Children, 1)
	assert.Len(t, a.Children, 1)
}

func TestFindSubpathMissWithoutCreate(t *testing.T) {
	p := testProject()
	root := p.MainGroup()
	root.NewGroup("Present", "", SourceTreeGroup)

	before := len(root.Children)
	assert.Nil(t, root.FindSubpath("X", false))
	assert.Nil(t, root.FindSubpath("Present/X/Y", false))
	assert.Len(t, root.Children, before)
	assert.Empty(t, root.Child("Present").Children)
}

func TestFindSubpathMatchesFirstInOrder(t *testing.T) {
	p := testProject()
	root := p.MainGroup()
	first, _ := root.NewGroup("Dup", "", SourceTreeGroup)
	root.NewGroup("Dup", "", SourceTreeGroup)

	assert.Same(t, first, root.FindSubpath("Dup", false))
}

func TestFindSubpathIsCaseSensitive(t *testing.T) {
	p := testProject()
	root := p.MainGroup()
	root.NewGroup("Sources", "", SourceTreeGroup)

	assert.Nil(t, root.FindSubpath("sources", false))
}

func TestSortByType(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	fileA := p.NewNode(KindFileReference)
	fileA.Name = "FileA"
	groupB := p.NewNode(KindGroup)
	groupB.Name = "GroupB"
	fileC := p.NewNode(KindFileReference)
	fileC.Name = "FileC"
	groupA := p.NewNode(KindGroup)
	groupA.Name = "GroupA"
	for _, c := range []*Node{fileA, groupB, fileC, groupA} {
		root.Add(c)
	}

	root.SortByType()

	var got []string
	for _, c := range root.Children {
		got = append(got, c.DisplayName())
	}
	assert.Equal(t, []string{"GroupA", "GroupB", "FileA", "FileC"}, got)
}

func TestSortByTypeIsStableForEqualNames(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	first := p.NewNode(KindFileReference)
	first.Name = "Same"
	second := p.NewNode(KindFileReference)
	second.Name = "Same"
	root.Add(first)
	root.Add(second)

	root.SortByType()

	assert.Same(t, first, root.Children[0])
	assert.Same(t, second, root.Children[1])
}

func TestAddPreservesOrder(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	z := p.NewNode(KindFileReference)
	z.Name = "z"
	a := p.NewNode(KindFileReference)
	a.Name = "a"
	got := root.Add(z)
	assert.Len(t, got, 1)
	got = root.Add(a)
	require.Len(t, got, 2)
	assert.Same(t, z, got[0])
	assert.Same(t, a, got[1])
}

func TestRemoveChildrenRecursively(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	g1, _ := root.NewGroup("G1", "", SourceTreeGroup)
	g2, _ := g1.NewGroup("G2", "", SourceTreeGroup)
	leaf := p.NewNode(KindFileReference)
	leaf.Path = "deep.c"
	g2.Add(leaf)
	top := p.NewNode(KindFileReference)
	top.Path = "top.c"
	root.Add(top)

	before := p.Len()
	root.RemoveChildrenRecursively()

	assert.Empty(t, root.Children)
	for _, n := range []*Node{g1, g2, leaf, top} {
		assert.False(t, p.Contains(n), "node %q should be gone from the project", n.DisplayName())
	}
	assert.Equal(t, before-4, p.Len())

	// Safe on an already-empty group.
	root.RemoveChildrenRecursively()
	assert.Empty(t, root.Children)
}

func TestRemoveFromProjectDetachesSubtree(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	g1, _ := root.NewGroup("G1", "", SourceTreeGroup)
	g2, _ := g1.NewGroup("G2", "", SourceTreeGroup)
	sibling, _ := root.NewGroup("Sibling", "", SourceTreeGroup)

	g1.RemoveFromProject()

	assert.Nil(t, root.Child("G1"))
	assert.NotNil(t, root.Child("Sibling"))
	assert.False(t, p.Contains(g1))
	assert.False(t, p.Contains(g2))
	assert.True(t, p.Contains(sibling))
}
