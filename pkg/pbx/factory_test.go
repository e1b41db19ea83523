package pbx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferencePlainFile(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	ref, err := root.NewReference("/workspace/demo/Sources/main.swift", SourceTreeGroup)
	require.NoError(t, err)

	assert.Equal(t, KindFileReference, ref.Kind)
	assert.Equal(t, "Sources/main.swift", ref.Path)
	assert.Equal(t, SourceTreeGroup, ref.SourceTree)
	assert.Equal(t, "sourcecode.swift", ref.LastKnownFileType)
	assert.Equal(t, "main.swift", ref.DisplayName())
	require.Len(t, root.Children, 1)
	assert.Same(t, ref, root.Children[0])
}

func TestNewReferenceRelativePathAnchorsAtGroup(t *testing.T) {
	p := testProject()
	sources, err := p.MainGroup().NewGroup("Sources", "/workspace/demo/Sources", SourceTreeGroup)
	require.NoError(t, err)

	ref, err := sources.NewReference("util.c", SourceTreeGroup)
	require.NoError(t, err)

	assert.Equal(t, "util.c", ref.Path)
	real, err := ref.RealPath()
	require.NoError(t, err)
	assert.Equal(t, "/workspace/demo/Sources/util.c", real)
}

func TestNewReferenceUnknownExtension(t *testing.T) {
	p := testProject()
	ref, err := p.MainGroup().NewReference("/workspace/demo/data.blob", SourceTreeGroup)
	require.NoError(t, err)
	assert.Empty(t, ref.LastKnownFileType)
}

func TestNewReferenceVersionedContainer(t *testing.T) {
	p := testProject()
	factory := NewFactory(p.Resolver())
	factory.Glob = func(pattern string) ([]string, error) {
		assert.Equal(t, filepath.Join("/workspace/demo/Model.xcdatamodeld", "*.xcdatamodel"), pattern)
		return []string{
			"/workspace/demo/Model.xcdatamodeld/Model 2.xcdatamodel",
			"/workspace/demo/Model.xcdatamodeld/Model.xcdatamodel",
		}, nil
	}
	p.SetFactory(factory)

	vg, err := p.MainGroup().NewReference("/workspace/demo/Model.xcdatamodeld", SourceTreeGroup)
	require.NoError(t, err)

	assert.Equal(t, KindVersionGroup, vg.Kind)
	assert.Equal(t, DefaultVersionGroupType, vg.VersionGroupType)
	require.Len(t, vg.Children, 2)
	assert.Equal(t, "Model 2.xcdatamodel", vg.Children[0].DisplayName())
	assert.Equal(t, "Model.xcdatamodel", vg.Children[1].DisplayName())

	// Lexicographically last version becomes current, and it is a child.
	require.NotNil(t, vg.CurrentVersion)
	assert.Same(t, vg.Children[1], vg.CurrentVersion)
	assert.Equal(t, KindFileReference, vg.CurrentVersion.Kind)
	assert.Contains(t, vg.Children, vg.CurrentVersion)
}

func TestNewReferenceVersionedContainerMissingOnDisk(t *testing.T) {
	p := testProject()

	// No such directory: the default glob matches nothing, leaving an empty
	// version group with no current version.
	vg, err := p.MainGroup().NewReference("/workspace/demo/Ghost.xcdatamodeld", SourceTreeGroup)
	require.NoError(t, err)
	assert.Equal(t, KindVersionGroup, vg.Kind)
	assert.Empty(t, vg.Children)
	assert.Nil(t, vg.CurrentVersion)
}

func TestNewStaticLibrary(t *testing.T) {
	p := testProject()
	factory := NewFactory(p.Resolver())

	ref := factory.NewStaticLibrary(p.MainGroup(), "Demo")
	assert.Equal(t, KindFileReference, ref.Kind)
	assert.Equal(t, "libDemo.a", ref.Path)
	assert.Equal(t, SourceTreeBuildProducts, ref.SourceTree)
	assert.Equal(t, "archive.ar", ref.LastKnownFileType)

	real, err := ref.RealPath()
	require.NoError(t, err)
	assert.Equal(t, "/workspace/demo/build/Products/libDemo.a", real)
}

func TestNewBundle(t *testing.T) {
	p := testProject()
	factory := NewFactory(p.Resolver())

	ref := factory.NewBundle(p.MainGroup(), "DemoResources")
	assert.Equal(t, "DemoResources.bundle", ref.Path)
	assert.Equal(t, SourceTreeBuildProducts, ref.SourceTree)
	assert.Equal(t, "wrapper.plug-in", ref.LastKnownFileType)
}

// Removing the referenced version does not clear the relation: the field
// dangles, matching observed origin behavior.
func TestCurrentVersionDanglesAfterRemoval(t *testing.T) {
	p := testProject()
	vg := p.NewNode(KindVersionGroup)
	vg.Name = "Model.xcdatamodeld"
	p.MainGroup().Add(vg)

	v1 := p.NewNode(KindFileReference)
	v1.Path = "Model.xcdatamodel"
	vg.Add(v1)
	vg.CurrentVersion = v1

	vg.RemoveChildrenRecursively()

	assert.Empty(t, vg.Children)
	assert.Same(t, v1, vg.CurrentVersion)
}
