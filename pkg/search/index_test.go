package search

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(filepath.Join(t.TempDir(), "refs.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = idx.Close()
	})
	return idx
}

func sampleEntries() []*Entry {
	return []*Entry{
		{Group: "Sources", Name: "main.swift", Path: "Sources/main.swift", FileType: "sourcecode.swift", Kind: "file-reference"},
		{Group: "Sources/Core", Name: "util.c", Path: "Sources/Core/util.c", FileType: "sourcecode.c.c", Kind: "file-reference"},
		{Group: "Frameworks", Name: "libDemo.a", Path: "libDemo.a", FileType: "archive.ar", Kind: "file-reference"},
	}
}

func TestReplaceAndCount(t *testing.T) {
	idx := openTestIndex(t)
	require.NoError(t, idx.Replace(sampleEntries()))

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Replace is a full rebuild, not an append.
	require.NoError(t, idx.Replace(sampleEntries()[:1]))
	n, err = idx.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSearchByName(t *testing.T) {
	idx := openTestIndex(t)
	require.NoError(t, idx.Replace(sampleEntries()))

	got, err := idx.Search("util", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "util.c", got[0].Name)
	assert.Equal(t, "Sources/Core", got[0].Group)
}

func TestSearchGroupFilter(t *testing.T) {
	idx := openTestIndex(t)
	require.NoError(t, idx.Replace(sampleEntries()))

	got, err := idx.Search("main", &Options{Group: "Sources"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "main.swift", got[0].Name)

	got, err = idx.Search("main", &Options{Group: "Frameworks"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchFileTypeFilter(t *testing.T) {
	idx := openTestIndex(t)
	require.NoError(t, idx.Replace(sampleEntries()))

	got, err := idx.Search("libDemo", &Options{FileType: "archive.ar"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "libDemo.a", got[0].Name)
}

func TestSearchDuplicateNamesInSameGroup(t *testing.T) {
	idx := openTestIndex(t)

	// A group may legally hold two references with the same display name;
	// each must come back as one row, not as a cross product.
	require.NoError(t, idx.Replace([]*Entry{
		{Group: "Sources", Name: "util.c", Path: "Sources/a/util.c", FileType: "sourcecode.c.c", Kind: "file-reference"},
		{Group: "Sources", Name: "util.c", Path: "Sources/b/util.c", FileType: "sourcecode.c.c", Kind: "file-reference"},
	}))

	got, err := idx.Search("util", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	paths := []string{got[0].Path, got[1].Path}
	assert.ElementsMatch(t, []string{"Sources/a/util.c", "Sources/b/util.c"}, paths)
}

func TestSearchWithLikeFallback(t *testing.T) {
	idx := openTestIndex(t)
	idx.useFTS = false
	require.NoError(t, idx.Replace(sampleEntries()))

	got, err := idx.Search("util", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "util.c", got[0].Name)
}
