package pbx

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ReferenceFactory decides which kind of leaf to create for a filesystem
// path and attaches the result to a group.
type ReferenceFactory interface {
	NewReference(group *Node, filePath string, sourceTree SourceTree) (*Node, error)
	NewStaticLibrary(group *Node, productName string) *Node
	NewBundle(group *Node, productName string) *Node
}

// fileTypesByExtension maps a path extension to the resource type recorded
// on new file references.
var fileTypesByExtension = map[string]string{
	"a":            "archive.ar",
	"app":          "wrapper.application",
	"bundle":       "wrapper.plug-in",
	"c":            "sourcecode.c.c",
	"cpp":          "sourcecode.cpp.cpp",
	"dylib":        "compiled.mach-o.dylib",
	"framework":    "wrapper.framework",
	"h":            "sourcecode.c.h",
	"json":         "text.json",
	"m":            "sourcecode.c.objc",
	"markdown":     "net.daringfireball.markdown",
	"md":           "net.daringfireball.markdown",
	"mm":           "sourcecode.cpp.objcpp",
	"plist":        "text.plist.xml",
	"png":          "image.png",
	"sh":           "text.script.sh",
	"storyboard":   "file.storyboard",
	"strings":      "text.plist.strings",
	"swift":        "sourcecode.swift",
	"txt":          "text",
	"xcassets":     "folder.assetcatalog",
	"xcdatamodel":  "wrapper.xcdatamodel",
	"xcdatamodeld": "wrapper.xcdatamodeld",
	"xib":          "file.xib",
}

// FileTypeForExtension returns the resource type for a path extension
// (without the leading dot), or the empty string when unknown.
func FileTypeForExtension(ext string) string {
	return fileTypesByExtension[strings.ToLower(ext)]
}

// versionedExtension marks containers whose contents are tracked as
// versions rather than referenced as a single file.
const versionedExtension = "xcdatamodeld"

// Factory is the default ReferenceFactory. Globbing the versions of a
// versioned container is the only disk access in this package, and only
// happens when the container actually exists.
type Factory struct {
	resolver PathResolver

	// Glob lists the entries matching a pattern. Defaults to filepath.Glob;
	// tests substitute their own.
	Glob func(pattern string) ([]string, error)
}

// NewFactory returns a Factory resolving paths through r.
func NewFactory(r PathResolver) *Factory {
	return &Factory{resolver: r, Glob: filepath.Glob}
}

// NewReference creates the right kind of leaf for filePath and attaches it
// to group: a version group for versioned containers, a plain file
// reference for everything else.
func (f *Factory) NewReference(group *Node, filePath string, sourceTree SourceTree) (*Node, error) {
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if strings.EqualFold(ext, versionedExtension) {
		return f.newVersionGroup(group, filePath, sourceTree)
	}
	ref := group.newChild(KindFileReference)
	if err := f.setPath(ref, group, filePath, sourceTree); err != nil {
		ref.RemoveFromProject()
		return nil, err
	}
	ref.LastKnownFileType = FileTypeForExtension(ext)
	return ref, nil
}

// NewStaticLibrary creates a reference to the static library built under
// the products directory for productName.
func (f *Factory) NewStaticLibrary(group *Node, productName string) *Node {
	ref := group.newChild(KindFileReference)
	ref.SourceTree = SourceTreeBuildProducts
	ref.Path = "lib" + productName + ".a"
	ref.LastKnownFileType = fileTypesByExtension["a"]
	return ref
}

// NewBundle creates a reference to the loadable bundle built under the
// products directory for productName.
func (f *Factory) NewBundle(group *Node, productName string) *Node {
	ref := group.newChild(KindFileReference)
	ref.SourceTree = SourceTreeBuildProducts
	ref.Path = productName + ".bundle"
	ref.LastKnownFileType = fileTypesByExtension["bundle"]
	return ref
}

// newVersionGroup creates a version group for a versioned container and
// populates one file reference per version found on disk. The last version
// in lexicographic order becomes the current one.
func (f *Factory) newVersionGroup(group *Node, filePath string, sourceTree SourceTree) (*Node, error) {
	vg := group.newChild(KindVersionGroup)
	vg.VersionGroupType = DefaultVersionGroupType
	if err := f.setPath(vg, group, filePath, sourceTree); err != nil {
		vg.RemoveFromProject()
		return nil, err
	}

	real, err := f.resolver.RealPathOf(vg)
	if err != nil {
		vg.RemoveFromProject()
		return nil, fmt.Errorf("resolve version group: %w", err)
	}
	versions, err := f.Glob(filepath.Join(real, "*.xcdatamodel"))
	if err != nil {
		vg.RemoveFromProject()
		return nil, fmt.Errorf("list versions: %w", err)
	}
	sort.Strings(versions)
	for _, v := range versions {
		ref := vg.newChild(KindFileReference)
		ref.SourceTree = SourceTreeGroup
		ref.Path = filepath.Base(v)
		ref.LastKnownFileType = fileTypesByExtension["xcdatamodel"]
		vg.CurrentVersion = ref
	}
	return vg, nil
}

// setPath assigns path and source tree on a fresh leaf. Relative paths are
// anchored at the owning group before delegation to the resolver.
func (f *Factory) setPath(ref *Node, group *Node, filePath string, sourceTree SourceTree) error {
	if !filepath.IsAbs(filePath) {
		base, err := f.resolver.RealPathOf(group)
		if err != nil {
			return fmt.Errorf("resolve group: %w", err)
		}
		filePath = filepath.Join(base, filePath)
	}
	if err := f.resolver.SetPathWithSourceTree(ref, filePath, sourceTree); err != nil {
		return fmt.Errorf("set reference path: %w", err)
	}
	return nil
}
