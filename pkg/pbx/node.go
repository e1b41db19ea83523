package pbx

import (
	"iter"
	"path"
)

// Kind categorizes the different kinds of nodes in a project's group tree.
type Kind string

const (
	KindGroup          Kind = "group"           // A plain container group
	KindVariantGroup   Kind = "variant-group"   // A group bundling localized variants of one resource
	KindVersionGroup   Kind = "version-group"   // A group tracking on-disk versions of one resource
	KindFileReference  Kind = "file-reference"  // A leaf reference to a file on disk
	KindReferenceProxy Kind = "reference-proxy" // A leaf reference to a product of another project
)

// IsContainer reports whether nodes of this kind may own children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindGroup, KindVariantGroup, KindVersionGroup:
		return true
	}
	return false
}

// MainGroupDisplayName is the label of the tree root when it carries neither
// a name nor a path.
const MainGroupDisplayName = "Main Group"

// DefaultVersionGroupType is the resource type a version group tracks unless
// told otherwise.
const DefaultVersionGroupType = "wrapper.xcdatamodel"

// Node is a single node in a project's group tree. Its Kind is fixed at
// construction; all kind-specific behavior dispatches on it.
type Node struct {
	Kind       Kind
	Name       string
	Path       string
	SourceTree SourceTree
	Children   []*Node

	// Presentation state, carried but never interpreted here.
	IndentWidth int
	TabWidth    int
	UsesTabs    bool
	WrapsLines  bool
	Comments    string

	// LastKnownFileType is the resource type hint for file references and
	// variant groups.
	LastKnownFileType string

	// CurrentVersion points at the child of a version group that is the
	// active version. It is a relation, not ownership: removing the child
	// does not clear it.
	CurrentVersion   *Node
	VersionGroupType string

	parent  *Node
	project *Project
}

// DisplayName returns the human-facing label of the node: its name if set,
// the basename of its path otherwise, and the fixed main-group label when
// the node is the project's main group and has neither.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	if n.Path != "" {
		return path.Base(n.Path)
	}
	if n.project != nil && n.project.MainGroup() == n {
		return MainGroupDisplayName
	}
	return ""
}

// Parent returns the node owning this node in the tree, or nil for the main
// group and for nodes not attached to any tree.
func (n *Node) Parent() *Node {
	if n.project == nil {
		return n.parent
	}
	return n.project.resolver.ParentOf(n)
}

// Project returns the document this node is registered with, if any.
func (n *Node) Project() *Project {
	return n.project
}

// RealPath resolves the node to an absolute filesystem path.
func (n *Node) RealPath() (string, error) {
	if n.project == nil {
		return "", ErrDetached
	}
	return n.project.resolver.RealPathOf(n)
}

// Files returns the children that are plain file references. The filter is
// an exact kind match: a version group's contents are not folded in.
func (n *Node) Files() []*Node {
	return n.childrenOfKind(KindFileReference)
}

// Groups returns the children that are plain groups. Variant and version
// groups are deliberately excluded.
func (n *Node) Groups() []*Node {
	return n.childrenOfKind(KindGroup)
}

// VersionGroups returns the children that are version groups.
func (n *Node) VersionGroups() []*Node {
	return n.childrenOfKind(KindVersionGroup)
}

func (n *Node) childrenOfKind(k Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// RecursiveChildGroups yields every plain group below this node in pre-order.
// The sequence is lazy and single-use; it does not descend into variant or
// version groups.
func (n *Node) RecursiveChildGroups() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkGroups(yield)
	}
}

func (n *Node) walkGroups(yield func(*Node) bool) bool {
	for _, g := range n.Groups() {
		if !yield(g) {
			return false
		}
		if !g.walkGroups(yield) {
			return false
		}
	}
	return true
}
