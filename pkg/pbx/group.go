package pbx

import (
	"fmt"
	"sort"
	"strings"
)

// Add appends child to the node's children and returns the updated list.
// It does not guard against duplicates or cycles; callers own that.
func (n *Node) Add(child *Node) []*Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return n.Children
}

// NewGroup creates a plain group named name, appends it to the node's
// children and returns it. When groupPath is empty the group is purely
// logical: its source tree is "<group>" and it has no path. Otherwise the
// path and source tree are assigned so the group resolves to groupPath
// under sourceTree.
func (n *Node) NewGroup(name, groupPath string, sourceTree SourceTree) (*Node, error) {
	g := n.newChild(KindGroup)
	g.Name = name
	if groupPath == "" {
		g.SourceTree = SourceTreeGroup
		return g, nil
	}
	if n.project == nil {
		return nil, ErrDetached
	}
	if err := n.project.resolver.SetPathWithSourceTree(g, groupPath, sourceTree); err != nil {
		return nil, fmt.Errorf("set group path: %w", err)
	}
	return g, nil
}

// NewReference creates a leaf for filePath and attaches it to this group.
// The concrete kind (plain file reference or version group) is decided by
// the project's reference factory from the shape of the path.
func (n *Node) NewReference(filePath string, sourceTree SourceTree) (*Node, error) {
	if n.project == nil {
		return nil, ErrDetached
	}
	return n.project.factory.NewReference(n, filePath, sourceTree)
}

// RemoveChildrenRecursively removes every child, and transitively each
// child's own subtree, from the tree and from the enclosing project.
// Calling it on an empty group is a no-op.
func (n *Node) RemoveChildrenRecursively() {
	for _, c := range n.Children {
		if c.Kind.IsContainer() {
			c.RemoveChildrenRecursively()
		}
		c.parent = nil
		if c.project != nil {
			c.project.unregister(c)
		}
	}
	n.Children = nil
}

// SortByType reorders the children in place: container groups before file
// references, then case-sensitive display name. The sort is stable, so
// pairs with no defined order keep their relative positions.
func (n *Node) SortByType() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if ag, bg := a.Kind.IsContainer(), b.Kind.IsContainer(); ag != bg {
			return ag
		}
		return a.DisplayName() < b.DisplayName()
	})
}

// FindSubpath walks a '/'-delimited sequence of display names below this
// node and returns the group it leads to. Segments match direct children
// case-sensitively, first match in child order wins. With create set,
// missing segments are materialized as plain logical groups; otherwise the
// first miss returns nil. An empty subpath is the node itself.
func (n *Node) FindSubpath(subpath string, create bool) *Node {
	if subpath == "" {
		return n
	}
	return n.findSegments(strings.Split(subpath, "/"), create)
}

func (n *Node) findSegments(segments []string, create bool) *Node {
	if len(segments) == 0 {
		return n
	}
	name := segments[0]
	var child *Node
	for _, c := range n.Children {
		if c.DisplayName() == name {
			child = c
			break
		}
	}
	if child == nil {
		if !create {
			return nil
		}
		// A bare name never fails NewGroup.
		child, _ = n.NewGroup(name, "", SourceTreeGroup)
	}
	return child.findSegments(segments[1:], create)
}

// Child is shorthand for FindSubpath without creation.
func (n *Node) Child(subpath string) *Node {
	return n.FindSubpath(subpath, false)
}

// newChild constructs a node of kind k attached to n, registered with n's
// project when there is one.
func (n *Node) newChild(k Kind) *Node {
	var c *Node
	if n.project != nil {
		c = n.project.NewNode(k)
	} else {
		c = &Node{Kind: k, SourceTree: SourceTreeGroup}
	}
	n.Add(c)
	return c
}
