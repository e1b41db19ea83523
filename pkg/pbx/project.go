package pbx

import "errors"

// ErrDetached is returned by operations that need an enclosing project on a
// node that has none.
var ErrDetached = errors.New("node is not attached to a project")

// Project is the enclosing document: it registers the nodes that belong to
// the tree and owns the main group plus the two policy collaborators.
// Object identity and serialization live outside this model.
type Project struct {
	Name string

	mainGroup *Node
	resolver  PathResolver
	factory   ReferenceFactory
	objects   map[*Node]struct{}
}

// NewProject creates an empty project whose paths resolve against roots.
// The main group is group-relative with no path, so it resolves to the
// project root itself.
func NewProject(name string, roots RootTable) *Project {
	p := &Project{
		Name:    name,
		objects: make(map[*Node]struct{}),
	}
	resolver := &Resolver{Roots: roots}
	p.resolver = resolver
	p.factory = NewFactory(resolver)
	p.mainGroup = p.NewNode(KindGroup)
	return p
}

// MainGroup returns the root of the project's group tree.
func (p *Project) MainGroup() *Node {
	return p.mainGroup
}

// NewNode constructs and registers a node of kind k. The node starts
// detached; attach it with Add or one of the group constructors.
func (p *Project) NewNode(k Kind) *Node {
	n := &Node{
		Kind:       k,
		SourceTree: SourceTreeGroup,
		project:    p,
	}
	if k == KindVersionGroup {
		n.VersionGroupType = DefaultVersionGroupType
	}
	p.objects[n] = struct{}{}
	return n
}

// Contains reports whether n is registered with this project.
func (p *Project) Contains(n *Node) bool {
	_, ok := p.objects[n]
	return ok
}

// Len returns the number of registered nodes.
func (p *Project) Len() int {
	return len(p.objects)
}

// SetResolver swaps the path resolver. Intended for callers with their own
// root-resolution policy.
func (p *Project) SetResolver(r PathResolver) {
	p.resolver = r
}

// SetFactory swaps the reference factory.
func (p *Project) SetFactory(f ReferenceFactory) {
	p.factory = f
}

// Resolver returns the project's path resolver.
func (p *Project) Resolver() PathResolver {
	return p.resolver
}

// RemoveFromProject detaches n from its parent and unregisters n and its
// entire subtree from the project in one step.
func (n *Node) RemoveFromProject() {
	if n.Kind.IsContainer() {
		n.RemoveChildrenRecursively()
	}
	if n.parent != nil {
		siblings := n.parent.Children
		for i, c := range siblings {
			if c == n {
				n.parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
	if n.project != nil {
		n.project.unregister(n)
	}
}

func (p *Project) unregister(n *Node) {
	delete(p.objects, n)
	n.project = nil
}
