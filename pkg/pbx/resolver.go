package pbx

import (
	"fmt"
	"path/filepath"
)

// PathResolver answers path-semantics questions about nodes: where a node
// sits in the tree and where it lives on disk.
type PathResolver interface {
	ParentOf(n *Node) *Node
	RealPathOf(n *Node) (string, error)
	SetPathWithSourceTree(n *Node, targetPath string, sourceTree SourceTree) error
}

// RootTable maps the symbolic source-tree keys to absolute directories.
type RootTable struct {
	ProjectRoot      string `yaml:"project_root"`
	DeveloperDir     string `yaml:"developer_dir"`
	BuildProductsDir string `yaml:"build_products_dir"`
	SDKRoot          string `yaml:"sdk_root"`
}

// Resolver resolves node paths against a RootTable. Group-relative nodes
// compose with their ancestors up to the project root.
type Resolver struct {
	Roots RootTable
}

// ParentOf returns the node owning n, or nil when n is a tree root or not
// attached anywhere.
func (r *Resolver) ParentOf(n *Node) *Node {
	return n.parent
}

// RealPathOf resolves n's source tree and stored path to an absolute
// filesystem path.
func (r *Resolver) RealPathOf(n *Node) (string, error) {
	switch n.SourceTree {
	case SourceTreeAbsolute:
		if !filepath.IsAbs(n.Path) {
			return "", fmt.Errorf("absolute node has relative path %q", n.Path)
		}
		return n.Path, nil
	case SourceTreeGroup:
		base := r.Roots.ProjectRoot
		if n.parent != nil {
			parentPath, err := r.RealPathOf(n.parent)
			if err != nil {
				return "", err
			}
			base = parentPath
		}
		return filepath.Join(base, n.Path), nil
	case SourceTreeSourceRoot:
		return filepath.Join(r.Roots.ProjectRoot, n.Path), nil
	case SourceTreeDeveloperDir:
		return filepath.Join(r.Roots.DeveloperDir, n.Path), nil
	case SourceTreeBuildProducts:
		return filepath.Join(r.Roots.BuildProductsDir, n.Path), nil
	case SourceTreeSDKRoot:
		return filepath.Join(r.Roots.SDKRoot, n.Path), nil
	default:
		return "", fmt.Errorf("unknown source tree %q", n.SourceTree)
	}
}

// SetPathWithSourceTree assigns n's path and source tree so that the node
// resolves to targetPath under the chosen root.
func (r *Resolver) SetPathWithSourceTree(n *Node, targetPath string, sourceTree SourceTree) error {
	if !filepath.IsAbs(targetPath) {
		return fmt.Errorf("target path %q is not absolute", targetPath)
	}
	base, err := r.rootFor(n, sourceTree)
	if err != nil {
		return err
	}
	if sourceTree == SourceTreeAbsolute {
		n.SourceTree = sourceTree
		n.Path = targetPath
		return nil
	}
	rel, err := filepath.Rel(base, targetPath)
	if err != nil {
		return fmt.Errorf("relativize %q against %q: %w", targetPath, base, err)
	}
	n.SourceTree = sourceTree
	n.Path = filepath.ToSlash(rel)
	return nil
}

// rootFor returns the absolute directory sourceTree resolves against for
// node n. For group-relative nodes that is the parent's own real path.
func (r *Resolver) rootFor(n *Node, sourceTree SourceTree) (string, error) {
	switch sourceTree {
	case SourceTreeAbsolute:
		return "", nil
	case SourceTreeGroup:
		if n.parent == nil {
			return r.Roots.ProjectRoot, nil
		}
		return r.RealPathOf(n.parent)
	case SourceTreeSourceRoot:
		return r.Roots.ProjectRoot, nil
	case SourceTreeDeveloperDir:
		return r.Roots.DeveloperDir, nil
	case SourceTreeBuildProducts:
		return r.Roots.BuildProductsDir, nil
	case SourceTreeSDKRoot:
		return r.Roots.SDKRoot, nil
	default:
		return "", fmt.Errorf("unknown source tree %q", sourceTree)
	}
}
