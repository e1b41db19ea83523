// Package manifest reads and writes the YAML snapshot of a project's group
// tree that the CLI works on. The project document's native format is out of
// scope here; this is the tool's own interchange format.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/byohay/Xcodeproj/pkg/pbx"
)

// DefaultFilename is where a project's tree snapshot lives by convention.
const DefaultFilename = ".xcgroups.yaml"

// Manifest is the on-disk form of a project tree.
type Manifest struct {
	Project string        `yaml:"project"`
	Roots   pbx.RootTable `yaml:"roots"`
	Groups  []*NodeSpec   `yaml:"groups,omitempty"`
}

// NodeSpec is one node of the snapshot. Kind defaults to a plain group.
type NodeSpec struct {
	Kind           string      `yaml:"kind,omitempty"`
	Name           string      `yaml:"name,omitempty"`
	Path           string      `yaml:"path,omitempty"`
	SourceTree     string      `yaml:"source_tree,omitempty"`
	FileType       string      `yaml:"file_type,omitempty"`
	CurrentVersion string      `yaml:"current_version,omitempty"`
	VersionType    string      `yaml:"version_type,omitempty"`
	Comments       string      `yaml:"comments,omitempty"`
	IndentWidth    int         `yaml:"indent_width,omitempty"`
	TabWidth       int         `yaml:"tab_width,omitempty"`
	UsesTabs       bool        `yaml:"uses_tabs,omitempty"`
	WrapsLines     bool        `yaml:"wraps_lines,omitempty"`
	Children       []*NodeSpec `yaml:"children,omitempty"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Save renders the manifest to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("render manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Build materializes the manifest into a live project tree.
func (m *Manifest) Build() (*pbx.Project, error) {
	p := pbx.NewProject(m.Project, m.Roots)
	for _, spec := range m.Groups {
		if err := buildNode(p, p.MainGroup(), spec); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildNode(p *pbx.Project, parent *pbx.Node, spec *NodeSpec) error {
	kind := pbx.Kind(spec.Kind)
	if spec.Kind == "" {
		kind = pbx.KindGroup
	}
	switch kind {
	case pbx.KindGroup, pbx.KindVariantGroup, pbx.KindVersionGroup,
		pbx.KindFileReference, pbx.KindReferenceProxy:
	default:
		return fmt.Errorf("unknown node kind %q", spec.Kind)
	}

	n := p.NewNode(kind)
	n.Name = spec.Name
	n.Path = spec.Path
	if spec.SourceTree != "" {
		st := pbx.SourceTree(spec.SourceTree)
		if !st.Valid() {
			return fmt.Errorf("unknown source tree %q for %q", spec.SourceTree, spec.Name)
		}
		n.SourceTree = st
	}
	n.LastKnownFileType = spec.FileType
	if spec.VersionType != "" {
		n.VersionGroupType = spec.VersionType
	}
	n.Comments = spec.Comments
	n.IndentWidth = spec.IndentWidth
	n.TabWidth = spec.TabWidth
	n.UsesTabs = spec.UsesTabs
	n.WrapsLines = spec.WrapsLines
	parent.Add(n)

	for _, child := range spec.Children {
		if err := buildNode(p, n, child); err != nil {
			return err
		}
	}

	if spec.CurrentVersion != "" {
		if kind != pbx.KindVersionGroup {
			return fmt.Errorf("current_version on non version group %q", spec.Name)
		}
		v := n.Child(spec.CurrentVersion)
		if v == nil {
			return fmt.Errorf("current version %q not among children of %q", spec.CurrentVersion, n.DisplayName())
		}
		n.CurrentVersion = v
	}
	return nil
}

// Snapshot captures a live project tree back into manifest form.
func Snapshot(p *pbx.Project) *Manifest {
	m := &Manifest{Project: p.Name}
	if r, ok := p.Resolver().(*pbx.Resolver); ok {
		m.Roots = r.Roots
	}
	for _, c := range p.MainGroup().Children {
		m.Groups = append(m.Groups, snapshotNode(c))
	}
	return m
}

func snapshotNode(n *pbx.Node) *NodeSpec {
	spec := &NodeSpec{
		Name:        n.Name,
		Path:        n.Path,
		SourceTree:  string(n.SourceTree),
		FileType:    n.LastKnownFileType,
		Comments:    n.Comments,
		IndentWidth: n.IndentWidth,
		TabWidth:    n.TabWidth,
		UsesTabs:    n.UsesTabs,
		WrapsLines:  n.WrapsLines,
	}
	if n.Kind != pbx.KindGroup {
		spec.Kind = string(n.Kind)
	}
	if n.SourceTree == pbx.SourceTreeGroup {
		// The default; keep snapshots quiet.
		spec.SourceTree = ""
	}
	if n.Kind == pbx.KindVersionGroup {
		if n.VersionGroupType != pbx.DefaultVersionGroupType {
			spec.VersionType = n.VersionGroupType
		}
		if n.CurrentVersion != nil {
			spec.CurrentVersion = n.CurrentVersion.DisplayName()
		}
	}
	for _, c := range n.Children {
		spec.Children = append(spec.Children, snapshotNode(c))
	}
	return spec
}
