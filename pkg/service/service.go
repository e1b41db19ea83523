// Package service ties the group-tree model to the manifest on disk and the
// reference index: commands open a project through it, mutate the tree and
// save the result back.
package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byohay/Xcodeproj/pkg/manifest"
	"github.com/byohay/Xcodeproj/pkg/pbx"
	"github.com/byohay/Xcodeproj/pkg/search"
)

// Config holds service configuration.
type Config struct {
	DataDir string
	Editor  string
	Roots   pbx.RootTable
}

// Service is the core project service.
type Service struct {
	Config  *Config
	Index   *search.Index
	Project *pbx.Project

	manifestPath string
}

// New creates a new project service.
func New(config *Config) (*Service, error) {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	index, err := search.NewIndex(filepath.Join(config.DataDir, "refs.db"))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Service{
		Config: config,
		Index:  index,
	}, nil
}

// Close releases the service's resources.
func (s *Service) Close() error {
	if s.Index == nil {
		return nil
	}
	return s.Index.Close()
}

// Open loads the manifest at path and builds the live project tree.
func (s *Service) Open(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	p, err := m.Build()
	if err != nil {
		return fmt.Errorf("build project: %w", err)
	}
	s.Project = p
	s.manifestPath = path
	return nil
}

// Save writes the current tree back to the manifest it was opened from.
func (s *Service) Save() error {
	if s.Project == nil {
		return fmt.Errorf("no project open")
	}
	return manifest.Snapshot(s.Project).Save(s.manifestPath)
}

// Init creates a fresh manifest for projectDir. An empty name is derived
// from the directory basename.
func (s *Service) Init(projectDir, name string) (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolve project dir: %w", err)
	}
	if name == "" {
		name = DeriveTitle(filepath.Base(abs))
	}

	roots := s.Config.Roots
	roots.ProjectRoot = abs
	if roots.BuildProductsDir == "" {
		roots.BuildProductsDir = filepath.Join(abs, "build", "Products")
	}

	path := filepath.Join(abs, manifest.DefaultFilename)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("manifest already exists at %s", path)
	}

	m := &manifest.Manifest{Project: name, Roots: roots}
	if err := m.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// AddGroup ensures the '/'-delimited group subpath exists and returns its
// deepest group.
func (s *Service) AddGroup(subpath string) (*pbx.Node, error) {
	if s.Project == nil {
		return nil, fmt.Errorf("no project open")
	}
	g := s.Project.MainGroup().FindSubpath(subpath, true)
	return g, nil
}

// AddFile creates a reference to filePath inside the group at groupSubpath,
// creating intermediate groups as needed.
func (s *Service) AddFile(groupSubpath, filePath string, sourceTree pbx.SourceTree) (*pbx.Node, error) {
	if s.Project == nil {
		return nil, fmt.Errorf("no project open")
	}
	group := s.Project.MainGroup().FindSubpath(groupSubpath, true)
	ref, err := group.NewReference(filePath, sourceTree)
	if err != nil {
		return nil, fmt.Errorf("add file %q: %w", filePath, err)
	}
	return ref, nil
}

// Remove deletes the node at subpath, and its whole subtree, from the
// project.
func (s *Service) Remove(subpath string) error {
	if s.Project == nil {
		return fmt.Errorf("no project open")
	}
	n := s.Project.MainGroup().FindSubpath(subpath, false)
	if n == nil {
		return fmt.Errorf("no node at %q", subpath)
	}
	n.RemoveFromProject()
	return nil
}

// Sort reorders children type-then-name in the group at subpath. With
// recursive set, every plain group below it is sorted too.
func (s *Service) Sort(subpath string, recursive bool) error {
	if s.Project == nil {
		return fmt.Errorf("no project open")
	}
	g := s.Project.MainGroup().FindSubpath(subpath, false)
	if g == nil {
		return fmt.Errorf("no group at %q", subpath)
	}
	g.SortByType()
	if recursive {
		for child := range g.RecursiveChildGroups() {
			child.SortByType()
		}
	}
	return nil
}

// Reindex rebuilds the reference index from the current tree.
func (s *Service) Reindex() error {
	if s.Project == nil {
		return fmt.Errorf("no project open")
	}
	var entries []*search.Entry
	collectEntries(s.Project.MainGroup(), "", &entries)
	if err := s.Index.Replace(entries); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	return nil
}

func collectEntries(group *pbx.Node, subpath string, out *[]*search.Entry) {
	for _, c := range group.Children {
		switch {
		case c.Kind == pbx.KindFileReference:
			e := &search.Entry{
				Group:    subpath,
				Name:     c.DisplayName(),
				Path:     c.Path,
				FileType: c.LastKnownFileType,
				Kind:     string(c.Kind),
			}
			if real, err := c.RealPath(); err == nil {
				e.RealPath = real
			}
			*out = append(*out, e)
		case c.Kind.IsContainer():
			collectEntries(c, joinSubpath(subpath, c.DisplayName()), out)
		}
	}
}

func joinSubpath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}

// Find searches the reference index.
func (s *Service) Find(query string, opts *search.Options) ([]*search.Entry, error) {
	return s.Index.Search(query, opts)
}
