package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/byohay/Xcodeproj/pkg/manifest"
	"github.com/byohay/Xcodeproj/pkg/pbx"
	"github.com/byohay/Xcodeproj/pkg/service"
)

// groupSubpath rebuilds the '/'-delimited subpath of a node from the tree
// root, in display names.
func groupSubpath(n *pbx.Node) string {
	if n.Parent() == nil {
		return n.DisplayName()
	}
	segments := []string{n.DisplayName()}
	for p := n.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		segments = append([]string{p.DisplayName()}, segments...)
	}
	return strings.Join(segments, "/")
}

// resolveManifest picks the manifest to operate on: the explicit flag value
// when given, otherwise the conventional file in the working directory.
func resolveManifest(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	path := filepath.Join(cwd, manifest.DefaultFilename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no %s here; run 'xcgroups init' first", manifest.DefaultFilename)
	}
	return path, nil
}

// openProject loads the manifest into the service.
func openProject(s *service.Service, manifestFlag string) error {
	path, err := resolveManifest(manifestFlag)
	if err != nil {
		return err
	}
	return s.Open(path)
}
