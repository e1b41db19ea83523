package pbx

import (
	"testing"
)

func TestRealPathPerSourceTree(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	tests := []struct {
		name       string
		sourceTree SourceTree
		path       string
		want       string
	}{
		{"absolute", SourceTreeAbsolute, "/elsewhere/lib.c", "/elsewhere/lib.c"},
		{"group relative to root", SourceTreeGroup, "Sources", "/workspace/demo/Sources"},
		{"source root", SourceTreeSourceRoot, "Sources/main.c", "/workspace/demo/Sources/main.c"},
		{"developer dir", SourceTreeDeveloperDir, "usr/bin/tool", "/opt/developer/usr/bin/tool"},
		{"build products", SourceTreeBuildProducts, "libDemo.a", "/workspace/demo/build/Products/libDemo.a"},
		{"sdk root", SourceTreeSDKRoot, "usr/include", "/opt/developer/sdk/usr/include"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := p.NewNode(KindFileReference)
			n.SourceTree = tt.sourceTree
			n.Path = tt.path
			root.Add(n)

			got, err := n.RealPath()
			if err != nil {
				t.Fatalf("RealPath() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RealPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRealPathComposesGroupAncestors(t *testing.T) {
	p := testProject()
	root := p.MainGroup()

	outer := p.NewNode(KindGroup)
	outer.SourceTree = SourceTreeGroup
	outer.Path = "Sources"
	root.Add(outer)

	inner := p.NewNode(KindGroup)
	inner.SourceTree = SourceTreeGroup
	inner.Path = "Core"
	outer.Add(inner)

	got, err := inner.RealPath()
	if err != nil {
		t.Fatalf("RealPath() error: %v", err)
	}
	if want := "/workspace/demo/Sources/Core"; got != want {
		t.Errorf("RealPath() = %q, want %q", got, want)
	}
}

func TestRealPathOfMainGroupIsProjectRoot(t *testing.T) {
	p := testProject()
	got, err := p.MainGroup().RealPath()
	if err != nil {
		t.Fatalf("RealPath() error: %v", err)
	}
	if want := "/workspace/demo"; got != want {
		t.Errorf("RealPath() = %q, want %q", got, want)
	}
}

func TestRealPathDetachedNode(t *testing.T) {
	n := &Node{Kind: KindFileReference, Path: "main.c"}
	if _, err := n.RealPath(); err == nil {
		t.Error("expected an error for a node outside any project")
	}
}

// Setting a path for a chosen root then resolving it must return the
// original target, for every supported root key.
func TestSetPathRoundTrip(t *testing.T) {
	targets := map[SourceTree]string{
		SourceTreeAbsolute:      "/elsewhere/extra/lib.c",
		SourceTreeGroup:         "/workspace/demo/Sources/main.c",
		SourceTreeSourceRoot:    "/workspace/demo/Sources/main.c",
		SourceTreeDeveloperDir:  "/opt/developer/usr/bin/tool",
		SourceTreeBuildProducts: "/workspace/demo/build/Products/libDemo.a",
		SourceTreeSDKRoot:       "/opt/developer/sdk/usr/include/stdio.h",
	}

	for st, target := range targets {
		t.Run(string(st), func(t *testing.T) {
			p := testProject()
			g, err := p.MainGroup().NewGroup("Any", target, st)
			if err != nil {
				t.Fatalf("NewGroup() error: %v", err)
			}
			if g.SourceTree != st {
				t.Errorf("SourceTree = %q, want %q", g.SourceTree, st)
			}
			got, err := g.RealPath()
			if err != nil {
				t.Fatalf("RealPath() error: %v", err)
			}
			if got != target {
				t.Errorf("RealPath() = %q, want %q", got, target)
			}
		})
	}
}

func TestSetPathRejectsRelativeTarget(t *testing.T) {
	p := testProject()
	if _, err := p.MainGroup().NewGroup("Bad", "relative/dir", SourceTreeSourceRoot); err == nil {
		t.Error("expected an error for a relative target path")
	}
}
