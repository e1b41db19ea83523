package service

import (
	"fmt"
	"strings"

	"github.com/byohay/Xcodeproj/pkg/pbx"
)

// RenderTree renders a group subtree as indented text, one node per line.
func RenderTree(root *pbx.Node) string {
	var b strings.Builder
	b.WriteString(root.DisplayName())
	b.WriteString("\n")
	renderChildren(&b, root, "")
	return b.String()
}

func renderChildren(b *strings.Builder, n *pbx.Node, prefix string) {
	for i, c := range n.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(n.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(describeNode(c))
		b.WriteString("\n")
		if c.Kind.IsContainer() {
			renderChildren(b, c, childPrefix)
		}
	}
}

func describeNode(n *pbx.Node) string {
	label := n.DisplayName()
	switch n.Kind {
	case pbx.KindGroup:
		return label + "/"
	case pbx.KindVariantGroup:
		return label + "/ (variants)"
	case pbx.KindVersionGroup:
		if n.CurrentVersion != nil {
			return fmt.Sprintf("%s/ (current: %s)", label, n.CurrentVersion.DisplayName())
		}
		return label + "/ (versions)"
	case pbx.KindReferenceProxy:
		return label + " (proxy)"
	default:
		return label
	}
}
