package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/byohay/Xcodeproj/pkg/pbx"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	groupStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyGroupMsg = metaStyle.Render("(empty group)")
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	if len(m.current.Children) == 0 {
		b.WriteString(emptyGroupMsg)
		b.WriteString("\n")
	}
	for i, c := range m.current.Children {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix)
		b.WriteString(renderNode(c, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ move · enter open · backspace up · q quit"))
	return b.String()
}

func (m Model) breadcrumb() string {
	segments := []string{m.current.DisplayName()}
	for p := m.current.Parent(); p != nil; p = p.Parent() {
		segments = append([]string{p.DisplayName()}, segments...)
	}
	return m.project.Name + ": " + strings.Join(segments, " / ")
}

func renderNode(n *pbx.Node, selected bool) string {
	label := n.DisplayName()
	labelStyle := fileStyle
	if n.Kind.IsContainer() {
		label += "/"
		labelStyle = groupStyle
	}
	if selected {
		labelStyle = cursorStyle
	}

	switch n.Kind {
	case pbx.KindGroup:
		return labelStyle.Render(label) + meta(fmt.Sprintf("%d items", len(n.Children)))
	case pbx.KindVariantGroup:
		return labelStyle.Render(label) + meta("variants")
	case pbx.KindVersionGroup:
		detail := "versions"
		if n.CurrentVersion != nil {
			detail = "current: " + n.CurrentVersion.DisplayName()
		}
		return labelStyle.Render(label) + meta(detail)
	case pbx.KindReferenceProxy:
		return labelStyle.Render(label) + meta("proxy")
	default:
		line := labelStyle.Render(label)
		if n.LastKnownFileType != "" {
			line += meta(n.LastKnownFileType)
		}
		return line
	}
}

func meta(s string) string {
	return metaStyle.Render("  " + s)
}
