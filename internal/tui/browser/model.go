// Package browser is an interactive terminal view onto a project's group
// tree: descend into groups, walk back up, inspect references.
package browser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/byohay/Xcodeproj/pkg/pbx"
)

// Model is the bubbletea model for the group browser.
type Model struct {
	project *pbx.Project
	current *pbx.Node
	cursor  int
	keys    KeyMap
	width   int
	height  int
}

// New creates a browser rooted at the project's main group.
func New(project *pbx.Project) Model {
	return Model{
		project: project,
		current: project.MainGroup(),
		keys:    DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.current.Children)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0

		case key.Matches(msg, m.keys.Bottom):
			if n := len(m.current.Children); n > 0 {
				m.cursor = n - 1
			}

		case key.Matches(msg, m.keys.Enter):
			if child := m.selected(); child != nil && child.Kind.IsContainer() {
				m.current = child
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.Back):
			if parent := m.current.Parent(); parent != nil {
				previous := m.current
				m.current = parent
				m.cursor = indexOf(parent.Children, previous)
			}
		}
	}
	return m, nil
}

func (m Model) selected() *pbx.Node {
	if m.cursor < 0 || m.cursor >= len(m.current.Children) {
		return nil
	}
	return m.current.Children[m.cursor]
}

func indexOf(children []*pbx.Node, target *pbx.Node) int {
	for i, c := range children {
		if c == target {
			return i
		}
	}
	return 0
}
