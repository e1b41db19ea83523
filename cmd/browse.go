package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/internal/tui/browser"
	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewBrowseCmd creates the `xcgroups browse` command.
func NewBrowseCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the group tree interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("browse mode requires an interactive terminal")
			}

			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}

			p := tea.NewProgram(browser.New(s.Project), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}
}
