package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewTreeCmd creates the `xcgroups tree` command.
func NewTreeCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	var subpath string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the project's group tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			root := s.Project.MainGroup().FindSubpath(subpath, false)
			if root == nil {
				return fmt.Errorf("no group at %q", subpath)
			}
			fmt.Print(service.RenderTree(root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subpath, "group", "g", "", "Start from this group subpath instead of the root")

	return cmd
}
