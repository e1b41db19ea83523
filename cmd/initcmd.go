package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewInitCmd creates the `xcgroups init` command.
func NewInitCmd(svc **service.Service) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an empty group-tree manifest for a project",
		Long: `Create an empty group-tree manifest in the given directory (default: the
current one). The project name is derived from the directory name unless
--name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := (*svc).Init(dir, name)
			if err != nil {
				return err
			}
			fmt.Printf("Initialized %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")

	return cmd
}
