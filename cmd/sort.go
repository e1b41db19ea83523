package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewSortCmd creates the `xcgroups sort` command.
func NewSortCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	var (
		subpath   string
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Reorder a group's children: groups first, then by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			if err := s.Sort(subpath, recursive); err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Println("Sorted")
			return nil
		},
	}

	cmd.Flags().StringVarP(&subpath, "group", "g", "", "Group subpath to sort (default: the root)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Also sort every group below it")

	return cmd
}
