package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewGroupCmd creates the `xcgroups group` command and its subcommands.
func NewGroupCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups in the project tree",
	}
	cmd.AddCommand(newGroupAddCmd(svc, manifestFlag))
	cmd.AddCommand(newGroupListCmd(svc, manifestFlag))
	cmd.AddCommand(newGroupRemoveCmd(svc, manifestFlag))
	return cmd
}

func newGroupAddCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <subpath>",
		Short: "Create a group, including any missing intermediate groups",
		Long: `Create the group at the given '/'-delimited subpath. Intermediate groups
are created as needed; an existing group at the subpath is left untouched.

Examples:
  xcgroups group add Sources
  xcgroups group add "Sources/Data Model"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			g, err := s.AddGroup(args[0])
			if err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("Group %q ready\n", g.DisplayName())
			return nil
		},
	}
}

func newGroupListCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	var subpath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every group below a subpath, pre-order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			start := s.Project.MainGroup().FindSubpath(subpath, false)
			if start == nil {
				return fmt.Errorf("no group at %q", subpath)
			}
			for g := range start.RecursiveChildGroups() {
				fmt.Println(groupSubpath(g))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subpath, "group", "g", "", "Start from this group subpath instead of the root")

	return cmd
}

func newGroupRemoveCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <subpath>",
		Short: "Remove a group and its whole subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			if err := s.Remove(args[0]); err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", args[0])
			return nil
		},
	}
}
