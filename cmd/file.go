package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/pbx"
	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewFileCmd creates the `xcgroups file` command and its subcommands.
func NewFileCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage file references in the project tree",
	}
	cmd.AddCommand(newFileAddCmd(svc, manifestFlag))
	return cmd
}

func newFileAddCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	var (
		group      string
		sourceTree string
	)

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Add a reference to a file",
		Long: `Add a reference to a file under a group. Versioned containers (for
example Model.xcdatamodeld) become version groups with one reference per
on-disk version; everything else becomes a plain file reference whose type
is inferred from the extension.

Examples:
  xcgroups file add Sources/main.swift -g Sources
  xcgroups file add /opt/sdk/lib/libz.dylib -g Frameworks -s SDKROOT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			st := pbx.SourceTree(sourceTree)
			if !st.Valid() {
				return fmt.Errorf("unknown source tree %q", sourceTree)
			}
			ref, err := s.AddFile(group, args[0], st)
			if err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", ref.DisplayName(), ref.Kind)
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Group subpath to attach the reference to (default: the root)")
	cmd.Flags().StringVarP(&sourceTree, "source-tree", "s", string(pbx.SourceTreeGroup), "Source tree key for the new reference")

	return cmd
}
