package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/pkg/search"
	"github.com/byohay/Xcodeproj/pkg/service"
)

// NewFindCmd creates the `xcgroups find` command.
func NewFindCmd(svc **service.Service, manifestFlag *string) *cobra.Command {
	var (
		group    string
		fileType string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search the project's file references",
		Long: `Search file references by name or path. The index is rebuilt from the
manifest before each search, so results always reflect the tree on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := openProject(s, *manifestFlag); err != nil {
				return err
			}
			if err := s.Reindex(); err != nil {
				return err
			}
			entries, err := s.Find(args[0], &search.Options{
				Group:    group,
				FileType: fileType,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No matches")
				return nil
			}
			for _, e := range entries {
				location := e.Name
				if e.Group != "" {
					location = e.Group + "/" + e.Name
				}
				if e.FileType != "" {
					fmt.Printf("%s (%s)\n", location, e.FileType)
				} else {
					fmt.Println(location)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Restrict to a group subpath prefix")
	cmd.Flags().StringVarP(&fileType, "type", "t", "", "Restrict to a file type")
	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum number of results")

	return cmd
}
