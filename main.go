package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/byohay/Xcodeproj/cmd"
	"github.com/byohay/Xcodeproj/cmd/config"
	"github.com/byohay/Xcodeproj/pkg/service"
)

var (
	svc          *service.Service
	manifestPath string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xcgroups",
		Short: "Inspect and edit the group tree of a project manifest",
		Long: `xcgroups models the hierarchical group tree of a project-description
document: groups, localized variant groups, versioned resource groups and
file references, resolved against symbolic source-tree roots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the group-tree manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	config.RegisterFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		config.InitConfig()

		var err error
		svc, err = config.InitService()
		if err != nil {
			return fmt.Errorf("initialize service: %w", err)
		}
		logger.Debugf("service ready, data dir %s", svc.Config.DataDir)
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	}

	rootCmd.AddCommand(cmd.NewInitCmd(&svc))
	rootCmd.AddCommand(cmd.NewTreeCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewGroupCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewFileCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewSortCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewFindCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewBrowseCmd(&svc, &manifestPath))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
