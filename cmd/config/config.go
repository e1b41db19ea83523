package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/byohay/Xcodeproj/pkg/pbx"
	"github.com/byohay/Xcodeproj/pkg/service"
)

var cfgFile string

// RegisterFlags attaches the shared configuration flags to the root command.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/xcodeproj/config.yaml)")
}

// InitConfig wires viper to the config file and environment.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "xcodeproj")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("XCODEPROJ")

	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "xcodeproj"))
	viper.SetDefault("editor", os.Getenv("EDITOR"))
	viper.SetDefault("developer_dir", "/Applications/Xcode.app/Contents/Developer")
	viper.SetDefault("sdk_root", "/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX.sdk")
	viper.SetDefault("build_products_dir", "")

	// Missing config file is fine; defaults and env cover local use.
	_ = viper.ReadInConfig()
}

// InitService builds the project service from the resolved configuration.
func InitService() (*service.Service, error) {
	cfg := &service.Config{
		DataDir: viper.GetString("data_dir"),
		Editor:  viper.GetString("editor"),
		Roots: pbx.RootTable{
			DeveloperDir:     viper.GetString("developer_dir"),
			SDKRoot:          viper.GetString("sdk_root"),
			BuildProductsDir: viper.GetString("build_products_dir"),
		},
	}
	return service.New(cfg)
}
