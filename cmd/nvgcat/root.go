// Root command for the nvgcat CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nvgcat/internal/paths"
	"github.com/mesh-intelligence/nvgcat/pkg/nvgcat"
)

// Exit codes: 0 success, 1 user error (bad input, not found, rejected by
// validation), 2 system error (I/O, backend).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "nvgcat",
	Short:   "nvgcat is a curated software-archive metadata catalog",
	Version: nvgcat.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.nvgcat)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.nvgcat-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(assocCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(publicationCmd)
	rootCmd.AddCommand(searchCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > NVGCAT_DATA_DIR env >
// default $(CWD)/.nvgcat-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > NVGCAT_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
