// Package cli implements the stowctl command tree: the host surface that
// replaces the original HTTP API (spec.md §1 places "the HTTP surface"
// out of scope). Each engine subcommand loads engine state from disk and
// performs one operation, saving state back when the operation changes it;
// place, retrieve, simulate and waste plan also append to the log store.
// Every invocation is a fresh process. The cobra/viper wiring is grounded
// in evalgo-org-graphium's internal/commands/root.go.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var dataDir string

// appConfig holds the loaded CLI defaults (internal/project.AppConfig),
// populated by initConfig before any subcommand runs. Subcommands read it
// to fall back to a persisted default when a flag is left unset.
var appConfig project.AppConfig

var rootCmd = &cobra.Command{
	Use:   "stowctl",
	Short: "Cargo stowage management for constrained habitats",
	Long: `stowctl places, searches, retrieves, and retires cargo items inside
rectangular stowage containers, and plans mass-capped waste return manifests
ahead of undocking.`,
}

// Execute runs the stowctl root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for state, config, and logs (default: ~/.stowctl)")
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.SetEnvPrefix("STOWCTL")
	viper.AutomaticEnv()

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(retrieveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(wasteCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(tagsCmd)
}

func initConfig() {
	if d := viper.GetString("data_dir"); d != "" {
		dataDir = d
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err == nil {
		appConfig = cfg
	} else {
		appConfig = project.DefaultAppConfig()
	}

	if dataDir == "" {
		if appConfig.DataDir != "" {
			dataDir = appConfig.DataDir
		} else {
			dataDir = project.DefaultConfigDir()
		}
	}
}

func statePath() string { return filepath.Join(dataDir, "state.json") }
func logPath() string   { return filepath.Join(dataDir, "logs.json") }
