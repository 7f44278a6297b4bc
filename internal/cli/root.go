// Package cli implements the command-line surface of the hue tool.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/c0rrell/hue-cli/internal/config"
	"github.com/c0rrell/hue-cli/internal/hue"
)

var (
	configPath   string
	hostFlag     string
	jsonOut      bool
	debug        bool
	checkUpdates bool

	requestTimeout = 30 * time.Second
)

var rootCmd = &cobra.Command{
	Use:   "hue",
	Short: "Control Philips Hue lights from the command line",
	Long: `hue is a command-line controller for Hue lighting bridges.

It discovers a bridge, registers an application credential with it, and
issues state changes (on/off, brightness, color, effects) to lights
addressed by id, comma-separated list, or user-defined alias.

Get started by running:
  hue register`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkUpdates {
			return runUpdates(cmd)
		}
		return cmd.Help()
	},
}

// ExecuteContext runs the CLI. Errors have already been reported when it
// returns.
func ExecuteContext(ctx context.Context, version string) error {
	rootCmd.Version = version
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ~/.hue.json)")
	rootCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "", "Bridge host (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&checkUpdates, "updates", "u", false, "Check for a newer release")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// resolveConfig loads the config file and applies flag overrides on top of
// the file values.
func resolveConfig() (*config.Config, string, error) {
	path := configPath
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, "", err
	}
	if hostFlag != "" {
		cfg.Host = hostFlag
	}
	return cfg, path, nil
}

// bridgeClient builds a client from the resolved config. A missing host is
// a hard error here, before any network call.
func bridgeClient(cfg *config.Config) (*hue.Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("no bridge host configured; run 'hue register' or pass -H")
	}
	return hue.NewClient(cfg.Host, cfg.Username, requestTimeout), nil
}

// bridgeErr rewrites an authorization failure into the actionable
// registration hint; other bridge errors pass through.
func bridgeErr(err error) error {
	if hue.IsUnauthorized(err) {
		return fmt.Errorf("application not registered with the bridge; run 'hue register'")
	}
	return err
}
