package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/dreamteacher/internal/config"
	"github.com/abhisek/dreamteacher/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dreamteacher",
	Short: "Meet the mentor you always wanted",
	Long:  "Dream Teacher: describe your ideal teacher, chat with the AI mentor built from it, and get career guidance from a short aptitude quiz.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; a malformed one is not.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite diagnostics database (overrides DREAMTEACHER_DB)")
	rootCmd.Flags().String("gateway", "", "Base URL of a running gateway server (overrides DREAMTEACHER_GATEWAY_URL)")
	rootCmd.Flags().Uint64("seed", 0, "Seed for quotes and local mentor generation (overrides DREAMTEACHER_SEED)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		cfg.DBPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("gateway"); f != nil && f.Changed {
		cfg.GatewayURL = f.Value.String()
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the --db flag when set. Otherwise it defers to
// store.DefaultDBPath, which reads DREAMTEACHER_DB and falls back to the
// XDG data directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
