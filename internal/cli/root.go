// Package cli implements the command-line interface for cubeviz.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz/internal/config"
	"github.com/SeamusWaldron/cubeviz/internal/log"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeviz",
	Short: "Interactive 3x3x3 cube",
	Long: `cubeviz - an interactive 3x3x3 cube for the terminal.

Turn the six outer layers from the keyboard and watch each quarter turn
animate before it lands on the cube. Every committed turn is journaled so
past sessions can be listed and exported.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubeviz/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubeviz/cubeviz.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getConfigPath returns the config path from flag or default.
func getConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// stateDir is the directory holding the config file and the state file.
func stateDir() (string, error) {
	path, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newLogger returns the stderr logger used by one-shot commands.
func newLogger(cfg *config.Config) log.Logger {
	return log.New(cfg.LogLevel, os.Stderr)
}

// openDB opens the journal database and applies pending migrations.
func openDB(path string) (*storage.DB, error) {
	db, err := storage.OpenMigrated(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
