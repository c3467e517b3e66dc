package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/config"
	"github.com/hyperborg/hyperborg/internal/tracker"
	"github.com/hyperborg/hyperborg/internal/version"
)

var rootDir string

var rootCmd = &cobra.Command{
	Use:     "hyperborg",
	Short:   "Project tracker with Markdown mirrors",
	Long:    `Hyperborg maintains project-tracking records (phase results, plans, lessons, inventory, overview) as JSON documents and keeps a human-readable Markdown mirror of each in sync.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (default $HYPERBORG_ROOT, else the working directory)")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(reportCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func projectRoot() string {
	if rootDir != "" {
		return rootDir
	}
	if env := os.Getenv("HYPERBORG_ROOT"); env != "" {
		return env
	}
	return "."
}

func newTracker() (*tracker.Tracker, error) {
	cfg, err := config.Load(projectRoot())
	if err != nil {
		return nil, err
	}
	return tracker.New(cfg, os.Stdout), nil
}
