package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbecker/wortschatz/internal/store"
	"github.com/mbecker/wortschatz/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "wortschatz",
	Short: "Vocabulary drill server",
	Long:  "Wortschatz serves lesson-based vocabulary drills over a JSON API and keeps per-lesson statistics in SQLite.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORTSCHATZ_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Directory of lesson JSON files (default: bundled lessons)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORTSCHATZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog builds the catalog from --catalog when given, otherwise from
// the bundled lessons.
func loadCatalog(cmd *cobra.Command) (*vocab.Catalog, error) {
	if dir, _ := cmd.Flags().GetString("catalog"); dir != "" {
		return vocab.LoadDir(dir)
	}
	return vocab.LoadEmbedded()
}
