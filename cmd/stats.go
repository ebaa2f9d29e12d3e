package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mbecker/wortschatz/internal/stats"
	"github.com/mbecker/wortschatz/internal/store"
	"github.com/mbecker/wortschatz/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored drill statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func init() {
	statsCmd.Flags().String("pair", "", "Limit output to one language pair key, e.g. ru-de")
}

func runStats(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	repo := st.StatsRepo()
	ctx := cmd.Context()

	pairs := []string{}
	if pair, _ := cmd.Flags().GetString("pair"); pair != "" {
		pairs = append(pairs, pair)
	} else {
		pairs, err = repo.PairKeys(ctx)
		if err != nil {
			return fmt.Errorf("list pairs: %w", err)
		}
	}
	if len(pairs) == 0 {
		fmt.Println("No statistics recorded yet.")
		return nil
	}

	for _, pair := range pairs {
		m, err := repo.Load(ctx, pair)
		if err != nil {
			return fmt.Errorf("load stats for %s: %w", pair, err)
		}
		printPairStats(pair, catalog, m)
	}
	return nil
}

func printPairStats(pair string, catalog *vocab.Catalog, m stats.Map) {
	lessons := catalog.LessonsForPair(pair)

	color.New(color.Bold).Printf("%s\n", pair)
	for _, lesson := range lessons {
		st, ok := m[lesson.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-30s", lesson.Title)
		color.New(color.FgGreen).Printf("  %4d correct", st.Correct)
		color.New(color.FgRed).Printf("  %4d wrong", st.Wrong)
		fmt.Printf("  %4d completed\n", st.Completed)
	}

	total := stats.Total(lessons, m)
	fmt.Printf("  %-30s", "total")
	color.New(color.FgGreen).Printf("  %4d correct", total.Correct)
	color.New(color.FgRed).Printf("  %4d wrong", total.Wrong)
	fmt.Printf("  %4d completed\n\n", total.Completed)
}
