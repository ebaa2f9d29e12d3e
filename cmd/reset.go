package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbecker/wortschatz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored drill statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd)
	},
}

func init() {
	resetCmd.Flags().String("pair", "", "Only reset this language pair key, e.g. ru-de")
}

func runReset(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

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

	for _, pair := range pairs {
		if err := repo.Clear(ctx, pair); err != nil {
			return fmt.Errorf("reset %s: %w", pair, err)
		}
		fmt.Printf("Reset statistics for %s\n", pair)
	}
	if len(pairs) == 0 {
		fmt.Println("Nothing to reset.")
	}
	return nil
}
