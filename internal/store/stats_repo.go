package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mbecker/wortschatz/internal/stats"
)

// StatsRepo reads and writes per-lesson stats for one language pair at a
// time. No cross-pair leakage: every query filters on pair_key.
type StatsRepo struct {
	db *sqlx.DB
}

type lessonStatRow struct {
	PairKey   string    `db:"pair_key"`
	LessonID  string    `db:"lesson_id"`
	Correct   int       `db:"correct"`
	Wrong     int       `db:"wrong"`
	Completed int       `db:"completed"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Load returns the stored stats map for a pair. An unknown pair yields an
// empty map, not an error.
func (r *StatsRepo) Load(ctx context.Context, pairKey string) (stats.Map, error) {
	var rows []lessonStatRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT pair_key, lesson_id, correct, wrong, completed, updated_at
		 FROM lesson_stats WHERE pair_key = ?`, pairKey)
	if err != nil {
		return nil, fmt.Errorf("load stats for %s: %w", pairKey, err)
	}

	m := make(stats.Map, len(rows))
	for _, row := range rows {
		m[row.LessonID] = stats.Stat{
			Correct:   row.Correct,
			Wrong:     row.Wrong,
			Completed: row.Completed,
		}
	}
	return m, nil
}

// Save upserts the full stats map for a pair in one transaction.
func (r *StatsRepo) Save(ctx context.Context, pairKey string, m stats.Map) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for lessonID, s := range m {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO lesson_stats (pair_key, lesson_id, correct, wrong, completed, updated_at)
			 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (pair_key, lesson_id) DO UPDATE SET
			   correct = excluded.correct,
			   wrong = excluded.wrong,
			   completed = excluded.completed,
			   updated_at = CURRENT_TIMESTAMP`,
			pairKey, lessonID, s.Correct, s.Wrong, s.Completed)
		if err != nil {
			return fmt.Errorf("save stats for %s/%s: %w", pairKey, lessonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Clear deletes all stored stats for one pair, leaving other pairs intact.
func (r *StatsRepo) Clear(ctx context.Context, pairKey string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM lesson_stats WHERE pair_key = ?`, pairKey)
	if err != nil {
		return fmt.Errorf("clear stats for %s: %w", pairKey, err)
	}
	return nil
}

// PairKeys returns the pair keys that have any stored stats, for the CLI
// stats listing.
func (r *StatsRepo) PairKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.SelectContext(ctx, &keys,
		`SELECT DISTINCT pair_key FROM lesson_stats ORDER BY pair_key`)
	if err != nil {
		return nil, fmt.Errorf("list pair keys: %w", err)
	}
	return keys, nil
}
