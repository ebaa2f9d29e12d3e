// Package importer converts spreadsheet word lists into lesson files that
// the catalog loader accepts.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mbecker/wortschatz/internal/vocab"
)

// Config describes one spreadsheet import. Column values are Excel letters.
type Config struct {
	FilePath string
	Sheet    string
	// StartRow is 1-based; rows above it are treated as headers.
	StartRow int

	SourceColumn   string
	TranslitColumn string
	// TargetsColumn may hold several translation slots joined by ";" and
	// synonym alternates joined by "/".
	TargetsColumn  string
	PartColumn     string
	UsageColumn    string
	ExamplesColumn string

	// Lesson metadata for the generated file.
	LessonID string
	Title    string
	Category string
	Pair     vocab.LanguagePair
}

// DefaultConfig returns the column layout the bundled sheets use.
func DefaultConfig() Config {
	return Config{
		Sheet:          "Sheet1",
		StartRow:       2,
		SourceColumn:   "A",
		TranslitColumn: "B",
		TargetsColumn:  "C",
		PartColumn:     "D",
		UsageColumn:    "E",
		ExamplesColumn: "F",
		Category:       "imported",
	}
}

// Result reports how an import went.
type Result struct {
	TotalRows int
	Imported  int
	Skipped   int
	Errors    []string
	Lesson    vocab.Lesson
}

// ImportLesson reads a spreadsheet and builds one lesson from its rows.
// Word IDs derive from the lesson ID and row position; frequency ranks
// follow row order.
func ImportLesson(cfg Config) (*Result, error) {
	if cfg.LessonID == "" {
		return nil, fmt.Errorf("import: lesson id is required")
	}
	if cfg.Pair.From == "" || cfg.Pair.To == "" {
		return nil, fmt.Errorf("import: language pair is required")
	}

	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.FilePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", cfg.Sheet, err)
	}

	res := &Result{
		Lesson: vocab.Lesson{
			ID:           cfg.LessonID,
			Title:        cfg.Title,
			Category:     cfg.Category,
			LanguagePair: cfg.Pair,
		},
	}
	if res.Lesson.Title == "" {
		res.Lesson.Title = cfg.LessonID
	}

	rank := 1
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		res.TotalRows++

		entry, err := entryFromRow(cfg, row, rank)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Lesson.Words = append(res.Lesson.Words, entry)
		res.Imported++
		rank++
	}

	if len(res.Lesson.Words) == 0 {
		return res, fmt.Errorf("import: no usable rows in %s", cfg.FilePath)
	}
	res.Lesson.SortWords()
	return res, nil
}

func entryFromRow(cfg Config, row []string, rank int) (vocab.WordEntry, error) {
	source := strings.TrimSpace(cell(row, cfg.SourceColumn))
	if source == "" {
		return vocab.WordEntry{}, fmt.Errorf("empty source")
	}
	targetsText := strings.TrimSpace(cell(row, cfg.TargetsColumn))
	if targetsText == "" {
		return vocab.WordEntry{}, fmt.Errorf("empty targets")
	}

	entry := vocab.WordEntry{
		ID:            fmt.Sprintf("%s-%03d", cfg.LessonID, rank),
		Source:        source,
		Translit:      strings.TrimSpace(cell(row, cfg.TranslitColumn)),
		PartOfSpeech:  parsePart(cell(row, cfg.PartColumn)),
		FrequencyRank: rank,
		Usage:         strings.TrimSpace(cell(row, cfg.UsageColumn)),
	}

	for _, slot := range strings.Split(targetsText, ";") {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		entry.Targets = append(entry.Targets, vocab.Target{Text: slot})
	}
	if len(entry.Targets) == 0 {
		return vocab.WordEntry{}, fmt.Errorf("empty targets")
	}

	if ex := strings.TrimSpace(cell(row, cfg.ExamplesColumn)); ex != "" {
		for _, line := range strings.Split(ex, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				entry.Examples = append(entry.Examples, line)
			}
		}
	}
	return entry, nil
}

// WriteLessonFile writes the lesson as <lesson-id>.json under dir, creating
// dir if needed. The written file round-trips through the catalog loader.
func WriteLessonFile(lesson vocab.Lesson, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, lesson.ID+".json")

	data, err := json.MarshalIndent(lesson, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode lesson %s: %w", lesson.ID, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func parsePart(s string) vocab.PartOfSpeech {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verb":
		return vocab.Verb
	case "noun":
		return vocab.Noun
	case "adj", "adjective":
		return vocab.Adjective
	case "adv", "adverb":
		return vocab.Adverb
	case "phrase":
		return vocab.Phrase
	default:
		return vocab.Noun
	}
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnIndex converts an Excel column letter ("A", "AB") to a zero-based
// index.
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	idx := 0
	for i := 0; i < len(column); i++ {
		c := column[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		idx = idx*26 + int(c-'A'+1)
	}
	return idx - 1
}
