package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mbecker/wortschatz/internal/vocab"
)

func writeSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func testConfig(file string) Config {
	cfg := DefaultConfig()
	cfg.FilePath = file
	cfg.LessonID = "ru-de-import-1"
	cfg.Title = "Import 1"
	cfg.Pair = vocab.LanguagePair{From: "ru", To: "de"}
	return cfg
}

func TestImportLesson(t *testing.T) {
	file := writeSheet(t, [][]string{
		{"Source", "Translit", "Targets", "Part", "Usage"},
		{"привет", "privet", "hallo/hi", "phrase", ""},
		{"дом", "dom", "Haus; Gebäude", "noun", "auch: Zuhause"},
		{"", "", "leer", "noun", ""},
	})

	res, err := ImportLesson(testConfig(file))
	if err != nil {
		t.Fatalf("ImportLesson: %v", err)
	}

	if res.Imported != 2 || res.Skipped != 1 {
		t.Errorf("imported=%d skipped=%d, want 2/1", res.Imported, res.Skipped)
	}
	if len(res.Errors) != 1 {
		t.Errorf("errors = %v, want one entry for the empty-source row", res.Errors)
	}

	words := res.Lesson.Words
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Source != "привет" || words[0].Translit != "privet" {
		t.Errorf("first word = %+v", words[0])
	}
	if got := words[1].PrimaryTargets(); len(got) != 2 || got[0] != "Haus" || got[1] != "Gebäude" {
		t.Errorf("semicolon targets = %v, want [Haus Gebäude]", got)
	}
	if words[1].Usage != "auch: Zuhause" {
		t.Errorf("usage = %q", words[1].Usage)
	}
	if words[0].FrequencyRank != 1 || words[1].FrequencyRank != 2 {
		t.Errorf("frequency ranks = %d, %d; want row order", words[0].FrequencyRank, words[1].FrequencyRank)
	}
}

func TestImportLessonRequiresMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = "irrelevant.xlsx"
	if _, err := ImportLesson(cfg); err == nil {
		t.Error("missing lesson id should fail")
	}

	cfg.LessonID = "l1"
	if _, err := ImportLesson(cfg); err == nil {
		t.Error("missing language pair should fail")
	}
}

func TestImportLessonEmptySheet(t *testing.T) {
	file := writeSheet(t, [][]string{{"Source", "Translit", "Targets"}})
	if _, err := ImportLesson(testConfig(file)); err == nil {
		t.Error("sheet without data rows should fail")
	}
}

func TestWriteLessonFileRoundTrip(t *testing.T) {
	file := writeSheet(t, [][]string{
		{"Source", "Translit", "Targets", "Part"},
		{"да", "da", "ja", "adv"},
	})
	res, err := ImportLesson(testConfig(file))
	if err != nil {
		t.Fatalf("ImportLesson: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "lessons")
	if _, err := WriteLessonFile(res.Lesson, dir); err != nil {
		t.Fatalf("WriteLessonFile: %v", err)
	}

	catalog, err := vocab.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	lesson, ok := catalog.Lesson("ru-de-import-1")
	if !ok {
		t.Fatal("imported lesson missing from catalog")
	}
	if lesson.PairKey() != "ru-de" || len(lesson.Words) != 1 {
		t.Errorf("lesson = %+v", lesson)
	}
	if lesson.Words[0].PartOfSpeech != vocab.Adverb {
		t.Errorf("part of speech = %v, want adv", lesson.Words[0].PartOfSpeech)
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		col  string
		want int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"ab", 27},
		{"1", -1},
		{"", -1},
	}
	for _, tc := range tests {
		if got := columnIndex(tc.col); got != tc.want {
			t.Errorf("columnIndex(%q) = %d, want %d", tc.col, got, tc.want)
		}
	}
}
