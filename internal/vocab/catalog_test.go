package vocab

import "testing"

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("bundled catalog is empty")
	}

	pairs := c.PairKeys()
	if len(pairs) == 0 || pairs[0] != "ru-de" {
		t.Errorf("PairKeys = %v, want ru-de first", pairs)
	}

	cats := c.Categories("ru-de")
	if len(cats) == 0 || cats[0] != "Grundlagen" {
		t.Errorf("Categories(ru-de) = %v, want Grundlagen first", cats)
	}

	for _, lesson := range c.Lessons() {
		if len(lesson.Words) == 0 {
			t.Errorf("lesson %s has no words", lesson.ID)
		}
		for i := 1; i < len(lesson.Words); i++ {
			if lesson.Words[i-1].FrequencyRank > lesson.Words[i].FrequencyRank {
				t.Errorf("lesson %s words not sorted by frequency rank", lesson.ID)
				break
			}
		}
	}
}

func TestEmbeddedVerbLessonsHaveConjugations(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}

	lessons := c.LessonsByCategory("ru-de", "Verben")
	if len(lessons) == 0 {
		t.Fatal("no verb lessons in bundled catalog")
	}
	for _, lesson := range lessons {
		for _, w := range lesson.Words {
			if w.PartOfSpeech != Verb {
				continue
			}
			if len(w.Conjugations(TensePresent)) == 0 {
				t.Errorf("verb %s in %s has no present table", w.ID, lesson.ID)
			}
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	pair := LanguagePair{From: "ru", To: "de"}
	_, err := NewCatalog([]Lesson{
		{ID: "dup", LanguagePair: pair},
		{ID: "dup", LanguagePair: pair},
	})
	if err == nil {
		t.Error("duplicate lesson ids should be rejected")
	}

	_, err = NewCatalog([]Lesson{{
		ID: "l", LanguagePair: pair,
		Words: []WordEntry{{ID: "w"}, {ID: "w"}},
	}})
	if err == nil {
		t.Error("duplicate word ids should be rejected")
	}
}

func TestPrimaryTargets(t *testing.T) {
	w := WordEntry{Targets: []Target{
		{Text: "hallo/hi"},
		{Text: "guten Tag"},
	}}

	got := w.PrimaryTargets()
	if len(got) != 2 || got[0] != "hallo" || got[1] != "guten Tag" {
		t.Errorf("PrimaryTargets = %v, want [hallo, guten Tag]", got)
	}
	if w.TargetsText() != "hallo/hi, guten Tag" {
		t.Errorf("TargetsText = %q", w.TargetsText())
	}
}

func TestSortWordsStable(t *testing.T) {
	l := Lesson{Words: []WordEntry{
		{ID: "c", FrequencyRank: 2},
		{ID: "a", FrequencyRank: 1},
		{ID: "b", FrequencyRank: 2},
	}}
	l.SortWords()

	want := []string{"a", "c", "b"}
	for i, w := range l.Words {
		if w.ID != want[i] {
			t.Errorf("Words[%d] = %s, want %s", i, w.ID, want[i])
		}
	}
}
