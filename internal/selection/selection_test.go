package selection

import (
	"testing"

	"github.com/mbecker/wortschatz/internal/vocab"
)

func testCatalog(t *testing.T) *vocab.Catalog {
	t.Helper()
	ruDe := vocab.LanguagePair{From: "ru", To: "de"}
	deEn := vocab.LanguagePair{From: "de", To: "en"}
	c, err := vocab.NewCatalog([]vocab.Lesson{
		{ID: "ru-de-basics-1", LanguagePair: ruDe, Category: "basics"},
		{ID: "ru-de-basics-2", LanguagePair: ruDe, Category: "basics"},
		{ID: "ru-de-travel-1", LanguagePair: ruDe, Category: "travel"},
		{ID: "de-en-basics-1", LanguagePair: deEn, Category: "basics"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestResolveEmptySelection(t *testing.T) {
	c := testCatalog(t)
	got := Resolve(c, Selection{})
	want := Selection{PairKey: "ru-de", Category: "basics", LessonID: "ru-de-basics-1"}
	if got != want {
		t.Errorf("Resolve(empty) = %+v, want %+v", got, want)
	}
}

func TestResolveIdempotent(t *testing.T) {
	c := testCatalog(t)
	first := Resolve(c, Selection{PairKey: "ru-de", Category: "travel", LessonID: "ru-de-travel-1"})
	second := Resolve(c, first)
	if first != second {
		t.Errorf("Resolve not idempotent: %+v vs %+v", first, second)
	}
}

func TestResolveUnknownValuesFallBack(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name string
		in   Selection
		want Selection
	}{
		{
			"unknown pair",
			Selection{PairKey: "fr-es", Category: "basics", LessonID: "x"},
			Selection{PairKey: "ru-de", Category: "basics", LessonID: "ru-de-basics-1"},
		},
		{
			"unknown category",
			Selection{PairKey: "ru-de", Category: "verbs", LessonID: "x"},
			Selection{PairKey: "ru-de", Category: "basics", LessonID: "ru-de-basics-1"},
		},
		{
			"unknown lesson",
			Selection{PairKey: "ru-de", Category: "travel", LessonID: "gone"},
			Selection{PairKey: "ru-de", Category: "travel", LessonID: "ru-de-travel-1"},
		},
	}
	for _, tc := range tests {
		if got := Resolve(c, tc.in); got != tc.want {
			t.Errorf("%s: Resolve = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestSelectPairCascades(t *testing.T) {
	c := testCatalog(t)

	// Both pairs share the category name "basics"; the cascade still
	// resets lesson to the new pair's first.
	got := SelectPair(c, "de-en")
	want := Selection{PairKey: "de-en", Category: "basics", LessonID: "de-en-basics-1"}
	if got != want {
		t.Errorf("SelectPair(de-en) = %+v, want %+v", got, want)
	}
}

func TestSelectCategoryCascadesLesson(t *testing.T) {
	c := testCatalog(t)
	sel := Resolve(c, Selection{})

	got := SelectCategory(c, sel, "travel")
	want := Selection{PairKey: "ru-de", Category: "travel", LessonID: "ru-de-travel-1"}
	if got != want {
		t.Errorf("SelectCategory(travel) = %+v, want %+v", got, want)
	}
}

func TestSelectLessonWithinCategory(t *testing.T) {
	c := testCatalog(t)
	sel := Resolve(c, Selection{})

	got := SelectLesson(c, sel, "ru-de-basics-2")
	if got.LessonID != "ru-de-basics-2" || got.Category != "basics" || got.PairKey != "ru-de" {
		t.Errorf("SelectLesson = %+v", got)
	}
}

func TestEmptyCatalogResolvesToZero(t *testing.T) {
	c, err := vocab.NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog(nil): %v", err)
	}
	got := Resolve(c, Selection{PairKey: "ru-de", Category: "basics", LessonID: "x"})
	if got != (Selection{}) {
		t.Errorf("Resolve on empty catalog = %+v, want zero", got)
	}
	if !got.IsEmpty() {
		t.Error("zero selection should report empty")
	}
	if _, ok := got.ActiveLesson(c); ok {
		t.Error("zero selection should have no active lesson")
	}
}
