// Package selection keeps the (pair, category, lesson) triple consistent
// with the lesson catalog. Every mutation funnels through Resolve, so the
// drill always sees a valid existing lesson or the explicit empty selection.
package selection

import (
	"slices"

	"github.com/mbecker/wortschatz/internal/vocab"
)

// Selection is a resolved (pair, category, lesson) triple. The zero value
// means "no active lesson" and is what an empty catalog resolves to.
type Selection struct {
	PairKey  string `json:"pairKey"`
	Category string `json:"category"`
	LessonID string `json:"lessonId"`
}

// IsEmpty reports whether no lesson is active.
func (s Selection) IsEmpty() bool {
	return s.LessonID == ""
}

// Resolve validates each level of the triple against the catalog, falling
// back to the first available value in stable catalog order. Idempotent:
// resolving a resolved selection returns it unchanged.
func Resolve(c *vocab.Catalog, sel Selection) Selection {
	pairs := c.PairKeys()
	if len(pairs) == 0 {
		return Selection{}
	}

	pair := sel.PairKey
	if !slices.Contains(pairs, pair) {
		pair = pairs[0]
	}

	cats := c.Categories(pair)
	category := sel.Category
	if !slices.Contains(cats, category) {
		category = ""
		if len(cats) > 0 {
			category = cats[0]
		}
	}

	lessons := c.LessonsByCategory(pair, category)
	lessonID := sel.LessonID
	if !slices.ContainsFunc(lessons, func(l vocab.Lesson) bool { return l.ID == lessonID }) {
		lessonID = ""
		if len(lessons) > 0 {
			lessonID = lessons[0].ID
		}
	}

	return Selection{PairKey: pair, Category: category, LessonID: lessonID}
}

// SelectPair switches the language pair and cascades category and lesson to
// their pair-scoped first values. A stale category or lesson from the prior
// pair never survives, even when the new pair happens to share a category
// name.
func SelectPair(c *vocab.Catalog, pairKey string) Selection {
	return Resolve(c, Selection{PairKey: pairKey})
}

// SelectCategory switches the category within the current pair and cascades
// the lesson to the category's first value.
func SelectCategory(c *vocab.Catalog, sel Selection, category string) Selection {
	return Resolve(c, Selection{PairKey: sel.PairKey, Category: category})
}

// SelectLesson switches the lesson within the current (pair, category).
func SelectLesson(c *vocab.Catalog, sel Selection, lessonID string) Selection {
	return Resolve(c, Selection{PairKey: sel.PairKey, Category: sel.Category, LessonID: lessonID})
}

// ActiveLesson returns the lesson the selection points at.
func (s Selection) ActiveLesson(c *vocab.Catalog) (vocab.Lesson, bool) {
	if s.IsEmpty() {
		return vocab.Lesson{}, false
	}
	return c.Lesson(s.LessonID)
}
