package vocab

import (
	"fmt"

	"github.com/samber/lo"
)

// Catalog is a read-only collection of lessons. It is supplied once per
// process lifetime or replaced wholesale; all views preserve stable catalog
// order.
type Catalog struct {
	lessons []Lesson
	byID    map[string]Lesson
}

// NewCatalog validates the lessons and builds a catalog. Word order within
// each lesson is normalized to ascending frequency rank.
func NewCatalog(lessons []Lesson) (*Catalog, error) {
	byID := make(map[string]Lesson, len(lessons))
	sorted := make([]Lesson, len(lessons))
	copy(sorted, lessons)

	for i := range sorted {
		l := &sorted[i]
		if l.ID == "" {
			return nil, fmt.Errorf("lesson %d: missing id", i)
		}
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		seen := make(map[string]bool, len(l.Words))
		for _, w := range l.Words {
			if w.ID == "" {
				return nil, fmt.Errorf("lesson %q: word with missing id", l.ID)
			}
			if seen[w.ID] {
				return nil, fmt.Errorf("lesson %q: duplicate word id %q", l.ID, w.ID)
			}
			seen[w.ID] = true
		}
		l.SortWords()
		byID[l.ID] = *l
	}

	return &Catalog{lessons: sorted, byID: byID}, nil
}

// Lessons returns all lessons in catalog order.
func (c *Catalog) Lessons() []Lesson {
	return c.lessons
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// PairKeys returns the distinct language pair keys in catalog order.
func (c *Catalog) PairKeys() []string {
	return lo.Uniq(lo.Map(c.lessons, func(l Lesson, _ int) string {
		return l.PairKey()
	}))
}

// LessonsForPair returns the lessons of one language pair in catalog order.
func (c *Catalog) LessonsForPair(pairKey string) []Lesson {
	return lo.Filter(c.lessons, func(l Lesson, _ int) bool {
		return l.PairKey() == pairKey
	})
}

// Categories returns the distinct categories of a pair in catalog order.
func (c *Catalog) Categories(pairKey string) []string {
	return lo.Uniq(lo.Map(c.LessonsForPair(pairKey), func(l Lesson, _ int) string {
		return l.Category
	}))
}

// LessonsByCategory returns the lessons of one (pair, category) in catalog
// order.
func (c *Catalog) LessonsByCategory(pairKey, category string) []Lesson {
	return lo.Filter(c.lessons, func(l Lesson, _ int) bool {
		return l.PairKey() == pairKey && l.Category == category
	})
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}
