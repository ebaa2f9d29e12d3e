package stats

import "github.com/mbecker/wortschatz/internal/vocab"

// Stat is the unit of progress tracking for one lesson.
type Stat struct {
	Correct   int `json:"correct"`
	Wrong     int `json:"wrong"`
	Completed int `json:"completed"`
}

// Zero returns the identity Stat.
func Zero() Stat {
	return Stat{}
}

// Add sums two stats pointwise. Associative and commutative, with Zero as
// identity.
func Add(a, b Stat) Stat {
	return Stat{
		Correct:   a.Correct + b.Correct,
		Wrong:     a.Wrong + b.Wrong,
		Completed: a.Completed + b.Completed,
	}
}

// Map holds per-lesson stats keyed by lesson id. Entries are created lazily
// as zero on first record. Category and pair views are always recomputed
// from this map, never stored.
type Map map[string]Stat

// Record applies one submission outcome: increments correct or wrong, and
// completed iff the submission finished the lesson.
func (m Map) Record(lessonID string, correct, completed bool) {
	s := m[lessonID]
	if correct {
		s.Correct++
	} else {
		s.Wrong++
	}
	if completed {
		s.Completed++
	}
	m[lessonID] = s
}

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ByCategory folds the per-lesson stats of the given lessons into one Stat
// per category. Lessons without a recorded entry contribute Zero.
func ByCategory(lessons []vocab.Lesson, m Map) map[string]Stat {
	out := make(map[string]Stat)
	for _, l := range lessons {
		out[l.Category] = Add(out[l.Category], m[l.ID])
	}
	return out
}

// Total folds the per-lesson stats of the given lessons into a single Stat.
func Total(lessons []vocab.Lesson, m Map) Stat {
	total := Zero()
	for _, l := range lessons {
		total = Add(total, m[l.ID])
	}
	return total
}
