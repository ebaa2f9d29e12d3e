package match

import "github.com/mbecker/wortschatz/internal/vocab"

// Expected is the set of acceptable answers for one prompt.
//
// In the multi-slot case (verb conjugation drills) Answers is an ordered
// sequence compared index-wise against the learner's per-slot inputs. In the
// single-slot case it is an unordered set checked by membership.
type Expected struct {
	Answers   []string
	MultiSlot bool
}

// ResolveExpected computes the acceptable answers for a word, direction,
// and optional tense. Deterministic and pure.
//
// A verb with a non-empty conjugation table for the tense yields the ordered
// table with MultiSlot set. Otherwise the expected set is the normalized
// source (target-to-source) or the normalized first "/"-alternate of every
// target slot (source-to-target). Trailing alternates are documentation,
// not graded answers.
func ResolveExpected(w vocab.WordEntry, dir vocab.Direction, tense vocab.Tense) Expected {
	if w.PartOfSpeech == vocab.Verb && tense != "" {
		if conj := w.Conjugations(tense); len(conj) > 0 {
			answers := make([]string, len(conj))
			for i, form := range conj {
				answers[i] = Normalize(form)
			}
			return Expected{Answers: answers, MultiSlot: true}
		}
	}

	if dir == vocab.TargetToSource {
		return Expected{Answers: []string{Normalize(w.Source)}}
	}

	primaries := w.PrimaryTargets()
	answers := make([]string, len(primaries))
	for i, p := range primaries {
		answers[i] = Normalize(p)
	}
	return Expected{Answers: answers}
}

// Check scores the learner's inputs against the expected set.
//
// Multi-slot: correct iff the slot count matches exactly and every slot,
// independently normalized, equals the expected form at the same index.
// Single-slot: correct iff the normalized first input is a member of the
// expected set. An empty expected set is never correct.
func (e Expected) Check(inputs []string) bool {
	if len(e.Answers) == 0 {
		return false
	}

	if e.MultiSlot {
		if len(inputs) != len(e.Answers) {
			return false
		}
		for i, want := range e.Answers {
			if Normalize(inputs[i]) != want {
				return false
			}
		}
		return true
	}

	var got string
	if len(inputs) > 0 {
		got = Normalize(inputs[0])
	}
	for _, want := range e.Answers {
		if got == want {
			return true
		}
	}
	return false
}
