package vocab

import (
	"sort"
	"strings"
)

// LanguageCode is an ISO-639-1 style language identifier.
type LanguageCode string

// Tense selects a conjugation table on verb entries.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

// Tenses lists all tenses in display order.
func Tenses() []Tense {
	return []Tense{TensePresent, TensePast, TenseFuture}
}

// Direction controls which side of a word is the prompt and which is the
// expected answer.
type Direction string

const (
	SourceToTarget Direction = "source-to-target"
	TargetToSource Direction = "target-to-source"
)

// PartOfSpeech classifies a word entry.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adj"
	Adverb    PartOfSpeech = "adv"
	Phrase    PartOfSpeech = "phrase"
)

// Target is one translation slot. Text may join synonym alternates with "/";
// only the first alternate is an accepted answer, the rest are display-only.
// Note is a free-form disambiguation hint, never used in matching.
type Target struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

// Forms holds grammatical forms for verb entries.
type Forms struct {
	// Missing lists tenses with no natural form.
	Missing []Tense `json:"missing,omitempty"`
	// Irregular is a free-text note on irregular forms.
	Irregular string `json:"irregular,omitempty"`
	// Conjugations maps a tense to its ordered surface forms. Order is
	// significant: each position is a fixed person/number slot.
	Conjugations map[Tense][]string `json:"conjugations,omitempty"`
}

// WordEntry is one vocabulary item within a lesson.
type WordEntry struct {
	ID            string       `json:"id"`
	Source        string       `json:"source"`
	Translit      string       `json:"translit,omitempty"`
	Targets       []Target     `json:"targets"`
	PartOfSpeech  PartOfSpeech `json:"partOfSpeech"`
	FrequencyRank int          `json:"frequencyRank"`
	Usage         string       `json:"usage,omitempty"`
	Examples      []string     `json:"examples,omitempty"`
	Forms         *Forms       `json:"forms,omitempty"`
}

// PrimaryTargets returns the first "/"-alternate of each target slot. These
// are the accepted answers in source-to-target direction.
func (w WordEntry) PrimaryTargets() []string {
	out := make([]string, 0, len(w.Targets))
	for _, t := range w.Targets {
		text := t.Text
		if idx := strings.Index(text, "/"); idx >= 0 {
			text = text[:idx]
		}
		out = append(out, text)
	}
	return out
}

// TargetsText joins all target variants for display.
func (w WordEntry) TargetsText() string {
	parts := make([]string, 0, len(w.Targets))
	for _, t := range w.Targets {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, ", ")
}

// Conjugations returns the ordered forms for the given tense, or nil when the
// entry is not a verb or has no table for that tense.
func (w WordEntry) Conjugations(tense Tense) []string {
	if w.Forms == nil || w.Forms.Conjugations == nil {
		return nil
	}
	return w.Forms.Conjugations[tense]
}

// LanguagePair identifies the origin and drill languages of a lesson.
type LanguagePair struct {
	From LanguageCode `json:"from"`
	To   LanguageCode `json:"to"`
}

// Key returns the stable "from-to" key used to group lessons and stats.
func (p LanguagePair) Key() string {
	return string(p.From) + "-" + string(p.To)
}

// Lesson is a titled, category-tagged bundle of words for one language pair.
type Lesson struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	LanguagePair LanguagePair `json:"languagePair"`
	Category     string       `json:"category"`
	Words        []WordEntry  `json:"words"`
}

// PairKey returns the lesson's language pair key.
func (l Lesson) PairKey() string {
	return l.LanguagePair.Key()
}

// SortWords orders the lesson's words by ascending frequency rank, ties kept
// in original order.
func (l *Lesson) SortWords() {
	sort.SliceStable(l.Words, func(i, j int) bool {
		return l.Words[i].FrequencyRank < l.Words[j].FrequencyRank
	})
}

// Word returns the entry with the given id.
func (l Lesson) Word(id string) (WordEntry, bool) {
	for _, w := range l.Words {
		if w.ID == id {
			return w, true
		}
	}
	return WordEntry{}, false
}
