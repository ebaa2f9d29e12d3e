package drill

import "github.com/mbecker/wortschatz/internal/vocab"

// board implements the vanish-on-success policy: all words are visible,
// correctly answered ones move to a hidden set, and a full board is cleared
// in one explicit step once every word is hidden.
type board struct {
	words  []vocab.WordEntry
	hidden map[string]bool
}

func newBoard(words []vocab.WordEntry) *board {
	return &board{words: words, hidden: make(map[string]bool)}
}

func (b *board) visible() []vocab.WordEntry {
	out := make([]vocab.WordEntry, 0, len(b.words))
	for _, w := range b.words {
		if !b.hidden[w.ID] {
			out = append(out, w)
		}
	}
	return out
}

func (b *board) pick(wordID string) bool {
	for _, w := range b.words {
		if w.ID == wordID {
			return !b.hidden[wordID]
		}
	}
	return false
}

func (b *board) record(wordID string, correct bool) bool {
	// Wrong answers neither hide nor reorder the word.
	if !correct || b.hidden[wordID] {
		return false
	}
	b.hidden[wordID] = true
	return len(b.hidden) >= len(b.words)
}

func (b *board) head() (vocab.WordEntry, bool) {
	return vocab.WordEntry{}, false
}

func (b *board) remaining() int {
	return len(b.words) - len(b.hidden)
}

func (b *board) reset() {
	b.hidden = make(map[string]bool)
}
