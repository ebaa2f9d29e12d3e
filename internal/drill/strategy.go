package drill

import "github.com/mbecker/wortschatz/internal/vocab"

// Kind selects one of the two progression policies.
type Kind string

const (
	// KindBoard shows every still-to-learn word at once; the learner picks
	// any of them, correct answers hide the word, and clearing the board
	// makes all words visible again.
	KindBoard Kind = "board"
	// KindQueue drills a single queue: the head is always the prompt,
	// correct answers pop it, wrong answers move it to the tail.
	KindQueue Kind = "queue"
)

// strategy owns the remaining-words working set for one lesson. Words are
// handed to it sorted by ascending frequency rank.
type strategy interface {
	// visible returns the words currently offered for drilling.
	visible() []vocab.WordEntry
	// pick reports whether the learner may choose the word as the prompt.
	pick(wordID string) bool
	// record applies a submission result for the word and reports whether
	// this submission cleared the working set.
	record(wordID string, correct bool) bool
	// head returns the strategy's own choice of prompt, if it has one.
	head() (vocab.WordEntry, bool)
	// remaining is the number of words still to learn.
	remaining() int
	// reset refills the working set.
	reset()
}

func newStrategy(kind Kind, words []vocab.WordEntry) strategy {
	if kind == KindQueue {
		return newQueue(words)
	}
	return newBoard(words)
}
