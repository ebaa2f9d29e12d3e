package drill

import "github.com/mbecker/wortschatz/internal/vocab"

// queue implements the requeue-on-failure policy: the head of the queue is
// always the active prompt, a correct answer pops it, a wrong answer rotates
// it to the tail so it comes back later in the same pass.
type queue struct {
	words []vocab.WordEntry // full sorted set, kept for reset
	queue []vocab.WordEntry
}

func newQueue(words []vocab.WordEntry) *queue {
	q := &queue{words: words}
	q.reset()
	return q
}

func (q *queue) visible() []vocab.WordEntry {
	return q.queue
}

func (q *queue) pick(wordID string) bool {
	// Only the head is ever the prompt.
	return len(q.queue) > 0 && q.queue[0].ID == wordID
}

func (q *queue) record(wordID string, correct bool) bool {
	if len(q.queue) == 0 || q.queue[0].ID != wordID {
		return false
	}
	if correct {
		q.queue = q.queue[1:]
		return len(q.queue) == 0
	}
	head := q.queue[0]
	q.queue = append(q.queue[1:], head)
	return false
}

func (q *queue) head() (vocab.WordEntry, bool) {
	if len(q.queue) == 0 {
		return vocab.WordEntry{}, false
	}
	return q.queue[0], true
}

func (q *queue) remaining() int {
	return len(q.queue)
}

func (q *queue) reset() {
	q.queue = make([]vocab.WordEntry, len(q.words))
	copy(q.queue, q.words)
}
