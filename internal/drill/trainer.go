package drill

import (
	"github.com/mbecker/wortschatz/internal/match"
	"github.com/mbecker/wortschatz/internal/vocab"
)

// Phase is the trainer's position in the drill state machine.
type Phase int

const (
	// PhaseIdle means no word is active.
	PhaseIdle Phase = iota
	// PhasePrompting means a word is shown with its answer hidden.
	PhasePrompting
	// PhaseRevealed means the reference answer is displayed. Input stays
	// open for practice.
	PhaseRevealed
	// PhaseJustCompleted marks the submission that cleared the lesson.
	// The caller acknowledges it explicitly; there is no deferred timer.
	PhaseJustCompleted
	// PhaseComplete means the queue is exhausted and needs an explicit
	// restart (queue policy only).
	PhaseComplete
)

// Outcome is emitted to the stats collaborator after every recorded
// submission.
type Outcome struct {
	LessonID  string `json:"lessonId"`
	WordID    string `json:"wordId"`
	Correct   bool   `json:"correct"`
	Completed bool   `json:"completed"`
}

// Answer carries the learner's input for one submission. Text is the single
// input field; Slots are the per-person conjugation fields for verb drills.
type Answer struct {
	Text  string   `json:"text"`
	Slots []string `json:"slots"`
}

// OutcomeFunc receives submission outcomes.
type OutcomeFunc func(Outcome)

// Trainer owns all transient drill state for one active lesson: the
// remaining-words working set, the active word, reveal state, and in-progress
// per-slot inputs. Switching lessons means building a new Trainer; nothing
// carries over.
type Trainer struct {
	lesson    vocab.Lesson
	kind      Kind
	strat     strategy
	direction vocab.Direction
	tense     vocab.Tense

	phase      Phase
	activeID   string
	slotInputs map[string][]string
	last       *Outcome

	onOutcome OutcomeFunc
}

// NewTrainer builds a trainer for the lesson under the given policy. The
// lesson's words are drilled in ascending frequency-rank order. onOutcome
// may be nil.
func NewTrainer(lesson vocab.Lesson, kind Kind, onOutcome OutcomeFunc) *Trainer {
	lesson.SortWords()
	t := &Trainer{
		lesson:     lesson,
		kind:       kind,
		strat:      newStrategy(kind, lesson.Words),
		direction:  vocab.SourceToTarget,
		tense:      vocab.TensePresent,
		slotInputs: make(map[string][]string),
		onOutcome:  onOutcome,
	}
	t.settle()
	return t
}

// settle derives the phase from the working set for strategies that choose
// their own prompt.
func (t *Trainer) settle() {
	if w, ok := t.strat.head(); ok {
		t.activeID = w.ID
		t.ensureSlots(w)
		if t.phase != PhaseRevealed {
			t.phase = PhasePrompting
		}
		return
	}
	if t.kind == KindQueue {
		t.activeID = ""
		if t.phase != PhaseJustCompleted {
			t.phase = PhaseComplete
		}
	}
}

// Lesson returns the lesson being drilled.
func (t *Trainer) Lesson() vocab.Lesson { return t.lesson }

// Phase returns the current state machine phase.
func (t *Trainer) Phase() Phase { return t.phase }

// Direction returns the active quiz direction.
func (t *Trainer) Direction() vocab.Direction { return t.direction }

// Tense returns the active tense for verb drills.
func (t *Trainer) Tense() vocab.Tense { return t.tense }

// SetDirection changes the quiz direction without touching progression.
func (t *Trainer) SetDirection(d vocab.Direction) {
	t.direction = d
}

// SetTense changes the conjugation tense without touching progression. Slot
// inputs are resized lazily on the next selection.
func (t *Trainer) SetTense(tense vocab.Tense) {
	t.tense = tense
	if w, ok := t.ActiveWord(); ok {
		t.resizeSlots(w)
	}
}

// ActiveWord returns the word currently prompted.
func (t *Trainer) ActiveWord() (vocab.WordEntry, bool) {
	if t.activeID == "" {
		return vocab.WordEntry{}, false
	}
	return t.lesson.Word(t.activeID)
}

// VisibleWords returns the words currently offered for drilling, in
// frequency order.
func (t *Trainer) VisibleWords() []vocab.WordEntry {
	return t.strat.visible()
}

// Remaining returns the number of words still to learn in this pass.
func (t *Trainer) Remaining() int {
	return t.strat.remaining()
}

// SelectWord activates a word as the prompt (board policy). Selecting the
// active word again deselects it. Under the queue policy only the head is
// ever the prompt, so other selections are ignored.
func (t *Trainer) SelectWord(wordID string) {
	if t.phase == PhaseJustCompleted || t.phase == PhaseComplete {
		return
	}
	if t.kind == KindQueue {
		return
	}
	if t.activeID == wordID {
		t.activeID = ""
		t.phase = PhaseIdle
		return
	}
	if !t.strat.pick(wordID) {
		return
	}
	t.activeID = wordID
	t.phase = PhasePrompting
	if w, ok := t.lesson.Word(wordID); ok {
		t.resetSlots(w)
	}
}

// Reveal shows the reference answer. Revealing never consumes an attempt
// and never touches stats; only Submit records an outcome.
func (t *Trainer) Reveal() {
	if t.phase == PhasePrompting {
		t.phase = PhaseRevealed
	}
}

// SlotCount returns the number of input fields the active prompt needs:
// the conjugation table length for verb drills, otherwise one.
func (t *Trainer) SlotCount() int {
	w, ok := t.ActiveWord()
	if !ok {
		return 0
	}
	exp := match.ResolveExpected(w, t.direction, t.tense)
	if exp.MultiSlot {
		return len(exp.Answers)
	}
	return 1
}

// SetSlot stores an in-progress answer for one conjugation slot of the
// active word.
func (t *Trainer) SetSlot(idx int, value string) {
	w, ok := t.ActiveWord()
	if !ok {
		return
	}
	slots := t.slotInputs[w.ID]
	if idx < 0 || idx >= len(slots) {
		return
	}
	slots[idx] = value
}

// SlotValues returns the in-progress per-slot answers for the active word.
func (t *Trainer) SlotValues() []string {
	w, ok := t.ActiveWord()
	if !ok {
		return nil
	}
	return t.slotInputs[w.ID]
}

// LastOutcome returns the most recent submission outcome for feedback
// display.
func (t *Trainer) LastOutcome() (Outcome, bool) {
	if t.last == nil {
		return Outcome{}, false
	}
	return *t.last, true
}

// Submit scores the learner's answer against the active prompt. Invalid or
// empty input is simply wrong; there are no error states. The returned bool
// is false when no word is active, in which case nothing is recorded.
//
// Completed is true on exactly the submission that clears the working set;
// the trainer then enters PhaseJustCompleted and waits for
// AcknowledgeCompletion.
func (t *Trainer) Submit(ans Answer) (Outcome, bool) {
	if t.phase == PhaseJustCompleted || t.phase == PhaseComplete {
		return Outcome{}, false
	}
	w, ok := t.ActiveWord()
	if !ok {
		return Outcome{}, false
	}

	exp := match.ResolveExpected(w, t.direction, t.tense)
	var inputs []string
	if exp.MultiSlot {
		inputs = ans.Slots
		if inputs == nil {
			inputs = t.slotInputs[w.ID]
		}
	} else {
		inputs = []string{ans.Text}
	}
	correct := exp.Check(inputs)

	cleared := t.strat.record(w.ID, correct)
	out := Outcome{
		LessonID:  t.lesson.ID,
		WordID:    w.ID,
		Correct:   correct,
		Completed: correct && cleared,
	}
	t.last = &out
	if t.onOutcome != nil {
		t.onOutcome(out)
	}

	t.advance(w, out)
	return out, true
}

// advance moves the state machine past a recorded submission.
func (t *Trainer) advance(w vocab.WordEntry, out Outcome) {
	if out.Completed {
		t.activeID = ""
		delete(t.slotInputs, w.ID)
		t.phase = PhaseJustCompleted
		return
	}

	switch t.kind {
	case KindQueue:
		// Head changed on pop or rotate; re-derive the prompt.
		t.phase = PhasePrompting
		if out.Correct {
			delete(t.slotInputs, w.ID)
		}
		t.settle()
	default:
		if out.Correct {
			t.activeID = ""
			delete(t.slotInputs, w.ID)
			t.phase = PhaseIdle
		}
		// Wrong keeps the word active for another try.
	}
}

// AcknowledgeCompletion clears the just-completed marker. Under the board
// policy the hidden set is emptied and every word becomes visible again;
// under the queue policy the trainer parks in PhaseComplete until Restart.
func (t *Trainer) AcknowledgeCompletion() {
	if t.phase != PhaseJustCompleted {
		return
	}
	if t.kind == KindQueue {
		t.phase = PhaseComplete
		return
	}
	t.strat.reset()
	t.activeID = ""
	t.last = nil
	t.phase = PhaseIdle
}

// Restart refills the working set for another pass.
func (t *Trainer) Restart() {
	t.strat.reset()
	t.activeID = ""
	t.last = nil
	t.slotInputs = make(map[string][]string)
	t.phase = PhaseIdle
	t.settle()
}

// ensureSlots pre-sizes the per-slot inputs for a newly selected word when
// the active direction and tense call for a conjugation drill.
func (t *Trainer) ensureSlots(w vocab.WordEntry) {
	exp := match.ResolveExpected(w, t.direction, t.tense)
	if !exp.MultiSlot {
		return
	}
	if len(t.slotInputs[w.ID]) != len(exp.Answers) {
		t.slotInputs[w.ID] = make([]string, len(exp.Answers))
	}
}

// resetSlots discards any in-progress answers for a freshly selected word;
// selection always starts from blank inputs.
func (t *Trainer) resetSlots(w vocab.WordEntry) {
	exp := match.ResolveExpected(w, t.direction, t.tense)
	if !exp.MultiSlot {
		delete(t.slotInputs, w.ID)
		return
	}
	t.slotInputs[w.ID] = make([]string, len(exp.Answers))
}

func (t *Trainer) resizeSlots(w vocab.WordEntry) {
	exp := match.ResolveExpected(w, t.direction, t.tense)
	if !exp.MultiSlot {
		delete(t.slotInputs, w.ID)
		return
	}
	if len(t.slotInputs[w.ID]) != len(exp.Answers) {
		t.slotInputs[w.ID] = make([]string, len(exp.Answers))
	}
}
