package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/mbecker/wortschatz/internal/drill"
	"github.com/mbecker/wortschatz/internal/selection"
	"github.com/mbecker/wortschatz/internal/stats"
	"github.com/mbecker/wortschatz/internal/vocab"
)

// sessionTokenHeader carries the drill session token on every request after
// session creation.
const sessionTokenHeader = "X-Session-Token"

type pairView struct {
	Key        string   `json:"key"`
	Categories []string `json:"categories"`
}

type catalogView struct {
	Pairs   []pairView     `json:"pairs"`
	Lessons []vocab.Lesson `json:"lessons"`
}

type statsView struct {
	Lessons    stats.Map             `json:"lessons"`
	Categories map[string]stats.Stat `json:"categories"`
	Total      stats.Stat            `json:"total"`
}

type stateView struct {
	Token          string              `json:"token,omitempty"`
	Selection      selection.Selection `json:"selection"`
	Strategy       drill.Kind          `json:"strategy"`
	Direction      vocab.Direction     `json:"direction"`
	Tense          vocab.Tense         `json:"tense"`
	Phase          string              `json:"phase"`
	ActiveWordID   string              `json:"activeWordId,omitempty"`
	SlotCount      int                 `json:"slotCount"`
	SlotValues     []string            `json:"slotValues,omitempty"`
	VisibleWordIDs []string            `json:"visibleWordIds"`
	Remaining      int                 `json:"remaining"`
	LastOutcome    *drill.Outcome      `json:"lastOutcome,omitempty"`
	Stats          statsView           `json:"stats"`
}

type revealView struct {
	WordID      string `json:"wordId"`
	Source      string `json:"source"`
	Translit    string `json:"translit,omitempty"`
	TargetsText string `json:"targetsText"`
	// Notes is index-aligned with the word's target slots; entries without
	// a disambiguation hint are empty strings.
	Notes        []string      `json:"notes,omitempty"`
	Usage        string        `json:"usage,omitempty"`
	Irregular    string        `json:"irregular,omitempty"`
	Missing      []vocab.Tense `json:"missing,omitempty"`
	Conjugations []string      `json:"conjugations,omitempty"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.cat()
	pairs := make([]pairView, 0)
	for _, key := range cat.PairKeys() {
		pairs = append(pairs, pairView{Key: key, Categories: cat.Categories(key)})
	}
	writeJSON(w, http.StatusOK, catalogView{Pairs: pairs, Lessons: cat.Lessons()})
}

type createSessionRequest struct {
	Strategy drill.Kind `json:"strategy"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	decodeJSON(r, &req)

	kind := drill.KindBoard
	if req.Strategy == drill.KindQueue {
		kind = drill.KindQueue
	}

	sess := s.sessions.create(kind)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.rebind(s, selection.Selection{})

	view := s.stateView(sess)
	view.Token = sess.id
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, s.stateView(sess))
}

type selectRequest struct {
	Pair      string `json:"pair,omitempty"`
	Category  string `json:"category,omitempty"`
	Lesson    string `json:"lesson,omitempty"`
	Direction string `json:"direction,omitempty"`
	Tense     string `json:"tense,omitempty"`
	Word      string `json:"word,omitempty"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req selectRequest
	decodeJSON(r, &req)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Selection changes cascade top-down: pair resets category and lesson,
	// category resets lesson.
	cat := s.cat()
	switch {
	case req.Pair != "":
		sess.rebind(s, selection.SelectPair(cat, req.Pair))
	case req.Category != "":
		sess.rebind(s, selection.SelectCategory(cat, sess.sel, req.Category))
	case req.Lesson != "":
		sess.rebind(s, selection.SelectLesson(cat, sess.sel, req.Lesson))
	}

	if req.Direction != "" {
		sess.dir = vocab.Direction(req.Direction)
		if sess.trainer != nil {
			sess.trainer.SetDirection(sess.dir)
		}
	}
	if req.Tense != "" {
		sess.tense = vocab.Tense(req.Tense)
		if sess.trainer != nil {
			sess.trainer.SetTense(sess.tense)
		}
	}
	if req.Word != "" && sess.trainer != nil {
		sess.trainer.SelectWord(req.Word)
	}

	writeJSON(w, http.StatusOK, s.stateView(sess))
}

type submitRequest struct {
	Text  string   `json:"text"`
	Slots []string `json:"slots"`
}

type submitResponse struct {
	Recorded bool          `json:"recorded"`
	Outcome  drill.Outcome `json:"outcome"`
	State    stateView     `json:"state"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req submitRequest
	decodeJSON(r, &req)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var resp submitResponse
	if sess.trainer != nil {
		resp.Outcome, resp.Recorded = sess.trainer.Submit(drill.Answer{Text: req.Text, Slots: req.Slots})
	}
	resp.State = s.stateView(sess)
	writeJSON(w, http.StatusOK, resp)
}

type promptView struct {
	WordID       string             `json:"wordId"`
	Prompt       string             `json:"prompt"`
	Translit     string             `json:"translit,omitempty"`
	PartOfSpeech vocab.PartOfSpeech `json:"partOfSpeech"`
	SlotCount    int                `json:"slotCount"`
}

// handleWord returns the question side of the active word. The answer side
// only ever leaves through reveal or a correct submission.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.trainer == nil {
		http.Error(w, "no active lesson", http.StatusConflict)
		return
	}
	word, ok := sess.trainer.ActiveWord()
	if !ok {
		http.Error(w, "no active word", http.StatusConflict)
		return
	}

	view := promptView{
		WordID:       word.ID,
		PartOfSpeech: word.PartOfSpeech,
		SlotCount:    sess.trainer.SlotCount(),
	}
	if sess.trainer.Direction() == vocab.TargetToSource {
		view.Prompt = word.TargetsText()
	} else {
		view.Prompt = word.Source
		view.Translit = word.Translit
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.trainer == nil {
		http.Error(w, "no active lesson", http.StatusConflict)
		return
	}
	word, ok := sess.trainer.ActiveWord()
	if !ok {
		http.Error(w, "no active word", http.StatusConflict)
		return
	}
	sess.trainer.Reveal()

	view := revealView{
		WordID:      word.ID,
		Source:      word.Source,
		Translit:    word.Translit,
		TargetsText: word.TargetsText(),
		Usage:       word.Usage,
	}
	notes := make([]string, len(word.Targets))
	hasNote := false
	for i, tg := range word.Targets {
		notes[i] = tg.Note
		hasNote = hasNote || tg.Note != ""
	}
	if hasNote {
		view.Notes = notes
	}
	if word.Forms != nil {
		view.Irregular = word.Forms.Irregular
		view.Missing = word.Forms.Missing
	}
	view.Conjugations = word.Conjugations(sess.trainer.Tense())
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAck(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.trainer != nil {
		sess.trainer.AcknowledgeCompletion()
	}
	writeJSON(w, http.StatusOK, s.stateView(sess))
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.trainer != nil {
		sess.trainer.Restart()
	}
	writeJSON(w, http.StatusOK, s.stateView(sess))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, s.statsView(sess))
}

// handleStatsReset zeroes the per-lesson map for the session's active pair
// only; other pairs keep their stored stats.
func (s *Server) handleStatsReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.stats = make(stats.Map)
	if s.store != nil && sess.sel.PairKey != "" {
		if err := s.store.Clear(context.Background(), sess.sel.PairKey); err != nil {
			log.Printf("warning: clear stats for %s: %v", sess.sel.PairKey, err)
		}
	}
	writeJSON(w, http.StatusOK, s.statsView(sess))
}

// session resolves the token header to a live session, writing the error
// response itself when missing.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	token := r.Header.Get(sessionTokenHeader)
	if token == "" {
		http.Error(w, "missing "+sessionTokenHeader+" header", http.StatusUnauthorized)
		return nil, false
	}
	sess, ok := s.sessions.get(token)
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return nil, false
	}
	return sess, true
}

// stateView builds the full session snapshot. Must be called with the
// session locked.
func (s *Server) stateView(sess *session) stateView {
	view := stateView{
		Selection: sess.sel,
		Strategy:  sess.kind,
		Direction: sess.dir,
		Tense:     sess.tense,
		Phase:     drill.PhaseIdle.String(),
		Stats:     s.statsView(sess),
	}
	if sess.trainer == nil {
		view.VisibleWordIDs = []string{}
		return view
	}

	t := sess.trainer
	view.Phase = t.Phase().String()
	view.SlotCount = t.SlotCount()
	view.SlotValues = t.SlotValues()
	view.Remaining = t.Remaining()
	if w, ok := t.ActiveWord(); ok {
		view.ActiveWordID = w.ID
	}
	visible := t.VisibleWords()
	view.VisibleWordIDs = make([]string, len(visible))
	for i, w := range visible {
		view.VisibleWordIDs[i] = w.ID
	}
	if out, ok := t.LastOutcome(); ok {
		view.LastOutcome = &out
	}
	return view
}

// statsView aggregates the session's per-lesson stats on demand. Category
// and total views are always recomputed from the per-lesson map.
func (s *Server) statsView(sess *session) statsView {
	lessons := s.cat().LessonsForPair(sess.sel.PairKey)
	return statsView{
		Lessons:    sess.stats,
		Categories: stats.ByCategory(lessons, sess.stats),
		Total:      stats.Total(lessons, sess.stats),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("warning: encode response: %v", err)
	}
}

// decodeJSON parses an optional JSON body; an empty or malformed body leaves
// the target at its zero value.
func decodeJSON(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(v)
}
