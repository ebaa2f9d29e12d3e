package server

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mbecker/wortschatz/internal/drill"
	"github.com/mbecker/wortschatz/internal/selection"
	"github.com/mbecker/wortschatz/internal/stats"
	"github.com/mbecker/wortschatz/internal/vocab"
)

// session is one learner's drill state: the resolved selection, the trainer
// for the active lesson, and the stats map for the active pair. The logical
// model is single-writer, but HTTP delivery is concurrent, so each session
// carries its own lock.
type session struct {
	mu sync.Mutex

	id      string
	kind    drill.Kind
	dir     vocab.Direction
	tense   vocab.Tense
	sel     selection.Selection
	trainer *drill.Trainer
	stats   stats.Map
}

// rebind re-resolves the selection against the server's catalog and rebuilds
// trainer and stats map as needed. Must be called with the session locked.
func (sess *session) rebind(srv *Server, want selection.Selection) {
	prevPair := sess.sel.PairKey
	prevLesson := sess.sel.LessonID

	cat := srv.cat()
	sess.sel = selection.Resolve(cat, want)

	if sess.sel.PairKey != prevPair {
		if prevPair != "" {
			srv.saveStats(prevPair, sess.stats)
		}
		sess.stats = srv.loadStats(sess.sel.PairKey)
	}
	if sess.stats == nil {
		sess.stats = make(stats.Map)
	}

	// Switching lessons resets all transient drill state. Direction and
	// tense are session-level choices and survive the switch.
	if sess.sel.LessonID != prevLesson || sess.trainer == nil {
		sess.trainer = nil
		if lesson, ok := sess.sel.ActiveLesson(cat); ok {
			sess.trainer = drill.NewTrainer(lesson, sess.kind, func(out drill.Outcome) {
				sess.stats.Record(out.LessonID, out.Correct, out.Completed)
				srv.saveStats(sess.sel.PairKey, sess.stats)
			})
			sess.trainer.SetDirection(sess.dir)
			sess.trainer.SetTense(sess.tense)
		}
	}
}

// loadStats fetches stored stats for a pair, treating any failure as "no
// prior stats".
func (srv *Server) loadStats(pairKey string) stats.Map {
	if srv.store == nil || pairKey == "" {
		return make(stats.Map)
	}
	m, err := srv.store.Load(context.Background(), pairKey)
	if err != nil {
		log.Printf("warning: load stats for %s: %v", pairKey, err)
		return make(stats.Map)
	}
	if m == nil {
		m = make(stats.Map)
	}
	return m
}

// saveStats writes the stats map for a pair, swallowing failures: stats stay
// correct in memory even when not durable.
func (srv *Server) saveStats(pairKey string, m stats.Map) {
	if srv.store == nil || pairKey == "" {
		return
	}
	if err := srv.store.Save(context.Background(), pairKey, m.Clone()); err != nil {
		log.Printf("warning: save stats for %s: %v", pairKey, err)
	}
}

type sessionStore struct {
	mu sync.RWMutex
	m  map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[string]*session)}
}

func (ss *sessionStore) create(kind drill.Kind) *session {
	sess := &session{
		id:    uuid.NewString(),
		kind:  kind,
		dir:   vocab.SourceToTarget,
		tense: vocab.TensePresent,
	}
	ss.mu.Lock()
	ss.m[sess.id] = sess
	ss.mu.Unlock()
	return sess
}

func (ss *sessionStore) get(token string) (*session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	sess, ok := ss.m[token]
	return sess, ok
}

func (ss *sessionStore) each(fn func(*session)) {
	ss.mu.RLock()
	all := make([]*session, 0, len(ss.m))
	for _, sess := range ss.m {
		all = append(all, sess)
	}
	ss.mu.RUnlock()
	for _, sess := range all {
		fn(sess)
	}
}
