// Package server exposes the drill engine as a JSON HTTP API. All rendering
// happens client-side; the server only moves state.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbecker/wortschatz/internal/stats"
	"github.com/mbecker/wortschatz/internal/vocab"
)

// StatsStore is the persistence collaborator, keyed per language pair.
// Failures never reach the drill core: loads fall back to empty and writes
// are swallowed with a warning.
type StatsStore interface {
	Load(ctx context.Context, pairKey string) (stats.Map, error)
	Save(ctx context.Context, pairKey string, m stats.Map) error
	Clear(ctx context.Context, pairKey string) error
}

// Server holds the catalog, the stats store, and the live drill sessions.
// The catalog pointer is swapped wholesale on hot update, so reads go
// through cat() under the lock.
type Server struct {
	mu      sync.RWMutex
	catalog *vocab.Catalog

	store    StatsStore // nil means in-memory only
	sessions *sessionStore
}

// New builds a server. store may be nil to run without persistence.
func New(catalog *vocab.Catalog, store StatsStore) *Server {
	return &Server{
		catalog:  catalog,
		store:    store,
		sessions: newSessionStore(),
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)

		r.Route("/session", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/", s.handleState)
			r.Get("/word", s.handleWord)
			r.Post("/select", s.handleSelect)
			r.Post("/submit", s.handleSubmit)
			r.Post("/reveal", s.handleReveal)
			r.Post("/ack", s.handleAck)
			r.Post("/restart", s.handleRestart)
		})

		r.Get("/stats", s.handleStats)
		r.Post("/stats/reset", s.handleStatsReset)
	})

	return r
}

// cat returns the current catalog snapshot.
func (s *Server) cat() *vocab.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// ReplaceCatalog swaps the lesson catalog wholesale and re-resolves every
// live session against it, so a hot update never leaves a session pointing
// at a lesson that no longer exists.
func (s *Server) ReplaceCatalog(catalog *vocab.Catalog) {
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.sessions.each(func(sess *session) {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.rebind(s, sess.sel)
	})
}
