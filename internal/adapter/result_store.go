package adapter

import (
	"log/slog"
	"sync"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

// ResultStore holds the outcome of the most recent search generation.
// Every write is tagged with a generation; writes for a generation lower than
// the highest one seen so far are ignored.
type ResultStore interface {
	// Reset starts a fresh outcome for gen with no matches.
	Reset(gen m.Generation, pattern string, status m.Status) bool
	// Publish appends matches and adds scanned to the file counter.
	Publish(gen m.Generation, scanned int, matches ...m.Match) bool
	// SetStatus moves gen to status. Reason is kept for Failed outcomes.
	SetStatus(gen m.Generation, status m.Status, reason string) bool
	// Current returns a consistent snapshot of the latest outcome.
	Current() m.Outcome
}

type memoryResultStore struct {
	mu      sync.RWMutex
	outcome m.Outcome
}

// NewResultStore creates an empty in-memory ResultStore in the Idle state.
func NewResultStore() ResultStore {
	return &memoryResultStore{
		outcome: m.Outcome{Status: m.Idle},
	}
}

func (s *memoryResultStore) Reset(gen m.Generation, pattern string, status m.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.outcome.Generation {
		slog.Debug("dropping stale reset", "generation", gen, "current", s.outcome.Generation)
		return false
	}

	s.outcome = m.Outcome{
		Generation: gen,
		Pattern:    pattern,
		Status:     status,
	}

	return true
}

func (s *memoryResultStore) Publish(gen m.Generation, scanned int, matches ...m.Match) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(gen) {
		return false
	}

	s.outcome.Matches = append(s.outcome.Matches, matches...)
	s.outcome.FilesScanned += scanned

	return true
}

func (s *memoryResultStore) SetStatus(gen m.Generation, status m.Status, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(gen) {
		return false
	}

	s.outcome.Status = status
	if status == m.Failed {
		s.outcome.Reason = reason
	}

	return true
}

// acceptLocked decides whether a write for gen may touch the outcome.
// A newer generation replaces the outcome; a finished one is frozen.
func (s *memoryResultStore) acceptLocked(gen m.Generation) bool {
	switch {
	case gen < s.outcome.Generation:
		slog.Debug("dropping stale write", "generation", gen, "current", s.outcome.Generation)
		return false
	case gen > s.outcome.Generation:
		s.outcome = m.Outcome{Generation: gen, Status: m.Running}
		return true
	case s.outcome.Status.Terminal():
		slog.Debug("dropping write after terminal status", "generation", gen, "status", s.outcome.Status)
		return false
	}

	return true
}

func (s *memoryResultStore) Current() m.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.outcome
	// Matches are append-only within a generation, so capping the slice is
	// enough to keep later appends invisible to this snapshot.
	n := len(s.outcome.Matches)
	snapshot.Matches = s.outcome.Matches[:n:n]

	return snapshot
}
