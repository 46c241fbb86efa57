// Package store holds the working résumé document and every state transition
// on it. Operations never mutate the current snapshot in place: each one
// deep-copies, applies the change, and swaps the new value in, so callers may
// keep old snapshots for export or autosave. Operations addressing ids that
// no longer exist are silent no-ops; the editor routinely races its own
// delete actions and must never see a hard failure for it.
package store

import (
	"sync"
	"time"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

// Listener receives the new document snapshot after every applied change.
// Listeners must treat the snapshot as read-only.
type Listener func(*model.Resume)

// Store is the document state holder.
type Store struct {
	mu             sync.Mutex
	resume         *model.Resume
	pendingChanges bool
	lastSavedAt    time.Time

	nextListenerID int
	listeners      map[int]Listener
}

// New returns an empty store with no working document.
func New() *Store {
	return &Store{listeners: map[int]Listener{}}
}

// Resume returns the current document snapshot, or nil when no document is
// loaded. The returned value must not be modified.
func (s *Store) Resume() *model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume
}

// HasPendingChanges reports whether the document changed since the last
// SetResume or MarkSaved.
func (s *Store) HasPendingChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingChanges
}

// LastSavedAt returns the time of the last save mark; ok is false when the
// document has never been saved.
func (s *Store) LastSavedAt() (saved time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSavedAt, !s.lastSavedAt.IsZero()
}

// Subscribe registers fn to be called with the new snapshot after every
// applied change. The returned function removes the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SetResume replaces the working document wholesale (load, import, reset to
// template). The input is cloned so later external mutation cannot leak in.
// The document is considered saved at this point.
func (s *Store) SetResume(r *model.Resume) {
	s.mu.Lock()
	s.resume = r.Clone()
	s.pendingChanges = false
	s.lastSavedAt = time.Now()
	snapshot, listeners := s.resume, s.snapshotListeners()
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Reset discards the working document.
func (s *Store) Reset() {
	s.mu.Lock()
	s.resume = nil
	s.pendingChanges = false
	s.lastSavedAt = time.Time{}
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(nil)
	}
}

// MarkSaved records that the current document was persisted. When r is
// non-nil it also replaces the snapshot (the persistence layer re-stamps
// UpdatedAt on save and hands the stamped copy back).
func (s *Store) MarkSaved(r *model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r != nil {
		s.resume = r.Clone()
	}
	s.pendingChanges = false
	s.lastSavedAt = time.Now()
}

// apply runs op against the current snapshot and installs the result when op
// reports a change. With no working document it does nothing.
func (s *Store) apply(op func(*model.Resume) (*model.Resume, bool)) *model.Resume {
	s.mu.Lock()
	if s.resume == nil {
		s.mu.Unlock()
		return nil
	}
	next, changed := op(s.resume)
	if !changed {
		cur := s.resume
		s.mu.Unlock()
		return cur
	}
	s.resume = next
	s.pendingChanges = true
	snapshot, listeners := s.resume, s.snapshotListeners()
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snapshot)
	}
	return snapshot
}

// snapshotListeners must be called with s.mu held.
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}
