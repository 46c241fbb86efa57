// Package autosave commits the latest document snapshot to durable storage
// after a short quiet period. A change arriving while a save is pending
// supersedes it: only the newest snapshot is ever written (last-write-wins).
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/mazenS1/Resume-Builder/internal/logging"
	"github.com/mazenS1/Resume-Builder/internal/model"
)

// DefaultDelay is the quiet period before a pending save commits.
const DefaultDelay = time.Second

// Saver persists a document snapshot and returns the stamped copy it wrote.
type Saver interface {
	SaveResume(ctx context.Context, r *model.Resume) (*model.Resume, error)
}

// Option configures an Autosaver.
type Option func(*Autosaver)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(a *Autosaver) { a.delay = d }
}

// WithLogger sets the logger used for save failures.
func WithLogger(log logging.Logger) Option {
	return func(a *Autosaver) { a.log = log }
}

// WithOnSaved registers a callback invoked with the stamped document after a
// successful save; the document store uses it to mark itself clean.
func WithOnSaved(fn func(*model.Resume)) Option {
	return func(a *Autosaver) { a.onSaved = fn }
}

// Autosaver debounces document snapshots into a Saver. Notify satisfies the
// store's listener signature, so an Autosaver is normally wired up with
// store.Subscribe(autosaver.Notify).
type Autosaver struct {
	delay   time.Duration
	saver   Saver
	log     logging.Logger
	onSaved func(*model.Resume)

	mu      sync.Mutex
	pending *model.Resume
	timer   *time.Timer
	closed  bool
}

func New(saver Saver, opts ...Option) *Autosaver {
	a := &Autosaver{
		delay: DefaultDelay,
		saver: saver,
		log:   logging.Nop{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Notify schedules r to be saved after the quiet period, replacing any
// not-yet-committed snapshot. A nil document (store reset) cancels the
// pending save.
func (a *Autosaver) Notify(r *model.Resume) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = r
	if r == nil {
		return
	}
	a.timer = time.AfterFunc(a.delay, a.commit)
}

func (a *Autosaver) commit() {
	a.mu.Lock()
	r := a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()
	if r == nil {
		return
	}
	a.save(context.Background(), r)
}

// Flush commits any pending snapshot immediately. It returns the save error,
// if any; with nothing pending it is a no-op.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	r := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	if r == nil {
		return nil
	}
	return a.save(ctx, r)
}

// Close stops the autosaver and commits any pending snapshot.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()
	return a.Flush(context.Background())
}

// save writes the snapshot. Persistence failures are reported, never fatal:
// the in-memory document stays intact and a later change retries naturally.
func (a *Autosaver) save(ctx context.Context, r *model.Resume) error {
	saved, err := a.saver.SaveResume(ctx, r)
	if err != nil {
		a.log.Error(ctx, "autosave failed", "id", r.ID, "error", err)
		return err
	}
	a.log.Debug(ctx, "autosaved", "id", saved.ID)
	if a.onSaved != nil {
		a.onSaved(saved)
	}
	return nil
}
