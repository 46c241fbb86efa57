package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

type fakeSaver struct {
	mu    sync.Mutex
	saved []*model.Resume
	err   error
}

func (f *fakeSaver) SaveResume(_ context.Context, r *model.Resume) (*model.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, r)
	return r.Clone(), nil
}

func (f *fakeSaver) all() []*model.Resume {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Resume, len(f.saved))
	copy(out, f.saved)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestCommitsAfterQuietPeriod(t *testing.T) {
	saver := &fakeSaver{}
	a := New(saver, WithDelay(20*time.Millisecond))
	defer a.Close()

	a.Notify(model.NewResume("u1", "Doc"))
	waitFor(t, func() bool { return len(saver.all()) == 1 })
}

func TestNewerSnapshotSupersedesPending(t *testing.T) {
	saver := &fakeSaver{}
	a := New(saver, WithDelay(50*time.Millisecond))
	defer a.Close()

	first := model.NewResume("u1", "First")
	second := model.NewResume("u1", "Second")
	a.Notify(first)
	time.Sleep(10 * time.Millisecond)
	a.Notify(second)

	waitFor(t, func() bool { return len(saver.all()) == 1 })
	assert.Equal(t, "Second", saver.all()[0].Title)

	// nothing else arrives afterwards
	time.Sleep(80 * time.Millisecond)
	assert.Len(t, saver.all(), 1)
}

func TestNilSnapshotCancelsPending(t *testing.T) {
	saver := &fakeSaver{}
	a := New(saver, WithDelay(20*time.Millisecond))
	defer a.Close()

	a.Notify(model.NewResume("u1", "Doc"))
	a.Notify(nil)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, saver.all())
}

func TestFlush(t *testing.T) {
	saver := &fakeSaver{}
	a := New(saver, WithDelay(time.Hour))
	defer a.Close()

	a.Notify(model.NewResume("u1", "Doc"))
	require.NoError(t, a.Flush(context.Background()))
	assert.Len(t, saver.all(), 1)

	// flush with nothing pending is a no-op
	require.NoError(t, a.Flush(context.Background()))
	assert.Len(t, saver.all(), 1)
}

func TestCloseFlushesPending(t *testing.T) {
	saver := &fakeSaver{}
	a := New(saver, WithDelay(time.Hour))

	a.Notify(model.NewResume("u1", "Doc"))
	require.NoError(t, a.Close())
	assert.Len(t, saver.all(), 1)

	// notifications after close are dropped
	a.Notify(model.NewResume("u1", "Late"))
	require.NoError(t, a.Flush(context.Background()))
	assert.Len(t, saver.all(), 1)
}

func TestSaveFailureIsReportedNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	a := New(saver, WithDelay(time.Hour))
	defer a.Close()

	a.Notify(model.NewResume("u1", "Doc"))
	err := a.Flush(context.Background())
	require.Error(t, err)

	// a later change retries cleanly
	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()
	a.Notify(model.NewResume("u1", "Doc"))
	require.NoError(t, a.Flush(context.Background()))
	assert.Len(t, saver.all(), 1)
}

func TestOnSavedCallback(t *testing.T) {
	saver := &fakeSaver{}
	var gotMu sync.Mutex
	var got *model.Resume
	a := New(saver,
		WithDelay(10*time.Millisecond),
		WithOnSaved(func(r *model.Resume) {
			gotMu.Lock()
			got = r
			gotMu.Unlock()
		}),
	)
	defer a.Close()

	a.Notify(model.NewResume("u1", "Doc"))
	waitFor(t, func() bool {
		gotMu.Lock()
		defer gotMu.Unlock()
		return got != nil
	})
}
