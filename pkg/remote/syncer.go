package remote

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/violet/pkg/model"
)

// DefaultDebounce coalesces rapid successive mutations into one remote
// write shortly after the last change.
const DefaultDebounce = 750 * time.Millisecond

// Syncer is a single-slot debounced push queue. Every Enqueue resets the
// pending timer rather than cancelling the push outright, so a burst of
// local mutations ends in exactly one remote write. Push errors are logged
// to stderr and never returned to the mutating caller: availability over
// consistency, deliberately.
type Syncer struct {
	remote   Remote
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.Store
	wg      sync.WaitGroup
}

// NewSyncer builds a Syncer for the given remote. A nil remote yields a
// syncer whose Enqueue is a no-op, so callers need not branch on whether
// sync is configured.
func NewSyncer(r Remote, debounce time.Duration) *Syncer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Syncer{remote: r, debounce: debounce}
}

// Enqueue schedules a push of the given snapshot, replacing any pending one.
func (sy *Syncer) Enqueue(s *model.Store) {
	if sy == nil || sy.remote == nil || s == nil {
		return
	}
	sy.mu.Lock()
	defer sy.mu.Unlock()
	sy.pending = s
	if sy.timer != nil && sy.timer.Stop() {
		sy.timer.Reset(sy.debounce)
		return
	}
	// No timer, or the old one already fired and will drain on its own.
	sy.wg.Add(1)
	sy.timer = time.AfterFunc(sy.debounce, sy.fire)
}

func (sy *Syncer) fire() {
	defer sy.wg.Done()
	sy.mu.Lock()
	s := sy.pending
	sy.pending = nil
	sy.timer = nil
	sy.mu.Unlock()
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sy.remote.Push(ctx, s); err != nil {
		warn("sync: push failed: %v", err)
	}
}

// Flush waits for any pending push to run. CLI processes call this before
// exiting so the debounced write is not lost with the process.
func (sy *Syncer) Flush() {
	if sy == nil || sy.remote == nil {
		return
	}
	sy.mu.Lock()
	if sy.timer != nil {
		if sy.timer.Stop() {
			// Run the pending push now instead of waiting out the debounce.
			go sy.fire()
		}
	}
	sy.mu.Unlock()
	sy.wg.Wait()
}

// PushNow pushes immediately, bypassing the debounce. Unlike the background
// push, the error is returned so an explicit sync command can report it.
func (sy *Syncer) PushNow(ctx context.Context, s *model.Store) error {
	if sy == nil || sy.remote == nil {
		return fmt.Errorf("sync: no remote configured")
	}
	return sy.remote.Push(ctx, s)
}

// PullReconcile fetches the remote copy and resolves against local by
// last-writer-wins. Pull failures fall back to local and are only logged.
func (sy *Syncer) PullReconcile(ctx context.Context, local *model.Store) *model.Store {
	if sy == nil || sy.remote == nil {
		return local
	}
	theirs, err := sy.remote.Pull(ctx)
	if err != nil {
		warn("sync: pull failed: %v", err)
		return local
	}
	return Reconcile(local, theirs)
}

func warn(format string, args ...interface{}) {
	f := color.New(color.FgYellow, color.Faint)
	_, _ = f.Fprintf(os.Stderr, format+"\n", args...)
}
