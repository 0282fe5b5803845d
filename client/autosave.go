package client

import (
	"context"
	"sync"
	"time"

	"cabinkeep/models"
)

// DefaultQuiescenceWindow is how long the autosaver waits after the last edit
// before writing.
const DefaultQuiescenceWindow = time.Second

// Autosaver coalesces rapid checklist edits into one write per quiescence
// window. Each Record call replaces the pending state and restarts the timer;
// when the window elapses without further edits the latest state is posted
// once. This is purely a client-side rate limit; the server never depends on
// it.
type Autosaver struct {
	client *Client
	window time.Duration

	// OnError, when set, is called with the save error so the UI can show a
	// transient notification. The pending state is not rolled back; the next
	// edit schedules a retry implicitly.
	OnError func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.ChecklistRecord
	closed  bool
}

// NewAutosaver returns an Autosaver writing through the given client. A
// non-positive window falls back to DefaultQuiescenceWindow.
func NewAutosaver(c *Client, window time.Duration) *Autosaver {
	if window <= 0 {
		window = DefaultQuiescenceWindow
	}
	return &Autosaver{client: c, window: window}
}

// Record registers the latest full form state and (re)starts the quiescence
// timer. Calls after Close are ignored.
func (a *Autosaver) Record(rec models.ChecklistRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.pending = &rec
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.window, a.fire)
}

// fire writes the pending state, if any survived until the window elapsed.
func (a *Autosaver) fire() {
	a.mu.Lock()
	rec := a.pending
	a.pending = nil
	closed := a.closed
	a.mu.Unlock()

	if rec == nil || closed {
		return
	}
	if _, err := a.client.SaveOpenChecklist(context.Background(), *rec); err != nil {
		if a.OnError != nil {
			a.OnError(err)
		}
	}
}

// Flush writes any pending state immediately, cancelling the timer.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	rec := a.pending
	a.pending = nil
	a.mu.Unlock()

	if rec == nil {
		return nil
	}
	_, err := a.client.SaveOpenChecklist(ctx, *rec)
	return err
}

// Close cancels any pending write. Used on form teardown so a stale edit does
// not land after navigation.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
	}
}
