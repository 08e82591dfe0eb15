package scheduling

import "sync/atomic"

// A CommandHandle is the registration token a stream returns when a command
// is added. It is the only way to pause, resume, or stop that registration.
// All methods are safe to call from any goroutine, concurrently with an
// in-progress Advance; a change observed mid-pass suppresses the firing in
// that pass, and one pass later at the latest.
type CommandHandle struct {
	id uint64

	active atomic.Bool
	paused atomic.Bool
}

// ID returns the registration ID within the owning stream.
func (h *CommandHandle) ID() uint64 {
	return h.id
}

// Pause suppresses firings without touching the due-time. The due-time is
// frozen while paused, so resuming yields at most a single catch-up firing.
func (h *CommandHandle) Pause() {
	h.paused.Store(true)
}

// Resume lifts a pause.
func (h *CommandHandle) Resume() {
	h.paused.Store(false)
}

// Stop deactivates the registration. Deactivation is terminal: a stopped
// handle never fires again, and there is no operation that reactivates it.
func (h *CommandHandle) Stop() {
	h.active.Store(false)
}

// IsActive returns false once the handle is stopped.
func (h *CommandHandle) IsActive() bool {
	return h.active.Load()
}

// IsPaused returns true while the handle is paused.
func (h *CommandHandle) IsPaused() bool {
	return h.paused.Load()
}
