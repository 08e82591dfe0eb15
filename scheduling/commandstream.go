package scheduling

import (
	"math/rand"
	"sync"
)

// CommandInfo describes one registered command to hooks.
type CommandInfo struct {
	Stream        string
	CommandID     string
	HandleID      uint64
	Time          VTimeInSec
	NextDueTime   VTimeInSec
	LastGap       VTimeInSec
	TimesExecuted uint64
}

type streamEntry struct {
	cmd         *DeferredCommand
	handle      *CommandHandle
	nextDueTime VTimeInSec
}

// A CommandStream is a named registry of deferred commands of one role. An
// external driver advances it once per simulation frame; the stream fires
// the entries that are due and reschedules the repeating ones.
type CommandStream struct {
	HookableBase

	name       string
	timeTeller TimeTeller

	lock         sync.Mutex
	rng          *rand.Rand
	entries      map[uint64]*streamEntry
	nextHandleID uint64
	paused       bool
}

// NewCommandStream creates a CommandStream. All delay sampling of this
// stream draws from rng; the stream serializes its own access to rng, so the
// source must not be shared with another stream.
func NewCommandStream(
	name string,
	rng *rand.Rand,
	timeTeller TimeTeller,
) *CommandStream {
	s := new(CommandStream)

	s.name = name
	s.rng = rng
	s.timeTeller = timeTeller
	s.entries = make(map[uint64]*streamEntry)

	return s
}

// Name returns the name of the stream.
func (s *CommandStream) Name() string {
	return s.name
}

// Add registers cmd and returns a new active, unpaused handle for it. The
// initial-delay interval is sampled exactly once, here; the first due-time
// is the current time plus that single sample.
func (s *CommandStream) Add(cmd *DeferredCommand) *CommandHandle {
	now := s.timeTeller.CurrentTime()

	s.lock.Lock()
	defer s.lock.Unlock()

	s.nextHandleID++
	h := &CommandHandle{id: s.nextHandleID}
	h.active.Store(true)

	s.entries[h.id] = &streamEntry{
		cmd:         cmd,
		handle:      h,
		nextDueTime: now + cmd.SampleInitDelay(s.rng),
	}

	return h
}

// Len returns the number of registrations that have not been collected yet.
func (s *CommandStream) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.entries)
}

// Pause stops the whole stream from firing. Due-times are not recomputed
// while paused.
func (s *CommandStream) Pause() {
	s.lock.Lock()
	s.paused = true
	s.lock.Unlock()
}

// Resume allows the stream to fire again.
func (s *CommandStream) Resume() {
	s.lock.Lock()
	s.paused = false
	s.lock.Unlock()
}

// Advance fires every due, active, unpaused entry at most once, even if
// several delay periods have elapsed, and reschedules the repeating ones by
// sampling their recurring delay exactly once per firing. One-shot entries
// are deactivated after firing. Advance returns the first action error
// unmodified and leaves the remaining due entries for the next call;
// recovery policy belongs to the driver.
func (s *CommandStream) Advance(now VTimeInSec) error {
	due := s.collectDue(now)

	for _, e := range due {
		// A pause or stop that lands between the scan and the firing is
		// honored here; observing it one pass late is acceptable.
		if !e.handle.IsActive() || e.handle.IsPaused() {
			s.InvokeHook(HookCtx{
				Domain: s,
				Pos:    HookPosCommandSkip,
				Item:   s.infoFor(e, now),
			})
			continue
		}

		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosBeforeCommand,
			Item:   s.infoFor(e, now),
		})

		if err := e.cmd.Execute(now); err != nil {
			return err
		}

		if e.cmd.IsRepeating() {
			s.lock.Lock()
			e.nextDueTime = now + e.cmd.SampleRecurDelay(s.rng)
			s.lock.Unlock()
		} else {
			e.handle.Stop()
		}

		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosAfterCommand,
			Item:   s.infoFor(e, now),
		})
	}

	return nil
}

// collectDue garbage-collects stopped registrations and snapshots the due
// entries. Removal happens before iteration, never during it, so a firing
// can neither skip nor double-fire a still-active neighbor.
func (s *CommandStream) collectDue(now VTimeInSec) []*streamEntry {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.paused {
		return nil
	}

	for id, e := range s.entries {
		if !e.handle.IsActive() {
			delete(s.entries, id)
		}
	}

	due := make([]*streamEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.handle.IsPaused() {
			continue
		}
		if e.nextDueTime <= now {
			due = append(due, e)
		}
	}

	return due
}

func (s *CommandStream) infoFor(e *streamEntry, now VTimeInSec) CommandInfo {
	s.lock.Lock()
	nextDue := e.nextDueTime
	s.lock.Unlock()

	return CommandInfo{
		Stream:        s.name,
		CommandID:     e.cmd.ID(),
		HandleID:      e.handle.ID(),
		Time:          now,
		NextDueTime:   nextDue,
		LastGap:       e.cmd.LastGap(),
		TimesExecuted: e.cmd.TimesExecuted(),
	}
}
