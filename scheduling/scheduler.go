package scheduling

import (
	"math/rand"
	"sync"
)

// Names of the two streams a Scheduler owns. Every agent registers one
// command with each.
const (
	ThinkStreamName  = "think"
	UpdateStreamName = "update"
)

// A Scheduler owns the think and update streams shared by all agents. The
// host simulation drives it by calling Tick once per frame with the current
// simulated time; the Scheduler does not own a clock.
type Scheduler struct {
	timeLock sync.RWMutex
	time     VTimeInSec

	think  *CommandStream
	update *CommandStream
}

// NewScheduler creates a Scheduler. All delay sampling derives from rng;
// pass a seeded source for deterministic runs. Each stream receives its own
// derived source so that registrations on one stream do not contend with the
// other.
func NewScheduler(rng *rand.Rand) *Scheduler {
	s := new(Scheduler)

	s.think = NewCommandStream(
		ThinkStreamName, rand.New(rand.NewSource(rng.Int63())), s)
	s.update = NewCommandStream(
		UpdateStreamName, rand.New(rand.NewSource(rng.Int63())), s)

	return s
}

// ThinkStream returns the stream that carries the agents' think commands.
func (s *Scheduler) ThinkStream() *CommandStream {
	return s.think
}

// UpdateStream returns the stream that carries the agents' update commands.
func (s *Scheduler) UpdateStream() *CommandStream {
	return s.update
}

// CurrentTime returns the time of the latest Tick.
func (s *Scheduler) CurrentTime() VTimeInSec {
	s.timeLock.RLock()
	t := s.time
	s.timeLock.RUnlock()
	return t
}

// Pause pauses both streams.
func (s *Scheduler) Pause() {
	s.think.Pause()
	s.update.Pause()
}

// Resume resumes both streams.
func (s *Scheduler) Resume() {
	s.think.Resume()
	s.update.Resume()
}

// Tick advances simulated time to now and fires the due commands, think
// stream first. The first action error aborts the remainder of the pass and
// is returned unmodified.
func (s *Scheduler) Tick(now VTimeInSec) error {
	s.timeLock.Lock()
	s.time = now
	s.timeLock.Unlock()

	if err := s.think.Advance(now); err != nil {
		return err
	}

	return s.update.Advance(now)
}
