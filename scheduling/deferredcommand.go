package scheduling

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/xid"
)

// An Action is the zero-argument callback a DeferredCommand wraps. A non-nil
// error propagates unmodified to whoever drives the stream; bookkeeping for
// that invocation does not happen.
type Action func() error

// ErrNilAction is returned when a DeferredCommand is constructed without an
// action.
var ErrNilAction = errors.New("deferred command requires a non-nil action")

// A DeferredCommand wraps an action together with its randomized delay
// configuration and its execution bookkeeping. The owner (typically a
// DecisionMaker) keeps the only reference that reconfigures it; a stream
// holds the same instance, so reconfiguration after registration takes
// effect on the next sampled delay.
type DeferredCommand struct {
	id string

	lock       sync.Mutex
	action     Action
	initDelay  Interval[VTimeInSec]
	recurDelay Interval[VTimeInSec]
	repeating  bool

	timesExecuted     uint64
	lastExecutionTime VTimeInSec
	lastGap           VTimeInSec
	hasExecuted       bool
}

// NewDeferredCommand creates a repeating DeferredCommand with zero delays.
func NewDeferredCommand(action Action) (*DeferredCommand, error) {
	if action == nil {
		return nil, ErrNilAction
	}

	c := &DeferredCommand{
		id:        xid.New().String(),
		action:    action,
		repeating: true,
	}

	return c, nil
}

// ID returns the unique ID of the command.
func (c *DeferredCommand) ID() string {
	return c.id
}

// IsRepeating returns true if the command reschedules itself after firing.
func (c *DeferredCommand) IsRepeating() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.repeating
}

// SetRepeating marks the command as repeating or one-shot. A one-shot
// command fires exactly once after its initial delay.
func (c *DeferredCommand) SetRepeating(repeating bool) {
	c.lock.Lock()
	c.repeating = repeating
	c.lock.Unlock()
}

// SampleInitDelay draws the delay before the first firing. Every call draws
// a fresh value; a stream reads it exactly once, at registration.
func (c *DeferredCommand) SampleInitDelay(r *rand.Rand) VTimeInSec {
	c.lock.Lock()
	iv := c.initDelay
	c.lock.Unlock()
	return iv.Sample(r)
}

// SampleRecurDelay draws the delay between two consecutive firings. Every
// call draws a fresh value; a stream reads it exactly once per firing.
func (c *DeferredCommand) SampleRecurDelay(r *rand.Rand) VTimeInSec {
	c.lock.Lock()
	iv := c.recurDelay
	c.lock.Unlock()
	return iv.Sample(r)
}

// InitDelayInterval returns the configured initial-delay interval.
func (c *DeferredCommand) InitDelayInterval() Interval[VTimeInSec] {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.initDelay
}

// RecurDelayInterval returns the configured recurring-delay interval.
func (c *DeferredCommand) RecurDelayInterval() Interval[VTimeInSec] {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.recurDelay
}

// SetInitDelayInterval replaces the initial-delay interval, sanitizing the
// bounds.
func (c *DeferredCommand) SetInitDelayInterval(iv Interval[VTimeInSec]) {
	c.lock.Lock()
	c.initDelay = iv.ClampToPositive()
	c.lock.Unlock()
}

// SetRecurDelayInterval replaces the recurring-delay interval, sanitizing the
// bounds.
func (c *DeferredCommand) SetRecurDelayInterval(iv Interval[VTimeInSec]) {
	c.lock.Lock()
	c.recurDelay = iv.ClampToPositive()
	c.lock.Unlock()
}

// SetInitDelayMin replaces the lower bound of the initial-delay interval.
// The upper bound is raised silently when it would fall below the new
// minimum.
func (c *DeferredCommand) SetInitDelayMin(v VTimeInSec) {
	c.lock.Lock()
	c.initDelay = c.initDelay.WithLow(v)
	c.lock.Unlock()
}

// SetInitDelayMax replaces the upper bound of the initial-delay interval.
// The lower bound is lowered silently when it would exceed the new maximum.
func (c *DeferredCommand) SetInitDelayMax(v VTimeInSec) {
	c.lock.Lock()
	c.initDelay = c.initDelay.WithHigh(v)
	c.lock.Unlock()
}

// SetRecurDelayMin replaces the lower bound of the recurring-delay interval.
func (c *DeferredCommand) SetRecurDelayMin(v VTimeInSec) {
	c.lock.Lock()
	c.recurDelay = c.recurDelay.WithLow(v)
	c.lock.Unlock()
}

// SetRecurDelayMax replaces the upper bound of the recurring-delay interval.
func (c *DeferredCommand) SetRecurDelayMax(v VTimeInSec) {
	c.lock.Lock()
	c.recurDelay = c.recurDelay.WithHigh(v)
	c.lock.Unlock()
}

// TimesExecuted returns how many times the command fired successfully. The
// counter wraps on overflow.
func (c *DeferredCommand) TimesExecuted() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.timesExecuted
}

// LastExecutionTime returns the time of the most recent successful firing,
// zero before the first.
func (c *DeferredCommand) LastExecutionTime() VTimeInSec {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lastExecutionTime
}

// LastGap returns the gap between the two most recent firings, zero before
// the second.
func (c *DeferredCommand) LastGap() VTimeInSec {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lastGap
}

// Execute invokes the wrapped action synchronously. On success, the
// bookkeeping is updated with now as the execution time. On failure, the
// bookkeeping is untouched and the action's error is returned unmodified.
func (c *DeferredCommand) Execute(now VTimeInSec) error {
	if err := c.action(); err != nil {
		return err
	}

	c.lock.Lock()
	if c.hasExecuted {
		c.lastGap = now - c.lastExecutionTime
	}
	c.lastExecutionTime = now
	c.hasExecuted = true
	c.timesExecuted++
	c.lock.Unlock()

	return nil
}
