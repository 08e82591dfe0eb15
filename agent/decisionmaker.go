// Package agent binds an agent's periodic callbacks to the scheduling core.
package agent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Belfegnar/CrystalAI/scheduling"
)

// A UtilityAI evaluates an agent's options and selects its next behavior.
// The scheduling core carries it opaquely; only the host's think callback
// invokes it.
type UtilityAI interface {
	Select(provider ContextProvider)
}

// A ContextProvider supplies the world state a UtilityAI reads.
type ContextProvider interface {
	Context() interface{}
}

// ErrNilScheduler is returned when a DecisionMaker is constructed without a
// scheduler.
var ErrNilScheduler = errors.New("decision maker requires a scheduler")

// ErrInvalidTransition is returned when a lifecycle call does not apply to
// the current state.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// State is the lifecycle state of a DecisionMaker.
type State int

// The lifecycle states. Stopped is terminal.
const (
	StateCreated State = iota
	StateStarted
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Default cadences of the two commands.
const (
	DefaultThinkFreq  = 10 * scheduling.Hz
	DefaultUpdateFreq = 60 * scheduling.Hz
)

// An Option configures a DecisionMaker at construction.
type Option func(*DecisionMaker)

// WithThinkAction installs the callback the think command invokes. The
// default action does nothing; hosts typically install a closure that runs
// their utility-AI evaluation against the context provider.
func WithThinkAction(action scheduling.Action) Option {
	return func(d *DecisionMaker) {
		d.thinkAction = action
	}
}

// WithUpdateAction installs the callback the update command invokes.
func WithUpdateAction(action scheduling.Action) Option {
	return func(d *DecisionMaker) {
		d.updateAction = action
	}
}

// A DecisionMaker owns one think command and one update command for a single
// agent, registers both with the scheduler when started, and forwards its
// lifecycle to the two registration handles. The commands default to zero
// initial delay and deterministic recurring delays of 10Hz (think) and 60Hz
// (update).
type DecisionMaker struct {
	lock  sync.Mutex
	state State

	ai        UtilityAI
	provider  ContextProvider
	scheduler *scheduling.Scheduler

	thinkAction  scheduling.Action
	updateAction scheduling.Action

	thinkCmd  *scheduling.DeferredCommand
	updateCmd *scheduling.DeferredCommand

	thinkHandle  *scheduling.CommandHandle
	updateHandle *scheduling.CommandHandle
}

// NewDecisionMaker creates a DecisionMaker in the Created state. The ai and
// provider are carried opaquely and never invoked by this package; scheduler
// must not be nil.
func NewDecisionMaker(
	ai UtilityAI,
	provider ContextProvider,
	scheduler *scheduling.Scheduler,
	opts ...Option,
) (*DecisionMaker, error) {
	if scheduler == nil {
		return nil, ErrNilScheduler
	}

	d := &DecisionMaker{
		ai:        ai,
		provider:  provider,
		scheduler: scheduler,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.thinkAction == nil {
		d.thinkAction = func() error { return nil }
	}
	if d.updateAction == nil {
		d.updateAction = func() error { return nil }
	}

	var err error
	d.thinkCmd, err = scheduling.NewDeferredCommand(d.thinkAction)
	if err != nil {
		return nil, err
	}
	d.thinkCmd.SetRecurDelayInterval(
		scheduling.NewPointInterval(DefaultThinkFreq.Period()))

	d.updateCmd, err = scheduling.NewDeferredCommand(d.updateAction)
	if err != nil {
		return nil, err
	}
	d.updateCmd.SetRecurDelayInterval(
		scheduling.NewPointInterval(DefaultUpdateFreq.Period()))

	return d, nil
}

// AI returns the utility AI this agent carries.
func (d *DecisionMaker) AI() UtilityAI {
	return d.ai
}

// ContextProvider returns the context provider this agent carries.
func (d *DecisionMaker) ContextProvider() ContextProvider {
	return d.provider
}

// State returns the current lifecycle state.
func (d *DecisionMaker) State() State {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.state
}

// Start registers both commands with the scheduler's streams and retains the
// returned handles. Valid only in the Created state.
func (d *DecisionMaker) Start() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state != StateCreated {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, d.state)
	}

	d.thinkHandle = d.scheduler.ThinkStream().Add(d.thinkCmd)
	d.updateHandle = d.scheduler.UpdateStream().Add(d.updateCmd)
	d.state = StateStarted

	return nil
}

// Stop deactivates both handles. Stopping is terminal; a stopped agent
// cannot be started or resumed again.
func (d *DecisionMaker) Stop() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state == StateStopped {
		return fmt.Errorf("%w: stop from %s", ErrInvalidTransition, d.state)
	}

	if d.thinkHandle != nil {
		d.thinkHandle.Stop()
	}
	if d.updateHandle != nil {
		d.updateHandle.Stop()
	}
	d.state = StateStopped

	return nil
}

// Pause pauses both handles. Due-times are frozen, so resuming yields at
// most one catch-up firing per command.
func (d *DecisionMaker) Pause() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state != StateStarted {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, d.state)
	}

	d.thinkHandle.Pause()
	d.updateHandle.Pause()
	d.state = StatePaused

	return nil
}

// Resume resumes both handles.
func (d *DecisionMaker) Resume() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state != StatePaused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, d.state)
	}

	d.thinkHandle.Resume()
	d.updateHandle.Resume()
	d.state = StateStarted

	return nil
}

// SetThinkDelayMin sets the lower bound of the think recurring delay. The
// setters reach the same command instance the stream references, so calls
// after Start take effect on the next sampled delay.
func (d *DecisionMaker) SetThinkDelayMin(v scheduling.VTimeInSec) {
	d.thinkCmd.SetRecurDelayMin(v)
}

// SetThinkDelayMax sets the upper bound of the think recurring delay.
func (d *DecisionMaker) SetThinkDelayMax(v scheduling.VTimeInSec) {
	d.thinkCmd.SetRecurDelayMax(v)
}

// SetUpdateDelayMin sets the lower bound of the update recurring delay.
func (d *DecisionMaker) SetUpdateDelayMin(v scheduling.VTimeInSec) {
	d.updateCmd.SetRecurDelayMin(v)
}

// SetUpdateDelayMax sets the upper bound of the update recurring delay.
func (d *DecisionMaker) SetUpdateDelayMax(v scheduling.VTimeInSec) {
	d.updateCmd.SetRecurDelayMax(v)
}

// SetThinkInitDelayInterval sets the delay before the first think firing.
// Only effective before Start, since the stream samples it at registration.
func (d *DecisionMaker) SetThinkInitDelayInterval(
	iv scheduling.Interval[scheduling.VTimeInSec],
) {
	d.thinkCmd.SetInitDelayInterval(iv)
}

// SetUpdateInitDelayInterval sets the delay before the first update firing.
func (d *DecisionMaker) SetUpdateInitDelayInterval(
	iv scheduling.Interval[scheduling.VTimeInSec],
) {
	d.updateCmd.SetInitDelayInterval(iv)
}

// ThinkCommand exposes the underlying think command for inspection.
func (d *DecisionMaker) ThinkCommand() *scheduling.DeferredCommand {
	return d.thinkCmd
}

// UpdateCommand exposes the underlying update command for inspection.
func (d *DecisionMaker) UpdateCommand() *scheduling.DeferredCommand {
	return d.updateCmd
}
