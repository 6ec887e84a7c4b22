package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State is a named state of the machine.
type State string

// Event is a named trigger for a transition.
type Event string

// Guard evaluates whether a transition should be allowed. Data is the
// caller-supplied payload passed to Fire.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action executes a side effect during a transition, after the guard passes
// and before the state changes. Returning an error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

type transition struct {
	to     State
	guard  Guard
	action Action
}

type edge struct {
	from  State
	event Event
}

// Machine is a thread-safe finite state machine with exactly one transition
// per (state, event) pair. The transition table is fixed at construction.
type Machine struct {
	transitions map[edge]transition
	initial     State
	current     State
	mu          sync.RWMutex
}

// Option configures a machine during construction.
type Option func(*Machine) error

// TransitionOption configures a single transition.
type TransitionOption func(*transition)

// WithGuard sets the guard for a transition.
func WithGuard(guard Guard) TransitionOption {
	return func(t *transition) {
		t.guard = guard
	}
}

// WithAction sets the action for a transition.
func WithAction(action Action) TransitionOption {
	return func(t *transition) {
		t.action = action
	}
}

// WithTransition defines a transition from one state to another on an event.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		if from == "" || to == "" {
			return ErrEmptyState
		}
		if event == "" {
			return ErrEmptyEvent
		}

		key := edge{from: from, event: event}
		if _, exists := m.transitions[key]; exists {
			return fmt.Errorf("%w: %s on %s", ErrDuplicateEdge, from, event)
		}

		t := transition{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		m.transitions[key] = t
		return nil
	}
}

// New creates a machine starting in the given initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == "" {
		return nil, ErrNilInitialState
	}

	m := &Machine{
		transitions: make(map[edge]transition),
		initial:     initial,
		current:     initial,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew creates a machine and panics if construction fails. Transition
// tables are static configuration; a broken table should stop startup.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire triggers an event. The machine advances only when a transition is
// defined for the current state, its guard (if any) passes, and its action
// (if any) completes without error.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == "" {
		return ErrEmptyEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[edge{from: m.current, event: event}]
	if !ok {
		return &NoTransitionError{State: m.current, Event: event}
	}

	if t.guard != nil && !t.guard(ctx, m.current, event, data) {
		return &TransitionRejectedError{State: m.current, Event: event}
	}

	if t.action != nil {
		if err := t.action(ctx, m.current, t.to, event, data); err != nil {
			return fmt.Errorf("transition action: %w", err)
		}
	}

	m.current = t.to
	return nil
}

// CanFire reports whether Fire would advance the machine for this event,
// without executing the action.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transitions[edge{from: m.current, event: event}]
	if !ok {
		return false
	}
	return t.guard == nil || t.guard(ctx, m.current, event, data)
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
