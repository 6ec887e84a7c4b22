package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyState      = errors.New("state cannot be empty")
	ErrEmptyEvent      = errors.New("event cannot be empty")
	ErrDuplicateEdge   = errors.New("transition already defined for this state and event")
	ErrNilInitialState = errors.New("initial state cannot be empty")
)

// NoTransitionError indicates no transition is defined for the current
// state/event combination.
type NoTransitionError struct {
	State State
	Event Event
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

// TransitionRejectedError indicates the transition's guard refused it.
type TransitionRejectedError struct {
	State State
	Event Event
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("transition from state %q for event %q rejected by guard", e.State, e.Event)
}

// IsNoTransitionError reports whether err is a NoTransitionError.
func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

// IsTransitionRejectedError reports whether err is a TransitionRejectedError.
func IsTransitionRejectedError(err error) bool {
	var e *TransitionRejectedError
	return errors.As(err, &e)
}
