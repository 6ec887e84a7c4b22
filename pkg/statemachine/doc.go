// Package statemachine implements a small finite state machine for driving
// strictly ordered pipelines.
//
// States and events are plain strings. Each transition connects exactly one
// source state to one target state on one event, optionally protected by a
// Guard that can reject the transition at runtime and accompanied by an
// Action executed before the state change. A failing action aborts the
// transition, so the machine never advances past a step that did not
// complete.
//
// Typed errors distinguish "no such transition" from "guard rejected";
// callers branch with errors.As or the Is* helper predicates rather than on
// string matching.
//
// # Usage
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Loaded, Load),
//		statemachine.WithTransition(Loaded, Selected, Select,
//			statemachine.WithGuard(selectionIsKnown),
//		),
//	)
//
//	if err := sm.Fire(ctx, Load, nil); err != nil {
//		// transition rejected or undefined
//	}
package statemachine
