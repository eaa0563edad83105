// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"fmt"
	"time"

	"github.com/luxfi/dispatch/action"
)

// EnablingCondition is the Store-level predicate gate for one action kind: a
// pure function of the composite State, the dispatch-time Timestamp, and the
// action itself. It must never mutate st.
type EnablingCondition func(st *State, now time.Time, a action.Action) bool

// RegisterEnabling wires the enabling condition for one action kind.
// Subsystem wiring code calls this once per action variant, alongside the
// matching Register call, so that ProcessNext can gate dispatch on it
// before any reducer runs. An action kind with no registered condition is
// always enabled.
func (s *Store) RegisterEnabling(k action.Kind, cond EnablingCondition) {
	if _, exists := s.conditions[k]; exists {
		panic(fmt.Sprintf("store: enabling condition already registered for action kind %q", k.String()))
	}
	s.conditions[k] = cond
}

// isEnabled evaluates the registered condition for a, returning true when
// none is registered (an action kind with no declared predicate is always
// dispatchable).
func (s *Store) isEnabled(now time.Time, a action.Action) bool {
	cond, ok := s.conditions[a.Kind()]
	if !ok {
		return true
	}
	return cond(s.state, now, a)
}
