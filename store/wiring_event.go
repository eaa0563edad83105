// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"time"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/event"
)

// wireEvents routes every NewEventAction through the Source's own
// translation-registry reducer.
func (s *Store) wireEvents() {
	s.Register(event.KindNewEvent, func(_ *State, disp action.Dispatcher, _ time.Time, a action.Action) {
		s.events.Reduce(disp, a.(event.NewEventAction))
	})
}
