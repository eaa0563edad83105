// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package event implements the EventSource bridge: a central,
// multi-producer single-consumer collector aggregating events from every
// service, and the translation step that turns each event into the domain
// action its owning subsystem actually reduces on.
package event

import (
	"fmt"
	"sync"

	"github.com/luxfi/dispatch/action"
)

// Kind is the finite enumeration of event variants a Source can carry,
// mirroring action.Kind's reflection registry but for the service -> core
// boundary instead of the dispatch boundary.
type Kind uint32

var (
	kindsMu sync.Mutex
	kinds   []string
	byName  = map[string]Kind{}
)

// Register adds a new event kind. Service packages call this once per event
// variant at init time (e.g. "LedgerWriteSuccess", "P2pChannelOpened").
func Register(name string) Kind {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	if _, exists := byName[name]; exists {
		panic(fmt.Sprintf("event: duplicate event kind registration %q", name))
	}
	k := Kind(len(kinds))
	kinds = append(kinds, name)
	byName[name] = k
	return k
}

func (k Kind) String() string {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	if int(k) >= len(kinds) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kinds[k]
}

// Event is a tagged value produced by a service and delivered to the
// EventSource.
type Event interface {
	Kind() Kind
}

// KindNewEvent is the distinguished action kind every translated event is
// first wrapped in before it enters the main queue.
var KindNewEvent = action.Register("NewEvent", action.LevelDebug)

// NewEventAction is the wrapper action the Source dispatches for every
// event it drains. Its own reducer (Source.Reduce, wired once at Store
// construction) is what performs the event -> domain-action translation;
// NewEventAction itself carries no subsystem semantics.
type NewEventAction struct {
	Event Event
}

func (NewEventAction) Kind() action.Kind { return KindNewEvent }
func (NewEventAction) Effectful() bool   { return false }

func (a NewEventAction) LogFields() []any {
	return []any{"eventKind", a.Event.Kind().String()}
}

// Translator converts one Event into the domain Action its subsystem should
// process. Returning nil means the event is deliberately dropped rather
// than translated.
type Translator func(e Event) action.Action

// Source is the central multi-producer, single-consumer event collector.
// Exactly one Source exists per Store.
type Source struct {
	ch          chan Event
	translateMu sync.Mutex
	translators map[Kind]Translator
}

// NewSource creates a Source with the given channel buffer size. The
// channel is bounded: producers block briefly when full,
// which is acceptable because producers are I/O-bound.
func NewSource(buffer int) *Source {
	return &Source{
		ch:          make(chan Event, buffer),
		translators: make(map[Kind]Translator),
	}
}

// RegisterTranslator wires the translation for one event kind. Subsystems
// register their translator once, when the Store composing them is built.
func (s *Source) RegisterTranslator(k Kind, t Translator) {
	s.translateMu.Lock()
	defer s.translateMu.Unlock()
	s.translators[k] = t
}

// Emit delivers e to the Source, blocking if the channel is full. Called by
// service goroutines, never by the Store's own thread.
func (s *Source) Emit(e Event) {
	s.ch <- e
}

// TryEmit is a non-blocking variant. Returns false if the channel was full.
func (s *Source) TryEmit(e Event) bool {
	select {
	case s.ch <- e:
		return true
	default:
		return false
	}
}

// Chan exposes the underlying channel for the Store's select loop.
func (s *Source) Chan() <-chan Event {
	return s.ch
}

// Reduce is the NewEventAction reducer: it looks up the translator for the
// wrapped event's kind and, if one is registered, dispatches the resulting
// domain action. This is dispatch-only: it never mutates any substate.
func (s *Source) Reduce(disp action.Dispatcher, a NewEventAction) {
	s.translateMu.Lock()
	t, ok := s.translators[a.Event.Kind()]
	s.translateMu.Unlock()
	if !ok {
		return
	}
	if translated := t(a.Event); translated != nil {
		disp.Dispatch(translated)
	}
}

// Len reports the number of events currently queued, for health/metrics.
func (s *Source) Len() int {
	return len(s.ch)
}
