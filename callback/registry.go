// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package callback

import "github.com/luxfi/dispatch/action"

// Registry is the state-resident callback idiom: used
// when multiple consumers subscribe to the same event (e.g. several
// subsystems all want to hear about the next accepted block), rather than a
// single inline callback embedded in one action's fields. A subsystem keeps
// a Registry as part of its substate, keyed by a caller-chosen id (a
// correlation id, a subscription id, ...).
type Registry[K comparable, P any] struct {
	subscribers map[K]Callback[P]
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, P any]() *Registry[K, P] {
	return &Registry[K, P]{subscribers: make(map[K]Callback[P])}
}

// Subscribe registers cb under key. A second Subscribe with the same key
// overwrites the previous registration.
func (r *Registry[K, P]) Subscribe(key K, cb Callback[P]) {
	r.subscribers[key] = cb
}

// Unsubscribe removes the registration for key, if any.
func (r *Registry[K, P]) Unsubscribe(key K) {
	delete(r.subscribers, key)
}

// Len reports the number of active subscriptions.
func (r *Registry[K, P]) Len() int {
	return len(r.subscribers)
}

// NotifyAll invokes every registered callback with payload, in
// nondeterministic map order.
func (r *Registry[K, P]) NotifyAll(disp action.Dispatcher, payload P) {
	for _, cb := range r.subscribers {
		cb.Invoke(disp, payload)
	}
}

// InvokeOne invokes and removes the single callback registered under key, if
// any. Returns false if no callback was registered.
func (r *Registry[K, P]) InvokeOne(disp action.Dispatcher, key K, payload P) bool {
	cb, ok := r.subscribers[key]
	if !ok {
		return false
	}
	delete(r.subscribers, key)
	cb.Invoke(disp, payload)
	return true
}

// Keys returns the currently registered subscription keys, in
// nondeterministic map order; callers that need a fixed order must sort
// them.
func (r *Registry[K, P]) Keys() []K {
	out := make([]K, 0, len(r.subscribers))
	for k := range r.subscribers {
		out = append(out, k)
	}
	return out
}
