// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package action

import (
	"fmt"
	"sync/atomic"
)

// strictMode controls whether BugCondition panics (instrumented/test builds)
// or logs-and-returns (release builds). The Store sets this once at
// construction from its own configuration; it defaults to permissive so
// library consumers who never touch it get production-safe behavior.
var strictMode atomic.Bool

// SetStrictMode toggles panic-on-bug behavior for BugCondition. Store.New
// calls this according to its StrictBugChecks option.
func SetStrictMode(strict bool) {
	strictMode.Store(strict)
}

// StrictMode reports the current mode, mainly for tests.
func StrictMode() bool {
	return strictMode.Load()
}

// BugLogger is the minimal logging capability BugCondition needs. log.Logger
// satisfies it.
type BugLogger interface {
	Error(msg string, ctx ...any)
}

// BugCondition reports a path the type system could not exclude, but that an
// enabling condition should have prevented. cond is the invariant that is
// expected to hold;
// BugCondition reports (and, in strict mode, panics) when it does not.
//
// Usage inside a reducer:
//
//	if action.BugCondition(log, peer != nil, "connection reducer: peer missing", "peerID", peerID) {
//	    return
//	}
//
// BugCondition returns true when the bug condition fired (i.e. cond was
// false), so callers can early-return and treat the action as a no-op.
func BugCondition(logger BugLogger, cond bool, msg string, fields ...any) bool {
	if cond {
		return false
	}
	if strictMode.Load() {
		panic(fmt.Sprintf("bug_condition: %s %v", msg, fields))
	}
	if logger != nil {
		logger.Error("bug_condition: "+msg, fields...)
	}
	return true
}
