package madafsa

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// Errors returned at the automaton's boundary. These are not the result of
// a defect in the core; they describe ordinary, expected conditions that a
// caller may legitimately hit.
var (
	// ErrNotBuilt is returned by operations that require a finished build
	// when no build has run yet (or the automaton has just been cleared).
	ErrNotBuilt = errors.New("madafsa: automaton has not been built")

	// ErrAlreadyBuilding is returned by BuildFromWordList when it is called
	// while a previous BuildFromWordList on the same automaton has not
	// returned. BuildFromWordList is not reentrant; callers must serialize
	// access.
	ErrAlreadyBuilding = errors.New("madafsa: build already in progress")

	// ErrWordIndexRange is returned by Word when the index is outside
	// [0, NumberOfWords()).
	ErrWordIndexRange = errors.New("madafsa: word index out of range")
)

// tracer writes to trace with key 'madafsa'
func tracer() tracing.Trace {
	return tracing.Select("madafsa")
}

// assert reports a defect in the core itself: a duplicate transition
// insertion, a replace of a missing transition, or a root allocated
// anywhere but index 0. (Verify reports the invariants it audits by
// returning false, not through assert.) These never occur on correct input
// and are not meant to be recovered from; assert reports and panics immediately so
// that the defect is caught close to its cause, instead of surfacing later
// as a silently wrong query result.
func assert(condition bool, format string, args ...interface{}) {
	if condition {
		return
	}
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("invariant violation: %s", msg)
	panic(fmt.Errorf("madafsa: invariant violation: %s", msg))
}
