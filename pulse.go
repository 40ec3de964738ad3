package pulse

import "github.com/AnatoleLucet/pulse/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// readMarker and writeMarker let the runtime predicates work on values of
// unknown element type.
type readMarker interface{ reactiveRead() }
type writeMarker interface{ reactiveWrite() }

// IsReadSignal reports whether v is a readable reactive value (a signal, a
// computed, or a readonly wrapper).
func IsReadSignal(v any) bool {
	_, ok := v.(readMarker)
	return ok
}

// IsWriteSignal reports whether v is a writable signal.
func IsWriteSignal(v any) bool {
	_, ok := v.(writeMarker)
	return ok
}

// Peek runs fn with dependency tracking suspended: reads inside do not
// register sources on the surrounding computation. The current scope is
// preserved, so OnCleanup and OnError still attach.
func Peek[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Tracker().RunPeeked(func() { result = fn() })
	return result
}

// Untrack runs fn with both dependency tracking and the current scope
// suspended.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Tracker().RunUntracked(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called when the current scope is
// disposed or reset. The returned token removes the registration.
func OnCleanup(fn func()) func() {
	return internal.GetRuntime().OnCleanup(fn)
}

// OnError registers an error handler on the current scope. Handlers are tried
// nearest scope first; a handler that panics passes the error on to the next.
func OnError(fn func(any)) {
	internal.GetRuntime().OnError(fn)
}

// FlushSync drains the effect queue now. Calling it while a flush is already
// draining is a no-op.
func FlushSync() {
	internal.GetRuntime().FlushSync()
}

// OnSettled registers fn to run once after the next flush fully settles,
// including effects enqueued by other effects.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

// NewBatch batches multiple signal writes into a single update cycle,
// instead of scheduling updates after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// SetFlushHook installs the host's deferred-flush trigger: it is invoked once
// per cycle with the flush function, which the host calls when its event loop
// is idle. Without a hook, draining happens at FlushSync or when the
// outermost batch completes.
func SetFlushHook(hook func(flush func())) {
	internal.GetRuntime().Scheduler().SetFlushHook(hook)
}

// GetContext resolves key against the current scope chain.
func GetContext(key any) (any, bool) {
	return internal.GetRuntime().GetContext(key)
}

// SetContext stores value under key on the current scope only; parents and
// siblings never observe it.
func SetContext(key, value any) {
	internal.GetRuntime().SetContext(key, value)
}
