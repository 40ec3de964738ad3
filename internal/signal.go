package internal

import (
	"iter"
	"reflect"
)

type Signal struct {
	name    string
	value   any
	version uint64
	equals  func(prev, next any) bool
	state   State

	// derived points back to the computation this signal is the output of,
	// nil for plain source signals.
	derived *Computed

	obsHead *Link
	obsTail *Link
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		name:   "signal",
		value:  initial,
		equals: defaultEquals,
	}
}

// OwnSignal ties the signal's lifetime to the current owner: once that scope
// is disposed, writes become no-ops and reads stop tracking. A signal created
// outside any scope is orphaned and lives until GC.
func (r *Runtime) OwnSignal(s *Signal) {
	if owner := r.tracker.CurrentOwner(); owner != nil {
		owner.OnCleanup(s.dispose)
	}
}

// Read the current value, tracking the dependency if a reader is running.
func (s *Signal) Read() any {
	if s.state == StateDisposed {
		return s.value
	}

	GetRuntime().tracker.Track(s)

	return s.value
}

// Write a new value. Equal values are a no-op; otherwise observers are marked
// and any affected effects are queued for the next flush.
func (s *Signal) Write(v any) {
	if s.state == StateDisposed {
		return
	}

	if s.equals(s.value, v) {
		return
	}

	r := GetRuntime()

	s.value = v
	s.version++
	s.notify(r)
	r.Schedule()
}

// Value returns the current value without tracking.
func (s *Signal) Value() any {
	return s.value
}

func (s *Signal) Version() uint64 {
	return s.version
}

func (s *Signal) State() State {
	return s.state
}

func (s *Signal) Name() string {
	return s.name
}

func (s *Signal) SetName(name string) {
	s.name = name
}

func (s *Signal) SetEquals(equals func(prev, next any) bool) {
	if equals != nil {
		s.equals = equals
	}
}

// notify marks direct observers dirty and their own observers check. Already
// dirty observers stop the walk early since their whole subtree is marked.
func (s *Signal) notify(r *Runtime) {
	for l := s.obsHead; l != nil; l = l.nextObs {
		l.obs.markDirty(r)
	}
}

// Observers returns an iterator over all observing computations.
func (s *Signal) Observers() iter.Seq[*Computed] {
	return func(yield func(*Computed) bool) {
		for l := s.obsHead; l != nil; l = l.nextObs {
			if !yield(l.obs) {
				return
			}
		}
	}
}

func (s *Signal) dispose() {
	if s.state == StateDisposed {
		return
	}
	s.state = StateDisposed

	for l := s.obsHead; l != nil; {
		next := l.nextObs
		l.detachFromObserver()
		l.prevObs = nil
		l.nextObs = nil
		l = next
	}

	s.obsHead = nil
	s.obsTail = nil
}

// defaultEquals is identity on comparable values. Uncomparable values
// (slices, maps, functions) always report a change instead of panicking.
func defaultEquals(prev, next any) bool {
	if prev == nil || next == nil {
		return prev == nil && next == nil
	}

	if !reflect.TypeOf(prev).Comparable() || !reflect.TypeOf(next).Comparable() {
		return false
	}

	return prev == next
}
