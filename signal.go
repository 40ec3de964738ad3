package pulse

import "github.com/AnatoleLucet/pulse/internal"

// ReadSignal is the read-only face of a reactive value.
type ReadSignal[T any] interface {
	// Read the current value, tracking the dependency if within a reactive
	// context.
	Read() T
}

// SignalOptions configures signal behavior.
type SignalOptions[T any] struct {
	// Name shows up in cycle reports and graph dumps.
	Name string

	// Equals decides whether a write actually changed the value; equal
	// writes are no-ops. Defaults to identity on comparable values.
	Equals func(prev, next T) bool
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your typical read/write signal, owned by the current
// scope if one is running.
func NewSignal[T any](initial T, opts ...SignalOptions[T]) *Signal[T] {
	r := internal.GetRuntime()

	s := r.NewSignal(initial)
	applySignalOptions(s, opts)
	r.OwnSignal(s)

	return &Signal[T]{s}
}

func applySignalOptions[T any](s *internal.Signal, opts []SignalOptions[T]) {
	if len(opts) == 0 {
		return
	}

	if opts[0].Name != "" {
		s.SetName(opts[0].Name)
	}
	if opts[0].Equals != nil {
		eq := opts[0].Equals
		s.SetEquals(func(prev, next any) bool {
			return eq(as[T](prev), as[T](next))
		})
	}
}

// Read the current value of the signal, tracking the dependency if within a
// reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Write a new value to the signal, triggering updates to any dependents. The
// value is stored as-is; a function value is data, never an updater.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

// Update transforms the current value with fn and writes the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.signal.Write(fn(as[T](s.signal.Value())))
}

// Readonly returns a view of this signal that exposes only Read.
func (s *Signal[T]) Readonly() ReadSignal[T] {
	return &readonly[T]{s.signal}
}

func (s *Signal[T]) reactiveRead()  {}
func (s *Signal[T]) reactiveWrite() {}

type readonly[T any] struct {
	signal *internal.Signal
}

func (s *readonly[T]) Read() T {
	return as[T](s.signal.Read())
}

func (s *readonly[T]) reactiveRead() {}
