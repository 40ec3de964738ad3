package pulse

import "github.com/AnatoleLucet/pulse/internal"

// ComputedOptions configures computed behavior.
type ComputedOptions[T any] struct {
	// Name shows up in cycle reports and graph dumps.
	Name string

	// Equals decides whether a recompute actually changed the value;
	// unchanged results do not propagate. Defaults to identity on
	// comparable values.
	Equals func(prev, next T) bool

	// Initial seeds the cached value held before the first run and kept
	// when the first run fails. Read always runs the first evaluation, so
	// a successful first run replaces it.
	Initial *T

	// Scoped resets the computation's child scopes, cleanups and error
	// handlers before every re-run, the way effects do.
	Scoped bool
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a computed signal that derives its value from other
// signals. It is lazy: the compute function does not run until the first
// Read, and re-runs only when a read finds a source actually changed.
func NewComputed[T any](compute func() T, opts ...ComputedOptions[T]) *Computed[T] {
	c := internal.GetRuntime().NewComputed(func() any {
		return compute()
	})
	c.SetName("computed")

	if len(opts) > 0 {
		if opts[0].Name != "" {
			c.SetName(opts[0].Name)
		}
		if opts[0].Equals != nil {
			eq := opts[0].Equals
			c.SetEquals(func(prev, next any) bool {
				return eq(as[T](prev), as[T](next))
			})
		}
		if opts[0].Initial != nil {
			c.SetInitial(*opts[0].Initial)
		}
		if opts[0].Scoped {
			c.SetScoped(true)
		}
	}

	return &Computed[T]{c}
}

// Read the current value of the computed signal, tracking the dependency if
// within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

func (c *Computed[T]) reactiveRead() {}
