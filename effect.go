package pulse

import "github.com/AnatoleLucet/pulse/internal"

// EffectOptions configures effect behavior.
type EffectOptions struct {
	// Name shows up in cycle reports and graph dumps.
	Name string

	// Immediate runs the first pass inline during construction instead of
	// queueing it for the next flush.
	Immediate bool
}

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs the given function whenever
// its dependencies change. The first run is queued for the next flush unless
// Immediate is set.
func NewEffect(fn func(), opts ...EffectOptions) *Effect {
	return newEffect(func() func() {
		fn()
		return nil
	}, opts)
}

// NewEffectWithCleanup is NewEffect for bodies that yield a cleanup function;
// the cleanup runs before the effect's next invocation and at final disposal.
func NewEffectWithCleanup(fn func() func(), opts ...EffectOptions) *Effect {
	return newEffect(fn, opts)
}

func newEffect(fn func() func(), opts []EffectOptions) *Effect {
	immediate := false
	name := "effect"
	if len(opts) > 0 {
		immediate = opts[0].Immediate
		if opts[0].Name != "" {
			name = opts[0].Name
		}
	}

	e := internal.GetRuntime().NewEffect(fn, immediate)
	e.SetName(name)

	return &Effect{e}
}

// Stop disposes the effect's scope; it will never run again. Idempotent.
func (e *Effect) Stop() {
	e.effect.Stop()
}
