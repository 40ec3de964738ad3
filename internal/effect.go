package internal

// Effect is a scoped computation run for its side effects; its return value
// is never observed. When the body yields a cleanup function, it is
// registered on the effect's own scope, so it runs before the next re-run and
// at final disposal.
type Effect struct {
	*Computed

	queued bool
}

// NewEffect creates an effect around fn. By default the first run is queued
// for the next flush; immediate effects run inline during construction.
func (r *Runtime) NewEffect(fn func() func(), immediate bool) *Effect {
	c := r.NewComputed(nil)
	c.Signal.name = "effect"
	c.scoped = true

	e := &Effect{Computed: c}
	c.effect = e
	c.compute = func() any {
		if cleanup := fn(); cleanup != nil {
			c.Owner.OnCleanup(cleanup)
		}

		return nil
	}

	if immediate {
		c.recompute(r)
		return e
	}

	c.Signal.state = StateInert
	r.scheduler.Enqueue(e)
	r.Schedule()

	return e
}

// Stop disposes the effect's scope; it will never run again.
func (e *Effect) Stop() {
	e.Owner.Dispose()
}

// runEffect executes one queued effect during a flush, honoring two ordering
// rules. An effect whose ancestor computation is dirty is a zombie: that
// ancestor's recompute will dispose this scope, so the effect is skipped this
// cycle. Non-clean ancestor effects run outermost-first, so a child never
// observes stale parent state.
func (r *Runtime) runEffect(e *Effect) {
	if e.state == StateDisposed || e.state == StateClean {
		return
	}

	var ancestors []*Effect
	for o := e.Owner.parent; o != nil; o = o.parent {
		if o.node == nil {
			continue
		}

		if anc := o.node.effect; anc != nil {
			if anc.state != StateClean && anc.state != StateDisposed {
				ancestors = append(ancestors, anc)
			}
		} else if o.node.state == StateDirty {
			return
		}
	}

	for i := len(ancestors) - 1; i >= 0; i-- {
		r.runEffect(ancestors[i])
	}

	if e.state == StateDisposed || e.state == StateClean {
		return
	}

	e.update(r)
}
