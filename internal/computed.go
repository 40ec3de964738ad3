package internal

import (
	"iter"
	"log/slog"
)

// Computed is a cached, lazily validated derived value. It is a scope (it
// owns whatever is created during its runs) and a signal (its output can be
// observed) at the same time.
type Computed struct {
	*Owner
	*Signal

	compute func() any

	srcHead *Link
	srcTail *Link

	// scoped recomputes reset children, cleanups and error handlers first;
	// effects are always scoped.
	scoped bool

	initialized bool
	hasInitial  bool
	reconciling bool
	running     bool

	effect *Effect
}

// NewComputed creates a lazily dirty computation; the first Read triggers the
// initial evaluation.
func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := &Computed{
		Owner:   newOwner(),
		Signal:  &Signal{name: "computed", equals: defaultEquals, state: StateDirty},
		compute: compute,
	}
	c.Signal.derived = c
	c.Owner.node = c

	if owner := r.tracker.CurrentOwner(); owner != nil {
		owner.adopt(c.Owner)
	}

	return c
}

func (c *Computed) SetCompute(compute func() any) {
	c.compute = compute
}

func (c *Computed) SetScoped(scoped bool) {
	c.scoped = scoped
}

// SetInitial seeds the cached value used until the first successful run, and
// kept if that run fails.
func (c *Computed) SetInitial(v any) {
	c.value = v
	c.hasInitial = true
}

// Read returns the current value, validating or recomputing first when the
// node is marked. A disposed computation returns its last cached value.
func (c *Computed) Read() any {
	if c.state == StateDisposed {
		return c.value
	}

	r := GetRuntime()

	c.update(r)
	r.tracker.Track(c.Signal)

	return c.value
}

// update brings the node up to date with respect to its sources.
func (c *Computed) update(r *Runtime) {
	switch c.state {
	case StateCheck:
		c.validate(r)
	case StateDirty, StateInert:
		c.recompute(r)
	}
}

// validate walks sources in order, updating derived ones, and short-circuits
// to a recompute as soon as one source's version moved. If none did, the node
// settles back to clean without recomputing.
func (c *Computed) validate(r *Runtime) {
	for l := c.srcHead; l != nil; l = l.nextSrc {
		if d := l.src.derived; d != nil {
			d.update(r)
		}

		if l.version != l.src.version {
			c.state = StateDirty
			break
		}
	}

	if c.state == StateDirty {
		c.recompute(r)
		return
	}

	c.state = StateClean
}

func (c *Computed) recompute(r *Runtime) {
	if c.state == StateDisposed {
		return
	}

	if c.running {
		panic(CycleError(r.tracker.chain(c)))
	}
	c.running = true
	defer func() { c.running = false }()

	if c.scoped {
		c.Owner.reset()
	}

	c.srcTail = nil
	c.reconciling = true

	var value any
	var failure any

	func() {
		defer func() {
			if p := recover(); p != nil {
				failure = p
			}
		}()

		r.tracker.RunWithComputation(c, func() {
			value = c.compute()
		})
	}()

	c.reconciling = false

	// sources discovered before a failure stay linked so a later change
	// retries the computation; the cached value is untouched
	c.truncateSources()

	if failure != nil {
		// a failed computed retries on its next read; a failed effect
		// settles so that the next source change re-enqueues it
		if c.effect != nil {
			c.state = StateClean
		} else {
			c.state = StateDirty
		}
		c.raise(r, failure)
		return
	}

	if !c.initialized {
		c.initialized = true
		c.value = value
		c.version++
		c.state = StateClean
		return
	}

	if !c.equals(c.value, value) {
		c.value = value
		c.version++
		c.Signal.notify(r)
	}

	c.state = StateClean
}

// markDirty marks a direct observer of a changed source. Effects are queued;
// everything further downstream is only marked check.
func (c *Computed) markDirty(r *Runtime) {
	switch c.state {
	case StateDirty, StateInert, StateDisposed:
		return
	}

	c.state = StateDirty

	if c.effect != nil {
		r.scheduler.Enqueue(c.effect)
	}

	for l := c.obsHead; l != nil; l = l.nextObs {
		l.obs.markCheck(r)
	}
}

func (c *Computed) markCheck(r *Runtime) {
	if c.state != StateClean {
		return
	}

	c.state = StateCheck

	if c.effect != nil {
		r.scheduler.Enqueue(c.effect)
	}

	for l := c.obsHead; l != nil; l = l.nextObs {
		l.obs.markCheck(r)
	}
}

// raise routes a recovered panic through the scope's error handlers. An
// unhandled error propagates out of the triggering write or flush; a first
// evaluation failure with no seeded value is additionally reported loudly.
func (c *Computed) raise(r *Runtime, err any) {
	if c.Owner.handle(err) {
		return
	}

	if !c.initialized && !c.hasInitial {
		logger().Error("pulse: computation failed on its first run",
			"node", c.name,
			"error", err,
		)
	}

	panic(err)
}

// Sources returns an iterator over the signals read during the last run.
func (c *Computed) Sources() iter.Seq[*Signal] {
	return func(yield func(*Signal) bool) {
		for l := c.srcHead; l != nil; l = l.nextSrc {
			if !yield(l.src) {
				return
			}
		}
	}
}

// teardown severs the node from the graph on disposal. The cached value is
// kept so late readers still see the last value.
func (c *Computed) teardown() {
	c.clearSources()
	c.Signal.dispose()
}

var debugLogger *slog.Logger

// SetLogger overrides the logger used for diagnostics. Nil restores the
// default.
func SetLogger(l *slog.Logger) {
	debugLogger = l
}

func logger() *slog.Logger {
	if debugLogger != nil {
		return debugLogger
	}

	return slog.Default()
}
