package internal

type Runtime struct {
	tracker   *Tracker
	scheduler *Scheduler
	batcher   *Batcher
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   NewTracker(),
		scheduler: NewScheduler(),
		batcher:   NewBatcher(),
	}
}

func (r *Runtime) Tracker() *Tracker {
	return r.tracker
}

func (r *Runtime) Scheduler() *Scheduler {
	return r.scheduler
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

func (r *Runtime) OnCleanup(fn func()) func() {
	owner := r.CurrentOwner()
	if owner == nil {
		return func() {}
	}

	return owner.OnCleanup(fn)
}

func (r *Runtime) OnError(fn func(any)) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnError(fn)
	}
}

// GetContext resolves key against the current scope chain.
func (r *Runtime) GetContext(key any) (any, bool) {
	owner := r.CurrentOwner()
	if owner == nil {
		return nil, false
	}

	return owner.lookupContext(key)
}

// SetContext shallow-writes to the current scope only; parents and siblings
// never observe the value.
func (r *Runtime) SetContext(key, value any) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.setContext(key, value)
	}
}
