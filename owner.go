package pulse

import "github.com/AnatoleLucet/pulse/internal"

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new reactive owner.
// An owner manages the lifecycle of reactive nodes created within its
// context.
func NewOwner() *Owner {
	return &Owner{internal.GetRuntime().NewOwner()}
}

// Root runs fn inside a detached scope with no parent; fn receives the
// dispose function that tears the scope down.
func Root[T any](fn func(dispose func()) T) T {
	owner := internal.GetRuntime().NewRoot()

	var result T
	owner.Run(func() error {
		result = fn(owner.Dispose)
		return nil
	})

	return result
}

// GetOwner returns the currently running scope, nil outside any scope.
func GetOwner() *Owner {
	owner := internal.GetRuntime().CurrentOwner()
	if owner == nil {
		return nil
	}

	return &Owner{owner}
}

// Run a function within the context of this owner.
// Each reactive node created within the function will be a child of this
// owner, and will be disposed when Dispose() is called on this owner.
func (o *Owner) Run(fn func() error) error { return o.owner.Run(fn) }

// Dispose this owner and all its children. Idempotent.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Disposed reports whether the owner has been torn down.
func (o *Owner) Disposed() bool { return o.owner.Disposed() }

// OnCleanup adds a function to be called when the owner is disposed; the
// returned token removes it again.
func (o *Owner) OnCleanup(fn func()) func() { return o.owner.OnCleanup(fn) }

// OnDispose adds a function to be called at final disposal only.
func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }

// OnError adds a function to be called when a panic occurs within this owner.
// If no error listener is registered, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
