package pulse

import "github.com/AnatoleLucet/pulse/internal"

type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a new reactive context with an initial value.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(initial),
	}
}

// Value retrieves the current value of the context, inheriting from parent
// owners if not set in the current owner.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set a new value for the context in the current owner.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
