package internal

// Context is a keyed value carried by the ownership tree. Lookup walks the
// ancestor chain; writes land on the nearest scope only (copy-on-write), so a
// child's value never leaks to its parent or siblings.
type Context struct {
	fallback any
}

func (r *Runtime) NewContext(initial any) *Context {
	return &Context{fallback: initial}
}

// Value resolves the context against the current scope chain, falling back to
// the initial value.
func (c *Context) Value() any {
	r := GetRuntime()

	if v, ok := r.GetContext(c); ok {
		return v
	}

	return c.fallback
}

// Set writes the value on the current scope. Outside any scope this is a
// no-op: there is no owner to hold the value.
func (c *Context) Set(value any) {
	GetRuntime().SetContext(c, value)
}
