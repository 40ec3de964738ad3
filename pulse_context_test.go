package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	t.Run("store value", func(t *testing.T) {
		ctx := NewContext(0)
		assert.Equal(t, 0, ctx.Value())

		ctx.Set(42)
		assert.Equal(t, 0, ctx.Value()) // still zero, no owner to hold the value
	})

	t.Run("inherit value from parent owner", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewOwner()
		err := parent.Run(func() error {
			ctx.Set("parent value")

			return NewOwner().Run(func() error {
				assert.Equal(t, "parent value", ctx.Value())
				return nil
			})
		})
		assert.NoError(t, err)

		assert.Equal(t, "default", ctx.Value())
	})

	t.Run("child writes never leak upward", func(t *testing.T) {
		ctx := NewContext("root")

		parent := NewOwner()
		parent.Run(func() error {
			ctx.Set("parent")

			NewOwner().Run(func() error {
				ctx.Set("child")
				assert.Equal(t, "child", ctx.Value())
				return nil
			})

			assert.Equal(t, "parent", ctx.Value())
			return nil
		})
	})

	t.Run("siblings are isolated", func(t *testing.T) {
		ctx := NewContext(0)

		parent := NewOwner()
		parent.Run(func() error {
			NewOwner().Run(func() error {
				ctx.Set(1)
				return nil
			})

			NewOwner().Run(func() error {
				assert.Equal(t, 0, ctx.Value())
				return nil
			})

			return nil
		})
	})

	t.Run("keyed primitives", func(t *testing.T) {
		type key struct{}

		o := NewOwner()
		o.Run(func() error {
			SetContext(key{}, "hello")

			v, ok := GetContext(key{})
			assert.True(t, ok)
			assert.Equal(t, "hello", v)

			return NewOwner().Run(func() error {
				v, ok := GetContext(key{})
				assert.True(t, ok)
				assert.Equal(t, "hello", v)
				return nil
			})
		})

		_, ok := GetContext(key{})
		assert.False(t, ok)
	})

	t.Run("effects see context through their scope", func(t *testing.T) {
		ctx := NewContext("none")

		var seen string

		o := NewOwner()
		o.Run(func() error {
			ctx.Set("scoped")

			NewEffect(func() {
				seen = ctx.Value()
			})

			return nil
		})

		FlushSync()
		assert.Equal(t, "scoped", seen)
	})
}
