package pulse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			NewEffect(func() {
				log = append(log, "effect")

				OnCleanup(func() { log = append(log, "cleanup") })
			})

			return nil
		})

		FlushSync()
		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"effect",
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("children dispose in reverse creation order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "1") })
			})

			NewEffect(func() {
				OnCleanup(func() { log = append(log, "2") })
			})

			return nil
		})

		FlushSync()
		o.Dispose()

		assert.Equal(t, []string{"2", "1"}, log)
	})

	t.Run("nested scopes fully dispose before their parent", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnDispose(func() {
			log = append(log, "parent disposed")
		})

		o.Run(func() error {
			NewOwner().OnDispose(func() {
				log = append(log, "child disposed")
			})

			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{
			"child disposed",
			"parent disposed",
		}, log)
	})

	t.Run("cleanups run in reverse registration order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			OnCleanup(func() { log = append(log, "a") })
			OnCleanup(func() { log = append(log, "b") })
			OnCleanup(func() { log = append(log, "c") })
			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{"c", "b", "a"}, log)
	})

	t.Run("cleanup token removes registration", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			OnCleanup(func() { log = append(log, "kept") })
			remove := OnCleanup(func() { log = append(log, "removed") })
			remove()
			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{"kept"}, log)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		calls := 0

		o := NewOwner()
		o.OnCleanup(func() { calls++ })

		o.Dispose()
		o.Dispose()

		assert.Equal(t, 1, calls)
		assert.True(t, o.Disposed())
	})

	t.Run("re-entrant dispose is a no-op", func(t *testing.T) {
		calls := 0

		o := NewOwner()
		o.OnCleanup(func() {
			calls++
			o.Dispose() // must not recurse
		})

		assert.NotPanics(t, o.Dispose)
		assert.Equal(t, 1, calls)
	})

	t.Run("disposal prevents effect re-runs", func(t *testing.T) {
		log := []int{}

		o := NewOwner()

		count := NewSignal(0)

		o.Run(func() error {
			NewEffect(func() {
				log = append(log, count.Read())
			})

			return nil
		})

		FlushSync()
		count.Write(1)
		FlushSync()

		o.Dispose()

		// this should not trigger the effect
		count.Write(2)
		FlushSync()

		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnError(func(err any) {
			log = append(log, fmt.Sprintf("caught %v", err))
		})

		var errSignal *Signal[error]

		o.Run(func() error {
			// should propagate if the nearer owner has no error listener
			NewOwner().Run(func() error {
				errSignal = NewSignal[error](nil)

				NewEffect(func() {
					if e := errSignal.Read(); e != nil {
						panic(e)
					}
				})

				return nil
			})

			return nil
		})

		FlushSync()
		errSignal.Write(errors.New("oops"))
		FlushSync()

		assert.Equal(t, []string{
			"caught oops",
		}, log)
	})

	t.Run("rethrowing handler passes the error outward", func(t *testing.T) {
		log := []string{}

		outer := NewOwner()
		outer.OnError(func(err any) {
			log = append(log, fmt.Sprintf("outer %v", err))
		})

		outer.Run(func() error {
			inner := NewOwner()
			inner.OnError(func(err any) {
				log = append(log, fmt.Sprintf("inner %v", err))
				panic(err)
			})

			inner.Run(func() error {
				NewEffect(func() {
					panic(errors.New("boom"))
				})
				return nil
			})

			return nil
		})

		FlushSync()

		assert.Equal(t, []string{
			"inner boom",
			"outer boom",
		}, log)
	})

	t.Run("unhandled errors bubble out of the flush", func(t *testing.T) {
		NewEffect(func() {
			panic(errors.New("boom"))
		})

		assert.Panics(t, FlushSync)
	})

	t.Run("root is detached from the surrounding scope", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			Root(func(dispose func()) any {
				OnCleanup(func() { log = append(log, "root cleanup") })
				return nil
			})
			return nil
		})

		o.Dispose()
		assert.Empty(t, log) // the root outlives its creator
	})

	t.Run("root dispose handle", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		Root(func(dispose func()) any {
			NewEffect(func() {
				log = append(log, fmt.Sprintf("changed %d", count.Read()))
			})

			FlushSync()
			count.Write(1)
			FlushSync()

			dispose()
			return nil
		})

		count.Write(2)
		FlushSync()

		assert.Equal(t, []string{
			"changed 0",
			"changed 1",
		}, log)
	})
}
