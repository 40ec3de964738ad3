package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphString(t *testing.T) {
	o := NewOwner()

	o.Run(func() error {
		count := NewSignal(0)

		NewEffect(func() { count.Read() }, EffectOptions{Name: "watcher"})
		NewComputed(func() int { return count.Read() * 2 }, ComputedOptions[int]{Name: "double"})

		return nil
	})

	FlushSync()

	out := GraphString(o)
	assert.Contains(t, out, "owner")
	assert.Contains(t, out, "watcher (clean)")
	assert.Contains(t, out, "double (dirty)") // never read, still lazily dirty
}
