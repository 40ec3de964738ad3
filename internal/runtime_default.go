//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the calling goroutine's runtime, creating it on first
// use. Each goroutine owns an isolated graph runtime; node state lives on the
// nodes themselves, so values written from another goroutine still reach
// their observers through that goroutine's scheduler.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

func getGID() int64 {
	return goid.Get()
}
