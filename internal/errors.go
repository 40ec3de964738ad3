package internal

import (
	"errors"

	"github.com/ygrebnov/errorc"
)

const Namespace = "pulse"

var (
	ErrCycleDetected = errors.New(Namespace + ": cyclic dependency detected")
	ErrUpdateLoop    = errors.New(Namespace + ": possible infinite update loop detected")
)

// CycleError attaches the reader chain that closed the cycle.
func CycleError(chain string) error {
	return errorc.With(ErrCycleDetected, errorc.String("chain", chain))
}
