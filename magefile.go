//go:build mage

package main

import (
	"fmt"
	"log"

	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
// Usage: mage
var Default = Test

// Build compiles the module and vets it.
func Build() error {
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "./...")
}

// Test runs all unit tests with the race detector.
// Usage: mage test
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the benchmarks.
func Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-run=^$", "./...")
}

// Fmt runs go fmt on the module.
func Fmt() error {
	fmt.Println("Formatting...")
	return sh.RunV("go", "fmt", "./...")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// All runs formatting, tidy, build, and tests (good for local pre-push).
func All() error {
	fmt.Println("Running all checks...")
	steps := []func() error{Fmt, Tidy, Build, Test}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// CI is a stricter pipeline entrypoint; logs failure early.
func CI() {
	if err := All(); err != nil {
		log.Fatalf("CI failed: %v", err)
	}
}
