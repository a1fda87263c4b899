// Package testutil provides shared helpers for exercising the sweep without
// spawning real processes.
package testutil

import (
	"context"
	"errors"
	"sync"
)

// Invocation is one recorded call to the fake runner.
type Invocation struct {
	Name string
	Args []string
}

// FakeRunner implements toolexec.Runner. It records every invocation and
// fails the ones selected by the failWhen predicate with a synthetic
// nonzero-exit error.
type FakeRunner struct {
	mu          sync.Mutex
	invocations []Invocation
	failWhen    func(name string, args []string) bool
}

// NewFakeRunner creates a fake runner. A nil failWhen never fails.
func NewFakeRunner(failWhen func(name string, args []string) bool) *FakeRunner {
	return &FakeRunner{failWhen: failWhen}
}

// Run implements toolexec.Runner.
func (r *FakeRunner) Run(_ context.Context, name string, args []string) error {
	r.mu.Lock()
	r.invocations = append(r.invocations, Invocation{
		Name: name,
		Args: append([]string(nil), args...),
	})
	r.mu.Unlock()

	if r.failWhen != nil && r.failWhen(name, args) {
		return errors.New("exit status 1")
	}
	return nil
}

// Invocations returns a copy of everything recorded so far.
func (r *FakeRunner) Invocations() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.invocations...)
}

// HasArg reports whether the invocation's argument list contains arg.
func (i Invocation) HasArg(arg string) bool {
	for _, a := range i.Args {
		if a == arg {
			return true
		}
	}
	return false
}
