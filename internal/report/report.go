// Package report aggregates per-configuration outcomes of a sweep. It is an
// observer, not a participant: the executor's abort scope never depends on
// anything recorded here.
package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vk/featmatrix/internal/matrix"
)

// Outcome is the final result for one configuration.
type Outcome struct {
	Config matrix.Config
	Failed bool
	// Command is the first failing command; meaningful only when Failed.
	Command matrix.Command
}

// Recorder receives one outcome per configuration as the sweep progresses.
type Recorder interface {
	Record(Outcome)
}

// Report collects outcomes in memory. Safe for concurrent use.
type Report struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Record implements Recorder.
func (r *Report) Record(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns a copy of everything recorded so far.
func (r *Report) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

// Failures returns the recorded failed outcomes.
func (r *Report) Failures() []Outcome {
	var failures []Outcome
	for _, o := range r.Outcomes() {
		if o.Failed {
			failures = append(failures, o)
		}
	}
	return failures
}

// HasFailures reports whether any configuration failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures()) > 0
}

// Summary renders a human-readable pass/fail overview of the sweep.
func (r *Report) Summary() string {
	outcomes := r.Outcomes()
	failures := r.Failures()

	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d configurations passed\n", len(outcomes)-len(failures), len(outcomes))
	for _, o := range failures {
		fmt.Fprintf(&b, "failed: %s %s\n", o.Command.Verb(), o.Config)
	}
	return b.String()
}
