package validator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"voltaic-hq/faraday/pkg/network"
)

// Recorder receives execution telemetry from a CheckRunner. Implemented by
// the telemetry/metrics package; a nil Recorder disables recording.
type Recorder interface {
	// RecordRun records one completed run attempt with its outcome status
	// ("ok", "failed" or "canceled") and total duration.
	RecordRun(status string, duration time.Duration)

	// RecordValidator records one validator execution and its duration.
	RecordValidator(name string, duration time.Duration)

	// RecordIssue records one issue emitted by the named validator.
	RecordIssue(validatorName string, severity Severity)
}

// Options selects which registered validators a run executes. The filters
// are applied in a fixed order, each narrowing the candidate set:
// Categories first, then Include (intersection), then Exclude (removal).
// The zero value selects every registered validator.
type Options struct {
	// Categories narrows the candidates to the union of the given
	// categories. A category with no validators yields an empty candidate
	// set, not an error.
	Categories []Category

	// Include narrows the candidates to the listed validator names. A name
	// that is not registered fails the run with an UnknownValidatorError.
	Include []string

	// Exclude removes the listed validator names from the candidates.
	// Unknown names fail with an UnknownValidatorError, like Include.
	Exclude []string
}

// CheckRunner executes validators from a Registry against one network model.
// The network is held by reference and must stay read-only for the runner's
// lifetime; under that precondition concurrent Run calls are safe.
//
// Each run is single-threaded: selected validators execute sequentially on
// the calling goroutine, and no validator observes another's output.
type CheckRunner struct {
	network  *network.Network
	registry *Registry

	log      *slog.Logger
	recorder Recorder

	continueOnFailure bool
}

// Option configures a CheckRunner.
type Option func(*CheckRunner)

// WithLogger sets the structured logger used for run and validator events.
func WithLogger(log *slog.Logger) Option {
	return func(r *CheckRunner) { r.log = log }
}

// WithRecorder sets the telemetry recorder for run metrics.
func WithRecorder(rec Recorder) Option {
	return func(r *CheckRunner) { r.recorder = rec }
}

// WithContinueOnFailure makes the runner record a failing validator as a
// synthetic ERROR issue and proceed with the remaining validators, instead
// of aborting the run. This is an explicit opt-in; the default aborts, since
// a crashed validator could mask the very issues it was meant to catch.
func WithContinueOnFailure() Option {
	return func(r *CheckRunner) { r.continueOnFailure = true }
}

// NewCheckRunner creates a runner over the given network and registry.
func NewCheckRunner(n *network.Network, reg *Registry, opts ...Option) *CheckRunner {
	r := &CheckRunner{network: n, registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// RunAll executes every registered validator.
func (r *CheckRunner) RunAll(ctx context.Context) (*Report, error) {
	return r.Run(ctx, Options{})
}

// Run selects validators per opts and executes them, in registration order,
// against the held network. It returns the aggregated Report, or an error
// if filter resolution fails or a validator fails.
//
// The context is checked between validator executions; on cancellation the
// accumulated partial report is discarded and the context error returned.
func (r *CheckRunner) Run(ctx context.Context, opts Options) (*Report, error) {
	runID := uuid.NewString()
	start := time.Now()

	selected, err := r.selectValidators(opts)
	if err != nil {
		r.record("failed", start)
		return nil, err
	}

	r.log.Debug("validation run started",
		"run_id", runID,
		"level", string(r.network.Level()),
		"validators", len(selected))

	var issues []Issue
	for _, v := range selected {
		if err := ctx.Err(); err != nil {
			r.record("canceled", start)
			return nil, err
		}

		vStart := time.Now()
		found, err := r.execute(v)
		if r.recorder != nil {
			r.recorder.RecordValidator(v.Name(), time.Since(vStart))
		}
		if err != nil {
			if !r.continueOnFailure {
				r.record("failed", start)
				return nil, &ValidatorExecutionError{Name: v.Name(), Err: err}
			}
			r.log.Error("validator failed, continuing",
				"run_id", runID, "validator", v.Name(), "error", err)
			found = []Issue{{
				Severity:  SeverityError,
				Validator: v.Name(),
				Message:   fmt.Sprintf("validator failed: %v", err),
			}}
		}

		for _, issue := range found {
			if r.recorder != nil {
				r.recorder.RecordIssue(issue.Validator, issue.Severity)
			}
		}
		issues = append(issues, found...)
	}

	report := NewReport(runID, issues)
	r.record("ok", start)
	r.log.Info("validation run completed",
		"run_id", runID,
		"validators", len(selected),
		"issues", report.Len(),
		"duration", time.Since(start))
	return report, nil
}

// selectValidators resolves the run options into the ordered list of
// validators to execute. Filter errors are raised before any validator runs
// and leave no partial effect.
func (r *CheckRunner) selectValidators(opts Options) ([]Validator, error) {
	candidates := make(map[string]bool)
	for _, v := range r.registry.All() {
		candidates[v.Name()] = true
	}

	if opts.Categories != nil {
		inCategories := make(map[string]bool)
		for _, c := range opts.Categories {
			for _, name := range r.registry.ByCategory(c) {
				inCategories[name] = true
			}
		}
		for name := range candidates {
			if !inCategories[name] {
				delete(candidates, name)
			}
		}
	}

	if opts.Include != nil {
		included := make(map[string]bool)
		for _, name := range opts.Include {
			if _, ok := r.registry.Lookup(name); !ok {
				return nil, &UnknownValidatorError{Name: name}
			}
			included[name] = true
		}
		for name := range candidates {
			if !included[name] {
				delete(candidates, name)
			}
		}
	}

	for _, name := range opts.Exclude {
		if _, ok := r.registry.Lookup(name); !ok {
			return nil, &UnknownValidatorError{Name: name}
		}
		delete(candidates, name)
	}

	// Registration order, for reproducible execution and issue order.
	var selected []Validator
	for _, v := range r.registry.All() {
		if candidates[v.Name()] {
			selected = append(selected, v)
		}
	}
	return selected, nil
}

// execute runs one validator, converting a panic into an error so a
// misbehaving validator cannot take down the caller.
func (r *CheckRunner) execute(v Validator) (issues []Issue, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return v.Check(r.network)
}

func (r *CheckRunner) record(status string, start time.Time) {
	if r.recorder != nil {
		r.recorder.RecordRun(status, time.Since(start))
	}
}
