/*
Package validator provides the validation engine for electrical network models.

The engine checks the structural and referential integrity of a loaded
network; it never mutates the model and computes no electrical quantities.
It consists of three parts:

1. A Registry of named, categorized validators

2. A CheckRunner that selects validators by category/include/exclude and
executes them against one network

3. An Issue/Report model describing the findings of a single run

# Basic Usage

Run every registered validator against a network:

	runner := validator.NewCheckRunner(net, validator.NewDefaultRegistry())
	report, err := runner.RunAll(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Summary())

Select a subset of validators:

	report, err := runner.Run(ctx, validator.Options{
		Categories: []validator.Category{validator.CategoryCore},
		Exclude:    []string{"transformer_node_reference"},
	})

Filter names are resolved eagerly: a name in Include or Exclude that is not
registered fails the run with an UnknownValidatorError before any validator
executes.

# Custom Validators

Implement the Validator interface and register it. Validator names must be
unique within a Registry; registration order determines execution order:

	reg := validator.NewRegistry()
	if err := reg.Register(myValidator); err != nil {
		log.Fatal(err)
	}

A validator must be a pure, deterministic function of the network: same
network, same issues, same order. Registration is expected to complete before
the first run; the Registry is not synchronized for concurrent mutation.

# Failure Policy

A validator that returns an error (or panics) is a defect in that validator.
By default the whole run fails with a ValidatorExecutionError and no Report is
returned, so a crashed validator can never silently under-report. Deployments
that prefer best-effort runs can opt in with WithContinueOnFailure, which
records each failure as a synthetic ERROR issue and proceeds.
*/
package validator
