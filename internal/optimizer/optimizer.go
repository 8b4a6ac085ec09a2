// Package optimizer computes an optimal charge/discharge schedule for a home
// battery over a fixed horizon, minimizing either total cost or total carbon
// emissions with a linear program.
package optimizer

import (
	"errors"

	"battery-scheduler/internal/lp"
	"battery-scheduler/internal/model"
)

// Run validates the inputs, builds the LP, solves it and returns the optimal
// schedule together with savings against the no-battery baseline.
//
// Inputs are read-only; each run constructs a fresh model. The solve is the
// only long-running step and has no cancellation hook: callers wanting a
// timeout should run it in a goroutine they can abandon.
func Run(p model.Profile, spec model.BatterySpec, mode model.Mode) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	m, vars := buildModel(p, spec, mode)
	sol, err := m.Solve()
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, ErrInfeasibleModel
		case errors.Is(err, lp.ErrUnbounded):
			return nil, ErrUnboundedModel
		default:
			return nil, &SolverError{Err: err}
		}
	}

	sched := extractSchedule(sol, vars, p, spec)
	return &Result{
		Mode:      mode,
		Objective: sol.Objective,
		Schedule:  sched,
		Savings:   ComputeSavings(p, sched),
		Totals:    computeTotals(p, sched),
	}, nil
}
