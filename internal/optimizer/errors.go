package optimizer

import "errors"

var (
	// ErrInfeasibleModel means the solver proved the constraints cannot all
	// hold at once; no schedule exists for the given inputs. It is surfaced
	// verbatim, never relaxed or retried.
	ErrInfeasibleModel = errors.New("optimizer: model is infeasible")

	// ErrUnboundedModel should not occur: every flow is limited by a rate
	// bound or an energy bound over a finite horizon. Its occurrence
	// indicates a defect in the model builder.
	ErrUnboundedModel = errors.New("optimizer: model is unbounded (model builder defect)")
)

// SolverError reports a solver-internal failure unrelated to the model, such
// as a numerical breakdown. The solve is deterministic, so it is not retried.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string { return "optimizer: solver failure: " + e.Err.Error() }
func (e *SolverError) Unwrap() error { return e.Err }
