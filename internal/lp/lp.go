// Package lp assembles and solves linear programs. It exposes the minimal
// solver capability the optimizer needs: continuous variables with bounds,
// linear equality / less-or-equal constraints and a linear objective to
// minimize. Solving reduces the model to standard form (Ax = b, x >= 0) and
// runs gonum's two-phase simplex on it.
package lp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Status reports the outcome of a solve attempt.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

var (
	// ErrInfeasible means the constraints cannot all hold at once.
	ErrInfeasible = errors.New("lp: problem is infeasible")
	// ErrUnbounded means the objective can decrease without limit.
	ErrUnbounded = errors.New("lp: problem is unbounded")
)

// SolveError wraps a solver-internal failure (numerical breakdown, malformed
// system) as opposed to a verdict about the model.
type SolveError struct {
	Err error
}

func (e *SolveError) Error() string { return "lp: solver failure: " + e.Err.Error() }
func (e *SolveError) Unwrap() error { return e.Err }

// Var identifies a variable within a Model.
type Var int

// Term is one coefficient*variable entry of a linear expression.
type Term struct {
	Var   Var
	Coeff float64
}

type constraintOp int

const (
	opEq constraintOp = iota
	opLe
)

type constraint struct {
	terms []Term
	op    constraintOp
	rhs   float64
}

// Model is a linear program assembled incrementally. The zero value is not
// usable; create models with NewModel.
type Model struct {
	lower       []float64
	upper       []float64
	objective   []float64
	constraints []constraint
}

func NewModel() *Model { return &Model{} }

// AddVar adds a continuous variable bounded to [lower, upper].
// upper may be math.Inf(1) for a variable with no upper bound.
func (m *Model) AddVar(lower, upper float64) Var {
	m.lower = append(m.lower, lower)
	m.upper = append(m.upper, upper)
	m.objective = append(m.objective, 0)
	return Var(len(m.lower) - 1)
}

// AddEq adds the constraint sum(terms) == rhs.
func (m *Model) AddEq(terms []Term, rhs float64) {
	m.constraints = append(m.constraints, constraint{terms: terms, op: opEq, rhs: rhs})
}

// AddLe adds the constraint sum(terms) <= rhs.
func (m *Model) AddLe(terms []Term, rhs float64) {
	m.constraints = append(m.constraints, constraint{terms: terms, op: opLe, rhs: rhs})
}

// SetObjective sets the minimization objective. Variables not mentioned keep
// a zero coefficient. Calling it again replaces the previous objective.
func (m *Model) SetObjective(terms []Term) {
	for i := range m.objective {
		m.objective[i] = 0
	}
	for _, t := range terms {
		m.objective[t.Var] += t.Coeff
	}
}

// Solution holds the optimum of a solved model.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Value returns the optimal value of v.
func (s *Solution) Value(v Var) float64 { return s.Values[v] }

// Solve converts the model to standard form and runs the simplex method.
// It returns a Solution only for an optimal outcome; otherwise the error is
// ErrInfeasible, ErrUnbounded or a *SolveError. The model itself is not
// modified and may be solved again.
func (m *Model) Solve() (*Solution, error) {
	n := len(m.lower)
	if n == 0 {
		return nil, &SolveError{Err: errors.New("model has no variables")}
	}
	if len(m.constraints) == 0 {
		return nil, &SolveError{Err: errors.New("model has no constraints")}
	}

	nBound := 0
	for i := 0; i < n; i++ {
		l, u := m.lower[i], m.upper[i]
		if math.IsInf(l, 0) {
			return nil, &SolveError{Err: errors.New("variable lower bounds must be finite")}
		}
		if u < l {
			return nil, ErrInfeasible
		}
		if !math.IsInf(u, 1) {
			nBound++
		}
	}
	nSlack := 0
	for _, con := range m.constraints {
		if con.op == opLe {
			nSlack++
		}
	}

	// Standard form: shift each variable by its lower bound so x >= 0, turn
	// finite upper bounds and <= rows into equalities with slack variables.
	rows := len(m.constraints) + nBound
	cols := n + nSlack + nBound

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	copy(c, m.objective)

	slack := n
	for r, con := range m.constraints {
		rhs := con.rhs
		for _, t := range con.terms {
			a.Set(r, int(t.Var), a.At(r, int(t.Var))+t.Coeff)
			rhs -= t.Coeff * m.lower[t.Var]
		}
		if con.op == opLe {
			a.Set(r, slack, 1)
			slack++
		}
		b[r] = rhs
	}
	r := len(m.constraints)
	for i := 0; i < n; i++ {
		if math.IsInf(m.upper[i], 1) {
			continue
		}
		a.Set(r, i, 1)
		a.Set(r, slack, 1)
		b[r] = m.upper[i] - m.lower[i]
		slack++
		r++
	}

	_, x, err := convexlp.Simplex(c, a, b, 1e-10, nil)
	if err != nil {
		switch {
		case errors.Is(err, convexlp.ErrInfeasible):
			return nil, ErrInfeasible
		case errors.Is(err, convexlp.ErrUnbounded):
			return nil, ErrUnbounded
		default:
			return nil, &SolveError{Err: err}
		}
	}

	values := make([]float64, n)
	objective := 0.0
	for i := range values {
		values[i] = x[i] + m.lower[i]
		objective += m.objective[i] * values[i]
	}
	return &Solution{Status: StatusOptimal, Objective: objective, Values: values}, nil
}
