package lp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBoundedMaximization(t *testing.T) {
	// max x + y s.t. x + 2y <= 4, x <= 3, y <= 3  (minimize the negation)
	m := NewModel()
	x := m.AddVar(0, 3)
	y := m.AddVar(0, 3)
	m.AddLe([]Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 2}}, 4)
	m.SetObjective([]Term{{Var: x, Coeff: -1}, {Var: y, Coeff: -1}})

	sol, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 3.0, sol.Value(x), 1e-8)
	assert.InDelta(t, 0.5, sol.Value(y), 1e-8)
	assert.InDelta(t, -3.5, sol.Objective, 1e-8)
}

func TestSolveShiftedLowerBounds(t *testing.T) {
	// min x + y with x in [2, 5], y in [3, inf), x + y >= 7.
	m := NewModel()
	x := m.AddVar(2, 5)
	y := m.AddVar(3, math.Inf(1))
	m.AddLe([]Term{{Var: x, Coeff: -1}, {Var: y, Coeff: -1}}, -7)
	m.SetObjective([]Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 1}})

	sol, err := m.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, sol.Objective, 1e-8)
	assert.GreaterOrEqual(t, sol.Value(x), 2.0-1e-8)
	assert.GreaterOrEqual(t, sol.Value(y), 3.0-1e-8)
}

func TestSolveEqualityConstraint(t *testing.T) {
	// min 2x + y s.t. x + y == 10, y <= 6.
	m := NewModel()
	x := m.AddVar(0, math.Inf(1))
	y := m.AddVar(0, 6)
	m.AddEq([]Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 1}}, 10)
	m.SetObjective([]Term{{Var: x, Coeff: 2}, {Var: y, Coeff: 1}})

	sol, err := m.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sol.Value(x), 1e-8)
	assert.InDelta(t, 6.0, sol.Value(y), 1e-8)
	assert.InDelta(t, 14.0, sol.Objective, 1e-8)
}

func TestSolveInfeasible(t *testing.T) {
	// x <= 1 (bound) but x == 2 (constraint).
	m := NewModel()
	x := m.AddVar(0, 1)
	m.AddEq([]Term{{Var: x, Coeff: 1}}, 2)
	m.SetObjective([]Term{{Var: x, Coeff: 1}})

	_, err := m.Solve()
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestSolveContradictoryBounds(t *testing.T) {
	m := NewModel()
	x := m.AddVar(3, 1)
	m.AddEq([]Term{{Var: x, Coeff: 1}}, 2)

	_, err := m.Solve()
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestSolveUnbounded(t *testing.T) {
	// min -x with x - y == 0 and both unbounded above.
	m := NewModel()
	x := m.AddVar(0, math.Inf(1))
	y := m.AddVar(0, math.Inf(1))
	m.AddEq([]Term{{Var: x, Coeff: 1}, {Var: y, Coeff: -1}}, 0)
	m.SetObjective([]Term{{Var: x, Coeff: -1}})

	_, err := m.Solve()
	require.ErrorIs(t, err, ErrUnbounded)
}

func TestSolveEmptyModel(t *testing.T) {
	var solveErr *SolveError

	m := NewModel()
	_, err := m.Solve()
	require.ErrorAs(t, err, &solveErr)

	m = NewModel()
	m.AddVar(0, 1)
	_, err = m.Solve()
	require.ErrorAs(t, err, &solveErr)
}

func TestSolveRepeatedIsDeterministic(t *testing.T) {
	m := NewModel()
	x := m.AddVar(0, 10)
	y := m.AddVar(0, 10)
	m.AddEq([]Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 1}}, 8)
	m.SetObjective([]Term{{Var: x, Coeff: 3}, {Var: y, Coeff: 1}})

	first, err := m.Solve()
	require.NoError(t, err)
	second, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, first.Objective, second.Objective)
	assert.Equal(t, first.Values, second.Values)
}
