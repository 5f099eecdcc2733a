// Package solver implements the optimization strategies behind the linear
// models: a closed-form pseudoinverse solution, a generic batch gradient
// descent parameterized over an (activation, loss) pair, and a
// proximal-gradient ISTA solver for L1-penalized least squares.
//
// Solvers hold only hyperparameters fixed at construction. Every Solve call
// is fully self-contained: weights are reinitialised per call, so the same
// instance can be reused sequentially for different (X, y) pairs.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// Solver is the common contract over all optimization strategies.
type Solver interface {
	// Solve fits weights to the given design matrix X (n×d) and target
	// y (n×1, or n×k one-hot for multiclass). The returned weights are
	// d×1 or d×k accordingly, owned by the caller.
	Solve(X, y mat.Matrix) (*Result, error)
}

// Result carries the fitted weights together with the convergence outcome.
// Non-convergence is a soft failure: Weights still holds the best-effort
// iterate and Converged is false, never an error.
type Result struct {
	Weights    *mat.Dense
	Converged  bool
	Iterations int
}

// validateInputs checks the shared preconditions: non-empty X and matching
// sample counts on the leading axis.
func validateInputs(op string, X, y mat.Matrix) error {
	n, d := X.Dims()
	yr, _ := y.Dims()

	if n == 0 || d == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if yr != n {
		return errors.NewDimensionError(op, n, yr, 0)
	}
	return nil
}

// withinTol reports whether every component of |a - b| is strictly below
// tol. The check is elementwise, not a norm: a single component at or above
// tol keeps the solver iterating.
func withinTol(a, b *mat.Dense, tol float64) bool {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(a.At(i, j)-b.At(i, j)) >= tol {
				return false
			}
		}
	}
	return true
}
