package solver

import (
	"io"
	"os"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/log"
)

func TestMain(m *testing.M) {
	// Keep convergence warnings out of test output.
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// Interface compliance
var (
	_ Solver = (*PInv)(nil)
	_ Solver = (*GradientDescent)(nil)
	_ Solver = (*LassoISTA)(nil)
)

func TestWithinTolElementwise(t *testing.T) {
	// All but one component inside the bound: must NOT count as converged.
	a := mat.NewDense(3, 1, []float64{1.00001, 2.00001, 3.5})
	b := mat.NewDense(3, 1, []float64{1.0, 2.0, 3.0})

	if withinTol(a, b, 1e-4) {
		t.Error("withinTol must require every component below tol")
	}

	c := mat.NewDense(3, 1, []float64{1.00001, 2.00001, 3.00001})
	if !withinTol(c, b, 1e-4) {
		t.Error("withinTol should report true when all components are below tol")
	}

	// The bound is strict: a delta exactly equal to tol does not converge.
	d := mat.NewDense(1, 1, []float64{1.0001})
	e := mat.NewDense(1, 1, []float64{1.0})
	if withinTol(d, e, 1e-4) {
		t.Error("delta equal to tol must not count as converged")
	}
}

func TestZeroWeights(t *testing.T) {
	w := ZeroWeights(3, 2)
	r, c := w.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("unexpected shape %dx%d", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if w.At(i, j) != 0 {
				t.Errorf("ZeroWeights must be all zeros, got %v at (%d,%d)", w.At(i, j), i, j)
			}
		}
	}
}

func TestSupremumEigen(t *testing.T) {
	// Gershgorin bound equals the true largest eigenvalue for this matrix:
	// eigenvalues of [[2,1],[1,2]] are 1 and 3, max row sum is 3.
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	if got := SupremumEigen(a); got != 3 {
		t.Errorf("SupremumEigen = %v, want 3", got)
	}

	zero := mat.NewDense(2, 2, nil)
	if got := SupremumEigen(zero); got != 0 {
		t.Errorf("SupremumEigen of zero matrix = %v, want 0", got)
	}
}

func TestAutoLearningRate(t *testing.T) {
	// X = I(2) gives XᵀX = I, bound 1, step size 1.
	X := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	if got := AutoLearningRate(X); got != 1 {
		t.Errorf("AutoLearningRate = %v, want 1", got)
	}

	// Degenerate all-zero design must not divide by zero.
	zero := mat.NewDense(2, 2, nil)
	if got := AutoLearningRate(zero); got != 1 {
		t.Errorf("AutoLearningRate on zero design = %v, want fallback 1", got)
	}
}
