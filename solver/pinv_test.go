package solver

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

func TestPInv_ExactRecovery(t *testing.T) {
	// y = Xw* with no noise and full column rank: exact recovery.
	X := mat.NewDense(5, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
		1, 3,
	})
	wStar := mat.NewDense(2, 1, []float64{2, -3})

	var y mat.Dense
	y.Mul(X, wStar)

	s, err := NewPInv(0)
	if err != nil {
		t.Fatalf("NewPInv: %v", err)
	}

	res, err := s.Solve(X, &y)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !res.Converged || res.Iterations != 0 {
		t.Errorf("closed-form solve should report Converged with 0 iterations, got %+v", res)
	}

	for i := 0; i < 2; i++ {
		if math.Abs(res.Weights.At(i, 0)-wStar.At(i, 0)) > 1e-8 {
			t.Errorf("weight %d = %v, want %v", i, res.Weights.At(i, 0), wStar.At(i, 0))
		}
	}
}

func TestPInv_RankDeficient(t *testing.T) {
	// Second column is a copy of the first: XᵀX is singular, but the
	// pseudoinverse still yields a finite minimum-norm solution.
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	s, _ := NewPInv(0)
	res, err := s.Solve(X, y)
	if err != nil {
		t.Fatalf("Solve on rank-deficient input should not fail: %v", err)
	}

	// Minimum-norm solution splits the weight evenly across the
	// duplicated columns.
	for i := 0; i < 2; i++ {
		if math.Abs(res.Weights.At(i, 0)-1.0) > 1e-8 {
			t.Errorf("weight %d = %v, want 1.0", i, res.Weights.At(i, 0))
		}
	}
}

func TestPInv_RidgeShrinkage(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		1, 2,
		2, 1,
		3, 4,
		4, 3,
		5, 5,
		6, 4,
	})
	y := mat.NewDense(6, 1, []float64{5, 4, 11, 10, 15, 14})

	prevNorm := math.Inf(1)
	for _, alpha := range []float64{0, 0.1, 1, 10, 100} {
		s, err := NewPInv(alpha)
		if err != nil {
			t.Fatalf("NewPInv(%v): %v", alpha, err)
		}
		res, err := s.Solve(X, y)
		if err != nil {
			t.Fatalf("Solve(alpha=%v): %v", alpha, err)
		}

		norm := mat.Norm(res.Weights, 2)
		if norm > prevNorm+1e-10 {
			t.Errorf("‖w‖₂ increased from %v to %v when alpha grew to %v", prevNorm, norm, alpha)
		}
		prevNorm = norm
	}
}

func TestPInv_ShapeMismatch(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	s, _ := NewPInv(0)
	_, err := s.Solve(X, y)
	if err == nil {
		t.Fatal("expected an error for mismatched sample counts")
	}

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError, got %T: %v", err, err)
	}
}

func TestPInv_NegativeAlpha(t *testing.T) {
	_, err := NewPInv(-1)
	if err == nil {
		t.Fatal("expected an error for negative alpha")
	}

	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}
}
