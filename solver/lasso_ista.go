package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/pkg/log"
)

// LassoISTA solves L1-penalized least squares
//
//	argmin_w ½‖y − Xw‖² + α‖w‖₁
//
// with the Iterative Shrinkage-Thresholding Algorithm. The L1 term is not
// differentiable at zero, so plain gradient descent does not apply; each
// step instead minimizes a quadratic upper bound of the smooth loss around
// the current iterate and applies the closed-form proximal operator of the
// L1 norm (soft-thresholding). The curvature of the bound is ρ, the
// supremum eigenvalue of XᵀX, computed once before the loop.
type LassoISTA struct {
	alpha         float64
	maxIterations int
	tol           float64
	opts          options
}

// NewLassoISTA creates an ISTA solver with L1 strength alpha.
func NewLassoISTA(alpha float64, maxIterations int, tol float64, opts ...Option) (*LassoISTA, error) {
	if alpha < 0 {
		return nil, errors.NewValidationError("alpha", "must be non-negative", alpha)
	}
	if maxIterations <= 0 {
		return nil, errors.NewValidationError("max_iterations", "must be positive", maxIterations)
	}
	if tol < 0 {
		return nil, errors.NewValidationError("tol", "must be non-negative", tol)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &LassoISTA{
		alpha:         alpha,
		maxIterations: maxIterations,
		tol:           tol,
		opts:          o,
	}, nil
}

// Solve runs ISTA from a fresh zero-initialised weight vector.
// y must be a single column. Iterates that degenerate to NaN or Inf
// abort with a ValueError.
func (s *LassoISTA) Solve(X, y mat.Matrix) (*Result, error) {
	const op = "LassoISTA.Solve"

	if err := validateInputs(op, X, y); err != nil {
		return nil, err
	}
	if _, k := y.Dims(); k != 1 {
		return nil, errors.NewValueError(op, "y must be a column vector")
	}

	n, d := X.Dims()

	w := s.opts.init(d, 1)

	var gram mat.Dense
	gram.Mul(X.T(), X)
	rho := SupremumEigen(&gram)
	if rho == 0 {
		// all-zero design: the loss does not depend on w, and the
		// L1 term makes zero the unique minimizer
		return &Result{Weights: w, Converged: true, Iterations: 0}, nil
	}

	// threshold of the proximal step, weighted by the number of samples
	threshold := float64(n) * s.alpha / rho

	for iter := 1; iter <= s.maxIterations; iter++ {
		// dl/dw = -Xᵀ(y - Xw)
		var resid mat.Dense
		resid.Mul(X, w)
		resid.Sub(y, &resid)

		var dldw mat.Dense
		dldw.Mul(X.T(), &resid)
		dldw.Scale(-1, &dldw)

		// candidate minimizer of the majorizer: w - (dl/dw)/ρ
		var cand mat.Dense
		cand.Scale(1/rho, &dldw)
		cand.Sub(w, &cand)

		wNew := SoftThreshold(&cand, threshold)

		if err := errors.CheckNumericalStability(op, wNew.RawMatrix().Data, iter); err != nil {
			return nil, err
		}

		if withinTol(wNew, w, s.tol) {
			s.logOutcome(n, d, iter, true)
			return &Result{Weights: wNew, Converged: true, Iterations: iter}, nil
		}
		w = wNew
	}

	s.logOutcome(n, d, s.maxIterations, false)
	errors.Warn(errors.NewConvergenceWarning("LassoISTA", s.maxIterations, ""))
	return &Result{Weights: w, Converged: false, Iterations: s.maxIterations}, nil
}

// SoftThreshold applies the proximal operator of the L1 norm elementwise:
// sign(v)·max(|v| − threshold, 0). Components with |v| ≤ threshold are
// exactly zero; larger components shrink toward zero, preserving sign.
func SoftThreshold(v mat.Matrix, threshold float64) *mat.Dense {
	r, c := v.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			val := v.At(i, j)
			shrunk := math.Abs(val) - threshold
			if shrunk <= 0 {
				continue
			}
			if val < 0 {
				shrunk = -shrunk
			}
			out.Set(i, j, shrunk)
		}
	}
	return out
}

func (s *LassoISTA) logOutcome(n, d, iterations int, converged bool) {
	logger := log.GetLogger()
	logger.Debug().
		Str(log.ModelNameKey, "LassoISTA").
		Str(log.OperationKey, "solve").
		Int(log.SamplesKey, n).
		Int(log.FeaturesKey, d).
		Int(log.IterationsKey, iterations).
		Bool(log.ConvergedKey, converged).
		Msg("ista finished")
}
