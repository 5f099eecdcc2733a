package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/core/model"
	"github.com/goml-kit/goml/kernel"
	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/preprocessing"
	"github.com/goml-kit/goml/solver"
)

// KernelSolver selects the strategy KernelRegression uses to fit the dual
// weights on the Gram matrix.
type KernelSolver string

const (
	// KernelSolverPInv solves w = pinv(K + αI)·y in closed form.
	KernelSolverPInv KernelSolver = "pinv"
	// KernelSolverGD runs least-squares gradient descent on K.
	KernelSolverGD KernelSolver = "gradient_descent"
)

// KernelRegression is nonparametric regression in a kernel feature space.
// Features are standardized, the n×n Gram matrix K over the training
// samples is built, and dual weights w are fitted so that predictions are
// kernel-weighted sums over the training set.
type KernelRegression struct {
	model.BaseEstimator

	kern          kernel.Kernel
	solverKind    KernelSolver
	alpha         float64
	maxIterations int
	tol           float64

	scaler *preprocessing.StandardScaler
	xTrain *mat.Dense
	w      *mat.VecDense

	// Converged reports the solver outcome for the gradient descent
	// strategy; the closed-form strategy always converges.
	Converged bool
}

// NewKernelRegression creates a kernel regression model. maxIterations and
// tol only apply to the gradient descent strategy.
func NewKernelRegression(k kernel.Kernel, solverKind KernelSolver, alpha float64, maxIterations int, tol float64) (*KernelRegression, error) {
	if alpha < 0 {
		return nil, errors.NewValidationError("alpha", "must be non-negative", alpha)
	}
	switch solverKind {
	case KernelSolverPInv, KernelSolverGD:
	default:
		return nil, errors.NewValidationError("solver", "must be \"pinv\" or \"gradient_descent\"", string(solverKind))
	}
	if solverKind == KernelSolverGD && maxIterations <= 0 {
		return nil, errors.NewValidationError("max_iterations", "must be positive", maxIterations)
	}

	return &KernelRegression{
		kern:          k,
		solverKind:    solverKind,
		alpha:         alpha,
		maxIterations: maxIterations,
		tol:           tol,
		scaler:        preprocessing.NewStandardScaler(),
	}, nil
}

// Fit standardizes X, builds the Gram matrix and fits the dual weights.
func (kr *KernelRegression) Fit(X, y mat.Matrix) error {
	const op = "KernelRegression.Fit"

	n, d := X.Dims()
	ry, cy := y.Dims()
	if n == 0 || d == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != n {
		return errors.NewDimensionError(op, n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError(op, "y must be a column vector")
	}

	Xs, err := kr.scaler.FitTransform(X)
	if err != nil {
		return err
	}
	kr.xTrain = Xs

	K := kernel.Gram(kr.kern, Xs, Xs)

	switch kr.solverKind {
	case KernelSolverPInv:
		// w = pinv(K + αI)·y
		if kr.alpha > 0 {
			for i := 0; i < n; i++ {
				K.Set(i, i, K.At(i, i)+kr.alpha)
			}
		}
		pinv, err := solver.PseudoInverse(K)
		if err != nil {
			return err
		}
		var w mat.Dense
		w.Mul(pinv, y)

		kr.w = mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			kr.w.SetVec(i, w.At(i, 0))
		}
		kr.Converged = true

	case KernelSolverGD:
		gd, err := solver.NewLeastSquaresGD(kr.alpha, kr.maxIterations, kr.tol)
		if err != nil {
			return err
		}
		res, err := gd.Solve(K, y)
		if err != nil {
			return err
		}

		kr.w = mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			kr.w.SetVec(i, res.Weights.At(i, 0))
		}
		kr.Converged = res.Converged
	}

	kr.SetFitted()
	return nil
}

// Predict evaluates the kernel expansion over the training samples:
// ŷ_i = Σ_j k(x_i, xTrain_j)·w_j.
func (kr *KernelRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !kr.IsFitted() {
		return nil, errors.NewNotFittedError("KernelRegression", "Predict")
	}

	Xs, err := kr.scaler.Transform(X)
	if err != nil {
		return nil, err
	}

	K := kernel.Gram(kr.kern, Xs, kr.xTrain)

	var pred mat.Dense
	pred.Mul(K, kr.w)
	return &pred, nil
}

// Score computes the coefficient of determination R².
func (kr *KernelRegression) Score(X, y mat.Matrix) (float64, error) {
	if !kr.IsFitted() {
		return 0, errors.NewNotFittedError("KernelRegression", "Score")
	}
	return scoreR2(kr, X, y)
}
