package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/core/model"
	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/solver"
)

// Lasso is L1-penalized linear regression solved with ISTA. The L1 penalty
// drives small coefficients to exactly zero, producing sparse models.
// The intercept is handled by mean centering and is not penalized.
type Lasso struct {
	model.BaseEstimator

	alpha         float64
	maxIterations int
	tol           float64

	coef      *mat.VecDense
	intercept float64

	// NFeatures is the number of features seen during fit.
	NFeatures int
	// Converged reports whether the last Fit satisfied the tolerance.
	Converged bool
	// Iterations is the number of ISTA steps the last Fit performed.
	Iterations int
}

// NewLasso creates a Lasso model. alpha is the L1 strength.
func NewLasso(alpha float64, maxIterations int, tol float64) (*Lasso, error) {
	// hyperparameters are validated by the solver constructor
	if _, err := solver.NewLassoISTA(alpha, maxIterations, tol); err != nil {
		return nil, err
	}
	return &Lasso{alpha: alpha, maxIterations: maxIterations, tol: tol}, nil
}

// Fit learns sparse coefficients from the training data.
// Non-convergence is not an error: the model keeps the best-effort
// coefficients and records Converged=false.
func (l *Lasso) Fit(X, y mat.Matrix) error {
	const op = "Lasso.Fit"

	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError(op, "y must be a column vector")
	}

	Xc, xMeans := centerColumns(X)
	yc, yMean := centerColumns(y)

	s, err := solver.NewLassoISTA(l.alpha, l.maxIterations, l.tol)
	if err != nil {
		return err
	}
	res, err := s.Solve(Xc, yc)
	if err != nil {
		return err
	}

	l.coef = mat.NewVecDense(c, nil)
	l.intercept = yMean[0]
	for j := 0; j < c; j++ {
		l.coef.SetVec(j, res.Weights.At(j, 0))
		l.intercept -= xMeans[j] * l.coef.AtVec(j)
	}

	l.NFeatures = c
	l.Converged = res.Converged
	l.Iterations = res.Iterations
	l.SetFitted()
	return nil
}

// Predict computes ŷ = X·coef + intercept.
func (l *Lasso) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !l.IsFitted() {
		return nil, errors.NewNotFittedError("Lasso", "Predict")
	}
	return predictLinear("Lasso.Predict", X, l.coef, l.intercept, l.NFeatures)
}

// Score computes the coefficient of determination R².
func (l *Lasso) Score(X, y mat.Matrix) (float64, error) {
	if !l.IsFitted() {
		return 0, errors.NewNotFittedError("Lasso", "Score")
	}
	return scoreR2(l, X, y)
}

// Weights returns the learned coefficients.
func (l *Lasso) Weights() []float64 {
	return vecToSlice(l.coef)
}

// Intercept returns the learned intercept.
func (l *Lasso) Intercept() float64 {
	return l.intercept
}
