package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/activations"
	"github.com/goml-kit/goml/core/model"
	"github.com/goml-kit/goml/metrics"
	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/solver"
)

// LogisticRegression is a linear classifier fitted with batch gradient
// descent. A single-column y of 0/1 labels selects the sigmoid +
// cross-entropy preset; a one-hot n×k target selects softmax +
// cross-entropy and produces one weight column per class.
//
// No intercept term is modeled: standardize features (for example with
// preprocessing.StandardScaler) before fitting.
type LogisticRegression struct {
	model.BaseEstimator

	alpha         float64
	maxIterations int
	tol           float64
	learningRate  float64 // 0 means data-derived

	weights  *mat.Dense
	nClasses int

	// NFeatures is the number of features seen during fit.
	NFeatures int
	// Converged reports whether the last Fit satisfied the tolerance.
	Converged bool
	// Iterations is the number of gradient steps the last Fit performed.
	Iterations int
}

// NewLogisticRegression creates a logistic regression model.
// learningRate = 0 selects the data-derived default step size; negative
// values are rejected.
func NewLogisticRegression(alpha float64, maxIterations int, tol, learningRate float64) (*LogisticRegression, error) {
	if learningRate < 0 {
		return nil, errors.NewValidationError("learning_rate", "must be non-negative", learningRate)
	}
	// alpha, maxIterations and tol are validated by the solver constructor
	if _, err := solver.NewLogisticGD(alpha, maxIterations, tol); err != nil {
		return nil, err
	}
	return &LogisticRegression{
		alpha:         alpha,
		maxIterations: maxIterations,
		tol:           tol,
		learningRate:  learningRate,
	}, nil
}

// Fit learns the weights. y must be n×1 with 0/1 labels or n×k one-hot.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	const op = "LogisticRegression.Fit"

	r, c := X.Dims()
	ry, k := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError(op, r, ry, 0)
	}
	if k > 1 {
		if err := checkOneHot(op, y); err != nil {
			return err
		}
	}

	var opts []solver.Option
	if lr.learningRate > 0 {
		opts = append(opts, solver.WithLearningRate(lr.learningRate))
	}

	var (
		s   *solver.GradientDescent
		err error
	)
	if k == 1 {
		s, err = solver.NewLogisticGD(lr.alpha, lr.maxIterations, lr.tol, opts...)
	} else {
		s, err = solver.NewMulticlassGD(lr.alpha, lr.maxIterations, lr.tol, opts...)
	}
	if err != nil {
		return err
	}

	res, err := s.Solve(X, y)
	if err != nil {
		return err
	}

	lr.weights = res.Weights
	lr.nClasses = k
	lr.NFeatures = c
	lr.Converged = res.Converged
	lr.Iterations = res.Iterations
	lr.SetFitted()
	return nil
}

// PredictProba returns class probabilities: n×1 positive-class
// probabilities for the binary model, n×k row distributions otherwise.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	if _, c := X.Dims(); c != lr.NFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.NFeatures, c, 1)
	}

	var z mat.Dense
	z.Mul(X, lr.weights)

	if lr.nClasses == 1 {
		return activations.Sigmoid{}.Apply(&z), nil
	}
	return activations.Softmax{}.Apply(&z), nil
}

// Predict returns hard labels: n×1 of 0/1 for the binary model, n×1 of
// class indices otherwise.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, k := proba.Dims()
	out := mat.NewDense(r, 1, nil)
	if k == 1 {
		for i := 0; i < r; i++ {
			if proba.At(i, 0) >= 0.5 {
				out.Set(i, 0, 1)
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		best, bestVal := 0, proba.At(i, 0)
		for j := 1; j < k; j++ {
			if v := proba.At(i, j); v > bestVal {
				best, bestVal = j, v
			}
		}
		out.Set(i, 0, float64(best))
	}
	return out, nil
}

// Score computes classification accuracy against y, which must use the
// same encoding as in Fit.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LogisticRegression", "Score")
	}

	_, k := y.Dims()
	if k > 1 {
		// compare one-hot rows against probability rows by argmax
		proba, err := lr.PredictProba(X)
		if err != nil {
			return 0, err
		}
		return metrics.Accuracy(y, proba)
	}

	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}

// checkOneHot verifies that every row of y sums to one with 0/1 entries.
func checkOneHot(op string, y mat.Matrix) error {
	r, k := y.Dims()
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < k; j++ {
			v := y.At(i, j)
			if v != 0 && v != 1 {
				return errors.NewModelError(op, "invalid target", errors.ErrNotOneHot)
			}
			sum += v
		}
		if sum != 1 {
			return errors.NewModelError(op, "invalid target", errors.ErrNotOneHot)
		}
	}
	return nil
}
