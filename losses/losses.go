// Package losses provides the loss functions consumed by the solvers.
//
// Gradients are hand-derived per (activation, loss) pair and taken with
// respect to the linear score z = Xw, assuming the loss is paired with its
// canonical activation (identity for square error, sigmoid/softmax for
// cross-entropy). For those canonical pairs the score gradient collapses to
// yPred - y, which is what the gradient descent solver multiplies by Xᵀ.
package losses

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// Loss exposes a value and a score gradient. Both are pure and stateless.
type Loss interface {
	// Name returns the identifier used in logs and warnings.
	Name() string
	// Value computes the total loss over all samples.
	Value(y, yPred mat.Matrix) float64
	// Gradient computes the loss gradient with respect to the linear
	// score, shape-preserving over yPred.
	Gradient(y, yPred mat.Matrix) *mat.Dense
}

// SquareError is the least squares loss ½Σ(y - yPred)².
type SquareError struct{}

// Name returns "square_error".
func (SquareError) Name() string { return "square_error" }

// Value computes ½Σ(y - yPred)².
func (SquareError) Value(y, yPred mat.Matrix) float64 {
	r, c := y.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := y.At(i, j) - yPred.At(i, j)
			sum += d * d
		}
	}
	return 0.5 * sum
}

// Gradient returns yPred - y.
func (SquareError) Gradient(y, yPred mat.Matrix) *mat.Dense {
	return residual(y, yPred)
}

// CrossEntropy is the log loss for binary (single-column y in {0,1}) and
// multiclass (one-hot y) classification.
type CrossEntropy struct{}

// Name returns "cross_entropy".
func (CrossEntropy) Name() string { return "cross_entropy" }

// Value computes -Σ y·log(yPred) for one-hot targets, with the additional
// (1-y)·log(1-yPred) term in the single-column binary case.
func (CrossEntropy) Value(y, yPred mat.Matrix) float64 {
	r, c := y.Dims()
	var sum float64
	if c == 1 {
		for i := 0; i < r; i++ {
			yi, pi := y.At(i, 0), yPred.At(i, 0)
			sum -= yi*errors.StabilizeLog(pi) + (1-yi)*errors.StabilizeLog(1-pi)
		}
		return sum
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum -= y.At(i, j) * errors.StabilizeLog(yPred.At(i, j))
		}
	}
	return sum
}

// Gradient returns yPred - y, the score gradient under the canonical
// sigmoid/softmax pairing.
func (CrossEntropy) Gradient(y, yPred mat.Matrix) *mat.Dense {
	return residual(y, yPred)
}

// L2Regularization contributes alpha·w to the weight gradient. There is no
// intercept column in the design matrix, so every component is penalized.
type L2Regularization struct {
	Alpha float64
}

// Value computes ½·alpha·‖w‖².
func (l L2Regularization) Value(w mat.Matrix) float64 {
	r, c := w.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			sum += v * v
		}
	}
	return 0.5 * l.Alpha * sum
}

// Gradient returns alpha·w.
func (l L2Regularization) Gradient(w mat.Matrix) *mat.Dense {
	r, c := w.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(l.Alpha, w)
	return out
}

func residual(y, yPred mat.Matrix) *mat.Dense {
	r, c := y.Dims()
	out := mat.NewDense(r, c, nil)
	out.Sub(yPred, y)
	return out
}
