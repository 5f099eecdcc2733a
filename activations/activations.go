// Package activations provides the activation functions consumed by the
// gradient descent solver. Activations are stateless and shape-preserving:
// Apply maps an n×k matrix of linear scores to an n×k matrix of outputs.
package activations

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// Activation maps a matrix of linear scores z = Xw to predictions.
type Activation interface {
	// Name returns the identifier used in logs and warnings.
	Name() string
	// Apply computes the activation elementwise (rowwise for Softmax)
	// and returns a newly allocated matrix of the same shape.
	Apply(z mat.Matrix) *mat.Dense
}

// Identity passes linear scores through unchanged. Paired with the square
// error loss for linear and ridge regression.
type Identity struct{}

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Apply returns a copy of z.
func (Identity) Apply(z mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(z)
}

// Sigmoid squashes scores into (0, 1). Paired with cross-entropy for
// binary classification.
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Apply computes 1 / (1 + exp(-z)) elementwise.
func (Sigmoid) Apply(z mat.Matrix) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, 1.0/(1.0+errors.StabilizeExp(-z.At(i, j))))
		}
	}
	return out
}

// Softmax normalizes each row of scores into a probability distribution.
// Paired with cross-entropy for multiclass classification over one-hot
// targets.
type Softmax struct{}

// Name returns "softmax".
func (Softmax) Name() string { return "softmax" }

// Apply computes exp(z_ij - logsumexp_j(z_i)) per row. The shifted
// exponent is never positive, so exp cannot overflow.
func (Softmax) Apply(z mat.Matrix) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = z.At(i, j)
		}
		lse := errors.LogSumExp(row)
		for j := 0; j < c; j++ {
			out.Set(i, j, math.Exp(row[j]-lse))
		}
	}
	return out
}
