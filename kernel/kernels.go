// Package kernel provides the kernel functions used by kernel regression:
// linear, polynomial, RBF and sigmoid kernels, plus a parallel Gram matrix
// builder. Kernels are stateless value types.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/core/parallel"
)

// Kernel computes a similarity between two feature vectors.
type Kernel interface {
	// Name returns the identifier used in logs and errors.
	Name() string
	// Eval computes k(x, y). Both vectors must have the same length.
	Eval(x, y mat.Vector) float64
}

// Linear is the plain inner product kernel ⟨x, y⟩.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return "linear" }

// Eval computes ⟨x, y⟩.
func (Linear) Eval(x, y mat.Vector) float64 {
	return mat.Dot(x, y)
}

// Polynomial is the kernel (γ⟨x, y⟩ + c)ᵈ.
type Polynomial struct {
	Degree int
	Gamma  float64
	Coef0  float64
}

// NewPolynomial returns a polynomial kernel with the common defaults
// gamma=1, coef0=1.
func NewPolynomial(degree int) Polynomial {
	return Polynomial{Degree: degree, Gamma: 1, Coef0: 1}
}

// Name returns "polynomial".
func (Polynomial) Name() string { return "polynomial" }

// Eval computes (γ⟨x, y⟩ + c)ᵈ.
func (k Polynomial) Eval(x, y mat.Vector) float64 {
	return math.Pow(k.Gamma*mat.Dot(x, y)+k.Coef0, float64(k.Degree))
}

// RBF is the Gaussian radial basis function kernel exp(-γ‖x-y‖²).
type RBF struct {
	Gamma float64
}

// NewRBF returns an RBF kernel with the given width parameter.
func NewRBF(gamma float64) RBF {
	return RBF{Gamma: gamma}
}

// Name returns "rbf".
func (RBF) Name() string { return "rbf" }

// Eval computes exp(-γ‖x-y‖²).
func (k RBF) Eval(x, y mat.Vector) float64 {
	var sq float64
	for i := 0; i < x.Len(); i++ {
		d := x.AtVec(i) - y.AtVec(i)
		sq += d * d
	}
	return math.Exp(-k.Gamma * sq)
}

// Sigmoid is the hyperbolic tangent kernel tanh(γ⟨x, y⟩ + c).
type Sigmoid struct {
	Gamma float64
	Coef0 float64
}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Eval computes tanh(γ⟨x, y⟩ + c).
func (k Sigmoid) Eval(x, y mat.Vector) float64 {
	return math.Tanh(k.Gamma*mat.Dot(x, y) + k.Coef0)
}

// gramParallelThreshold is the row count above which Gram computation is
// spread across CPU cores.
const gramParallelThreshold = 64

// Gram computes the kernel matrix K where K[i][j] = k(A_i, B_j) over the
// rows of A (n×d) and B (m×d). Row blocks are computed in parallel for
// larger inputs. Gram panics with mat.ErrShape if A and B disagree on the
// feature dimension, following the mat package convention.
func Gram(k Kernel, A, B mat.Matrix) *mat.Dense {
	n, d := A.Dims()
	m, db := B.Dims()
	if db != d {
		panic(mat.ErrShape)
	}

	K := mat.NewDense(n, m, nil)

	parallel.ParallelizeWithThreshold(n, gramParallelThreshold, func(start, end int) {
		ai := mat.NewVecDense(d, nil)
		bj := mat.NewVecDense(d, nil)
		for i := start; i < end; i++ {
			for c := 0; c < d; c++ {
				ai.SetVec(c, A.At(i, c))
			}
			for j := 0; j < m; j++ {
				for c := 0; c < d; c++ {
					bj.SetVec(c, B.At(j, c))
				}
				K.Set(i, j, k.Eval(ai, bj))
			}
		}
	})

	return K
}
