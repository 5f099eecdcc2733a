package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// WeightInitializer produces the initial rows×cols weight matrix for an
// iterative solver. It is injectable so tests can substitute alternatives.
type WeightInitializer func(rows, cols int) *mat.Dense

// LearningRateFunc computes a default step size from the design matrix
// when no explicit learning rate is configured.
type LearningRateFunc func(X mat.Matrix) float64

// ZeroWeights is the default initializer: a deterministic all-zero matrix.
// Zero initialisation makes repeated Solve calls bit-identical.
func ZeroWeights(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// SupremumEigen returns an upper bound on the largest eigenvalue of the
// symmetric matrix a, via the Gershgorin circle theorem: the max over rows
// of the absolute row sum. Cheap to compute and always a valid Lipschitz
// bound for the quadratic term it is used with.
func SupremumEigen(a mat.Matrix) float64 {
	r, c := a.Dims()
	var sup float64
	for i := 0; i < r; i++ {
		var rowSum float64
		for j := 0; j < c; j++ {
			rowSum += math.Abs(a.At(i, j))
		}
		if rowSum > sup {
			sup = rowSum
		}
	}
	return sup
}

// AutoLearningRate is the default step size heuristic for gradient descent
// on a least-squares-scale objective: 1/ρ where ρ bounds the largest
// eigenvalue of XᵀX (the curvature scale of the problem).
func AutoLearningRate(X mat.Matrix) float64 {
	var gram mat.Dense
	gram.Mul(X.T(), X)

	rho := SupremumEigen(&gram)
	if rho <= 0 {
		// all-zero design matrix; any step size works on a flat objective
		return 1.0
	}
	return 1.0 / rho
}
