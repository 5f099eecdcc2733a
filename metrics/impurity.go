package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// classCounts derives per-class sample counts from a classification target:
// an n×1 matrix of 0/1 labels is treated as two classes, an n×k matrix as
// one-hot encoded k classes.
func classCounts(y mat.Matrix) []float64 {
	n, k := y.Dims()
	if k == 1 {
		var ones float64
		for i := 0; i < n; i++ {
			ones += y.At(i, 0)
		}
		return []float64{ones, float64(n) - ones}
	}

	counts := make([]float64, k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			counts[j] += y.At(i, j)
		}
	}
	return counts
}

// Entropy computes the Shannon entropy of a classification target
// (binary 0/1 labels in one column, or a one-hot matrix).
func Entropy(y mat.Matrix) (float64, error) {
	n, _ := y.Dims()
	if n == 0 {
		return 0, errors.NewValueError("Entropy", "input must not be empty")
	}

	var h float64
	for _, c := range classCounts(y) {
		p := c / float64(n)
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h, nil
}

// GiniImpurity computes 1 - Σ p².
func GiniImpurity(y mat.Matrix) (float64, error) {
	n, _ := y.Dims()
	if n == 0 {
		return 0, errors.NewValueError("GiniImpurity", "input must not be empty")
	}

	var sum float64
	for _, c := range classCounts(y) {
		p := c / float64(n)
		sum += p * p
	}
	return 1 - sum, nil
}

// ClassificationError computes 1 - max(p): the error rate of always
// predicting the majority class.
func ClassificationError(y mat.Matrix) (float64, error) {
	n, _ := y.Dims()
	if n == 0 {
		return 0, errors.NewValueError("ClassificationError", "input must not be empty")
	}

	var maxCount float64
	for _, c := range classCounts(y) {
		if c > maxCount {
			maxCount = c
		}
	}
	return 1 - maxCount/float64(n), nil
}

// Variance computes the population variance of a real-valued target.
func Variance(y *mat.VecDense) (float64, error) {
	n := y.Len()
	if n == 0 {
		return 0, errors.NewValueError("Variance", "input must not be empty")
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += y.AtVec(i)
	}
	mean /= float64(n)

	var v float64
	for i := 0; i < n; i++ {
		d := y.AtVec(i) - mean
		v += d * d
	}
	return v / float64(n), nil
}

// MeanDeviation computes the mean absolute deviation from the mean.
func MeanDeviation(y *mat.VecDense) (float64, error) {
	n := y.Len()
	if n == 0 {
		return 0, errors.NewValueError("MeanDeviation", "input must not be empty")
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += y.AtVec(i)
	}
	mean /= float64(n)

	var md float64
	for i := 0; i < n; i++ {
		md += math.Abs(y.AtVec(i) - mean)
	}
	return md / float64(n), nil
}
