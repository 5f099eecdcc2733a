package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// Accuracy computes the fraction of correctly classified samples.
// For n×1 targets values are compared directly; for one-hot n×k targets
// rows are compared by argmax.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	n, k := yTrue.Dims()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "input must not be empty")
	}
	pr, pc := yPred.Dims()
	if pr != n || pc != k {
		return 0, errors.NewDimensionError("Accuracy", n, pr, 0)
	}

	var correct int
	if k == 1 {
		for i := 0; i < n; i++ {
			if yTrue.At(i, 0) == yPred.At(i, 0) {
				correct++
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if argmaxRow(yTrue, i, k) == argmaxRow(yPred, i, k) {
				correct++
			}
		}
	}
	return float64(correct) / float64(n), nil
}

func argmaxRow(m mat.Matrix, row, cols int) int {
	best := 0
	bestVal := m.At(row, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(row, j); v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best
}
