package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/kernel"
	"github.com/goml-kit/goml/pkg/errors"
)

func TestKernelRegression_PInvInterpolates(t *testing.T) {
	// RBFグラム行列は正定値なので、α=0の閉形式解は訓練データを補間する
	X := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})
	y := mat.NewDense(5, 1, []float64{1, 2, 0, -1, 3})

	kr, err := NewKernelRegression(kernel.NewRBF(2), KernelSolverPInv, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, kr.Fit(X, y))
	assert.True(t, kr.Converged)

	pred, err := kr.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, y.At(i, 0), pred.At(i, 0), 1e-6, "sample %d", i)
	}

	score, err := kr.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestKernelRegression_RegularizationSmooths(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})
	y := mat.NewDense(5, 1, []float64{1, 2, 0, -1, 3})

	exact, err := NewKernelRegression(kernel.NewRBF(2), KernelSolverPInv, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, exact.Fit(X, y))

	smooth, err := NewKernelRegression(kernel.NewRBF(2), KernelSolverPInv, 10, 0, 0)
	require.NoError(t, err)
	require.NoError(t, smooth.Fit(X, y))

	// 正則化が強いほど訓練データへの当てはまりは悪くなる
	sExact, err := exact.Score(X, y)
	require.NoError(t, err)
	sSmooth, err := smooth.Score(X, y)
	require.NoError(t, err)
	assert.Less(t, sSmooth, sExact)
}

func TestKernelRegression_GradientDescent(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})
	y := mat.NewDense(5, 1, []float64{1, 2, 0, -1, 3})

	kr, err := NewKernelRegression(kernel.NewRBF(2), KernelSolverGD, 0, 200000, 1e-10)
	require.NoError(t, err)
	require.NoError(t, kr.Fit(X, y))

	pred, err := kr.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, y.At(i, 0), pred.At(i, 0), 1e-3, "sample %d", i)
	}
}

func TestKernelRegression_PolynomialKernel(t *testing.T) {
	// 二次関数は2次多項式カーネルの張る空間で表現できる
	X := mat.NewDense(6, 1, []float64{-2, -1, 0, 1, 2, 3})
	y := mat.NewDense(6, 1, nil)
	for i := 0; i < 6; i++ {
		v := X.At(i, 0)
		y.Set(i, 0, v*v-v+1)
	}

	kr, err := NewKernelRegression(kernel.NewPolynomial(2), KernelSolverPInv, 1e-8, 0, 0)
	require.NoError(t, err)
	require.NoError(t, kr.Fit(X, y))

	score, err := kr.Score(X, y)
	require.NoError(t, err)
	assert.Greater(t, score, 0.999)
}

func TestKernelRegression_InvalidSolver(t *testing.T) {
	_, err := NewKernelRegression(kernel.Linear{}, "newton", 0, 0, 0)
	require.Error(t, err)

	var ve *errors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestKernelRegression_InvalidHyperparameters(t *testing.T) {
	_, err := NewKernelRegression(kernel.Linear{}, KernelSolverPInv, -1, 0, 0)
	assert.Error(t, err)

	_, err = NewKernelRegression(kernel.Linear{}, KernelSolverGD, 0, 0, 1e-4)
	assert.Error(t, err)
}

func TestKernelRegression_NotFitted(t *testing.T) {
	kr, err := NewKernelRegression(kernel.Linear{}, KernelSolverPInv, 0, 0, 0)
	require.NoError(t, err)

	_, perr := kr.Predict(mat.NewDense(1, 1, []float64{1}))
	require.Error(t, perr)

	var nf *errors.NotFittedError
	assert.ErrorAs(t, perr, &nf)
}
