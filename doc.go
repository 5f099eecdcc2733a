// Package goml provides a small machine learning toolkit for Go, built
// around a pluggable optimization solver layer.
//
// The solver package is the core: a closed-form pseudo-inverse solver for
// (regularized) least squares, a generic batch gradient descent solver
// parameterized by activation and loss, and an ISTA proximal solver for
// L1-penalized problems. The linear package wraps these solvers in
// scikit-learn-style estimators with Fit/Predict/Score methods.
//
// # Quick Start
//
// Fitting a linear regression:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/goml-kit/goml/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // y = 2x + 3
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{5, 7, 9, 11})
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(mat.NewDense(1, 1, []float64{5}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("f(5) = %.2f\n", pred.At(0, 0))
//	}
//
// # Package Layout
//
//   - solver: PInv, GradientDescent and LassoISTA optimization solvers
//   - activations, losses: the building blocks GradientDescent composes
//   - linear: LinearRegression, Ridge, Lasso, LogisticRegression and
//     KernelRegression estimators
//   - kernel: kernel functions and the Gram matrix builder
//   - preprocessing: StandardScaler
//   - metrics: regression, classification and impurity metrics
//   - core/model: estimator state and the Fitter/Predictor/Scorer
//     interfaces
//
// Solvers report non-convergence softly: Fit succeeds with best-effort
// weights, the estimator records Converged=false, and a warning is emitted
// through pkg/log.
package goml
