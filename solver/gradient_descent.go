package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/activations"
	"github.com/goml-kit/goml/losses"
	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/pkg/log"
)

// Option configures the injectable strategies of an iterative solver.
type Option func(*options)

type options struct {
	learningRate float64 // 0 means "derive from data"
	init         WeightInitializer
	lrFunc       LearningRateFunc
}

func defaultOptions() options {
	return options{
		init:   ZeroWeights,
		lrFunc: AutoLearningRate,
	}
}

// WithLearningRate overrides the data-derived step size of gradient
// descent. Ignored by LassoISTA, whose step is fixed by the Lipschitz
// bound of the quadratic majorizer.
func WithLearningRate(lr float64) Option {
	return func(o *options) { o.learningRate = lr }
}

// WithWeightInitializer substitutes the weight initialisation strategy.
func WithWeightInitializer(init WeightInitializer) Option {
	return func(o *options) { o.init = init }
}

// WithLearningRateFunc substitutes the default learning rate heuristic.
func WithLearningRateFunc(fn LearningRateFunc) Option {
	return func(o *options) { o.lrFunc = fn }
}

// GradientDescent is a batch first-order optimizer generic over an
// (activation, loss) strategy pair. Each iteration computes
//
//	y_pred = activation(X·w)
//	grad   = Xᵀ·loss.Gradient(y, y_pred) + alpha·w
//	w_new  = w - lr·grad
//
// and stops as soon as every component of |w_new - w| falls below tol.
// Exhausting max iterations is a soft failure: the last iterate is still
// returned, with Converged=false and a ConvergenceWarning raised.
type GradientDescent struct {
	activation activations.Activation
	loss       losses.Loss
	l2         losses.L2Regularization

	maxIterations int
	tol           float64
	opts          options
}

// NewGradientDescent creates a gradient descent solver. alpha is the L2
// penalty strength (applied to every weight component; no intercept is
// modeled), maxIterations bounds the loop and tol is the elementwise
// convergence threshold.
func NewGradientDescent(activation activations.Activation, loss losses.Loss, alpha float64, maxIterations int, tol float64, opts ...Option) (*GradientDescent, error) {
	if alpha < 0 {
		return nil, errors.NewValidationError("alpha", "must be non-negative", alpha)
	}
	if maxIterations <= 0 {
		return nil, errors.NewValidationError("max_iterations", "must be positive", maxIterations)
	}
	if tol < 0 {
		return nil, errors.NewValidationError("tol", "must be non-negative", tol)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.learningRate < 0 {
		return nil, errors.NewValidationError("learning_rate", "must be non-negative", o.learningRate)
	}

	return &GradientDescent{
		activation:    activation,
		loss:          loss,
		l2:            losses.L2Regularization{Alpha: alpha},
		maxIterations: maxIterations,
		tol:           tol,
		opts:          o,
	}, nil
}

// NewLeastSquaresGD is the linear/ridge regression preset:
// identity activation with square error loss.
func NewLeastSquaresGD(alpha float64, maxIterations int, tol float64, opts ...Option) (*GradientDescent, error) {
	return NewGradientDescent(activations.Identity{}, losses.SquareError{}, alpha, maxIterations, tol, opts...)
}

// NewLogisticGD is the binary classification preset:
// sigmoid activation with cross-entropy loss.
func NewLogisticGD(alpha float64, maxIterations int, tol float64, opts ...Option) (*GradientDescent, error) {
	return NewGradientDescent(activations.Sigmoid{}, losses.CrossEntropy{}, alpha, maxIterations, tol, opts...)
}

// NewMulticlassGD is the multiclass classification preset:
// softmax activation with cross-entropy loss over one-hot targets.
func NewMulticlassGD(alpha float64, maxIterations int, tol float64, opts ...Option) (*GradientDescent, error) {
	return NewGradientDescent(activations.Softmax{}, losses.CrossEntropy{}, alpha, maxIterations, tol, opts...)
}

func (s *GradientDescent) name() string {
	return fmt.Sprintf("GradientDescent[%s+%s]", s.activation.Name(), s.loss.Name())
}

// Solve runs batch gradient descent from a fresh zero-initialised weight
// matrix shaped d×k, where k is the number of target columns. Iterates
// that diverge to NaN or Inf (an oversized learning rate, degenerate
// input) abort with a ValueError.
func (s *GradientDescent) Solve(X, y mat.Matrix) (*Result, error) {
	op := s.name() + ".Solve"

	if err := validateInputs(op, X, y); err != nil {
		return nil, err
	}

	n, d := X.Dims()
	_, k := y.Dims()

	lr := s.opts.learningRate
	if lr == 0 {
		lr = s.opts.lrFunc(X)
	}

	w := s.opts.init(d, k)

	for iter := 1; iter <= s.maxIterations; iter++ {
		var z mat.Dense
		z.Mul(X, w)
		yPred := s.activation.Apply(&z)

		var grad mat.Dense
		grad.Mul(X.T(), s.loss.Gradient(y, yPred))
		grad.Add(&grad, s.l2.Gradient(w))

		wNew := mat.NewDense(d, k, nil)
		wNew.Scale(lr, &grad)
		wNew.Sub(w, wNew)

		if err := errors.CheckNumericalStability(op, wNew.RawMatrix().Data, iter); err != nil {
			return nil, err
		}

		if withinTol(wNew, w, s.tol) {
			s.logOutcome(n, d, k, lr, iter, true)
			return &Result{Weights: wNew, Converged: true, Iterations: iter}, nil
		}
		w = wNew
	}

	s.logOutcome(n, d, k, lr, s.maxIterations, false)
	errors.Warn(errors.NewConvergenceWarning(s.name(), s.maxIterations, ""))
	return &Result{Weights: w, Converged: false, Iterations: s.maxIterations}, nil
}

func (s *GradientDescent) logOutcome(n, d, k int, lr float64, iterations int, converged bool) {
	logger := log.GetLogger()
	logger.Debug().
		Str(log.ModelNameKey, s.name()).
		Str(log.OperationKey, "solve").
		Int(log.SamplesKey, n).
		Int(log.FeaturesKey, d).
		Int(log.TargetsKey, k).
		Float64(log.LearningRateKey, lr).
		Int(log.IterationsKey, iterations).
		Bool(log.ConvergedKey, converged).
		Msg("gradient descent finished")
}
