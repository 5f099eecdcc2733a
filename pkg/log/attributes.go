// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys consistently across solvers and estimators enables
// structured log analysis and filtering. The keys follow a hierarchical
// naming convention (e.g. "model.name", "data.samples").
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model or solver.
	// Examples: "Ridge", "LassoISTA", "GradientDescent"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "solve", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "solver", "linear", "preprocessing"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// TargetsKey indicates the number of target columns. 1 for single-output
	// problems, the number of classes for one-hot multiclass targets.
	TargetsKey = "data.targets"
)

// Solver Outcome
const (
	// IterationsKey records how many iterations an iterative solver performed.
	IterationsKey = "solver.iterations"

	// ConvergedKey records whether the solver satisfied its tolerance.
	ConvergedKey = "solver.converged"

	// LearningRateKey records the step size used by gradient descent.
	LearningRateKey = "solver.learning_rate"
)
