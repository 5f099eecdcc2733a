package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/core/model"
	"github.com/goml-kit/goml/metrics"
	"github.com/goml-kit/goml/pkg/errors"
	"github.com/goml-kit/goml/solver"
)

// LinearRegression は正規方程式を擬似逆行列で解く線形回帰モデル
// 切片は平均センタリングで扱う（計画行列に1の列は追加しない）
type LinearRegression struct {
	model.BaseEstimator

	coef      *mat.VecDense
	intercept float64

	// NFeatures は特徴量の数
	NFeatures int
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit はモデルを訓練データで学習させる
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	coef, intercept, nFeatures, err := fitCentered("LinearRegression.Fit", X, y, 0)
	if err != nil {
		return err
	}

	lr.coef = coef
	lr.intercept = intercept
	lr.NFeatures = nFeatures
	lr.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}
	return predictLinear("LinearRegression.Predict", X, lr.coef, lr.intercept, lr.NFeatures)
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}
	return scoreR2(lr, X, y)
}

// Weights は学習された重み（係数）を返す
func (lr *LinearRegression) Weights() []float64 {
	return vecToSlice(lr.coef)
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}

// Ridge はL2正則化付き線形回帰モデル
type Ridge struct {
	model.BaseEstimator

	alpha     float64
	coef      *mat.VecDense
	intercept float64

	// NFeatures は特徴量の数
	NFeatures int
}

// NewRidge は正則化係数alphaのRidgeモデルを作成する
func NewRidge(alpha float64) (*Ridge, error) {
	if alpha < 0 {
		return nil, errors.NewValidationError("alpha", "must be non-negative", alpha)
	}
	return &Ridge{alpha: alpha}, nil
}

// Fit はモデルを訓練データで学習させる
func (r *Ridge) Fit(X, y mat.Matrix) error {
	coef, intercept, nFeatures, err := fitCentered("Ridge.Fit", X, y, r.alpha)
	if err != nil {
		return err
	}

	r.coef = coef
	r.intercept = intercept
	r.NFeatures = nFeatures
	r.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (r *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}
	return predictLinear("Ridge.Predict", X, r.coef, r.intercept, r.NFeatures)
}

// Score はモデルの決定係数（R²）を計算する
func (r *Ridge) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}
	return scoreR2(r, X, y)
}

// Weights は学習された重み（係数）を返す
func (r *Ridge) Weights() []float64 {
	return vecToSlice(r.coef)
}

// Intercept は学習された切片を返す
func (r *Ridge) Intercept() float64 {
	return r.intercept
}

// fitCentered はX・yを平均センタリングした上でPInvソルバーを実行し、
// 係数と切片を返す共通処理
func fitCentered(op string, X, y mat.Matrix, alpha float64) (*mat.VecDense, float64, int, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return nil, 0, 0, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return nil, 0, 0, errors.NewValueError(op, "y must be a column vector")
	}

	Xc, xMeans := centerColumns(X)
	yc, yMean := centerColumns(y)

	s, err := solver.NewPInv(alpha)
	if err != nil {
		return nil, 0, 0, err
	}
	res, err := s.Solve(Xc, yc)
	if err != nil {
		return nil, 0, 0, err
	}

	coef := mat.NewVecDense(c, nil)
	intercept := yMean[0]
	for j := 0; j < c; j++ {
		coef.SetVec(j, res.Weights.At(j, 0))
		intercept -= xMeans[j] * coef.AtVec(j)
	}
	return coef, intercept, c, nil
}

// centerColumns は各列から平均を引いたコピーと列平均を返す
func centerColumns(X mat.Matrix) (*mat.Dense, []float64) {
	r, c := X.Dims()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		means[j] = sum / float64(r)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(i, j)-means[j])
		}
	}
	return out, means
}

// predictLinear は ŷ = X·coef + intercept を計算する共通処理
func predictLinear(op string, X mat.Matrix, coef *mat.VecDense, intercept float64, nFeatures int) (mat.Matrix, error) {
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError(op, nFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * coef.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// scoreR2 は予測値に対する決定係数を計算する共通処理
func scoreR2(m model.Predictor, X, y mat.Matrix) (float64, error) {
	yPred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	yTrueVec := mat.NewVecDense(r, nil)
	yPredVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}
	return metrics.R2(yTrueVec, yPredVec)
}

func vecToSlice(v *mat.VecDense) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
