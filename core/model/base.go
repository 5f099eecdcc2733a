package model

// EstimatorState は推定器の学習ライフサイクルを表す
type EstimatorState int

const (
	// NotFitted はFitがまだ成功していない初期状態
	NotFitted EstimatorState = iota
	// Fitted はFitの完了後の状態
	Fitted
)

// BaseEstimator は各推定器に埋め込んで学習状態を追跡する。
// ゼロ値はそのまま未学習状態として使える
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はFitが完了しているかを報告する。
// PredictやScoreの前提条件チェックに使う
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は学習の完了を記録する。Fitの成功時にのみ呼ぶこと
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は推定器を未学習状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
