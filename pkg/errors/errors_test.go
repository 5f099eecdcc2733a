package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "goml: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Solve",
			kind:     "empty data",
			err:      nil,
			wantMsg:  "goml: Solve: empty data",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("PInv.Solve", 10, 8, 0)

	// 基本的なエラーメッセージの確認
	want := "goml: PInv.Solve: dimension mismatch on axis 0 (rows). Expected 10, got 8"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}

	if dimErr.Expected != 10 || dimErr.Got != 8 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("alpha", "must be non-negative", -0.5)

	want := "goml: validation failed for parameter 'alpha': must be non-negative (got: -0.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestConvergenceWarning(t *testing.T) {
	w := NewConvergenceWarning("GradientDescent", 1000, "")

	msg := w.Error()
	if !strings.Contains(msg, "GradientDescent") || !strings.Contains(msg, "1000") {
		t.Errorf("unexpected warning message: %v", msg)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewConvergenceWarning("LassoISTA", 500, "tol not reached")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}

	var cw *ConvergenceWarning
	if !As(captured, &cw) {
		t.Error("captured warning should be a *ConvergenceWarning")
	}
	if cw.Iterations != 500 {
		t.Errorf("Iterations = %d, want 500", cw.Iterations)
	}
}

func TestStabilizeLog(t *testing.T) {
	if v := StabilizeLog(0); v > -20 {
		t.Errorf("StabilizeLog(0) = %v, want a large negative value", v)
	}
	if v := StabilizeLog(1); v != 0 {
		t.Errorf("StabilizeLog(1) = %v, want 0", v)
	}
}

func TestLogSumExp(t *testing.T) {
	// log(e^0 + e^0) = log 2
	if v := LogSumExp([]float64{0, 0}); math.Abs(v-math.Log(2)) > 1e-12 {
		t.Errorf("LogSumExp([0 0]) = %v, want ln 2", v)
	}

	// The max shift must keep huge inputs finite: the result is dominated
	// by the largest term.
	v := LogSumExp([]float64{1000, 999})
	want := 1000 + math.Log(1+math.Exp(-1))
	if math.IsInf(v, 0) || math.Abs(v-want) > 1e-9 {
		t.Errorf("LogSumExp([1000 999]) = %v, want %v", v, want)
	}

	if v := LogSumExp(nil); !math.IsInf(v, -1) {
		t.Errorf("LogSumExp(nil) = %v, want -Inf", v)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("solve", []float64{1, -2, 0}, 3); err != nil {
		t.Errorf("finite values must pass: %v", err)
	}

	err := CheckNumericalStability("solve", []float64{1, math.NaN()}, 7)
	if err == nil {
		t.Fatal("NaN must be detected")
	}
	var ve *ValueError
	if !As(err, &ve) {
		t.Errorf("expected ValueError, got %T", err)
	}

	if err := CheckNumericalStability("solve", []float64{math.Inf(1)}, 1); err == nil {
		t.Error("Inf must be detected")
	}
}
