// Package metrics computes goodness-of-fit and error statistics over actual
// and predicted value sequences.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit scores
type Scores struct {
	R2   float64 `json:"r_squared"`
	MAE  float64 `json:"mean_absolute_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	MAPE float64 `json:"mean_absolute_percent_error"`
}

// NewScores calculates the fit scores given the predicted and actual input
// slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	r2, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	rmse, err := RMSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute root mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}

	return &Scores{
		R2:   r2,
		MAE:  mae,
		RMSE: rmse,
		MAPE: mape,
	}, nil
}

// RSquared computes the coefficient of determination 1 - SSres/SStot where 1.0
// means a perfect fit. Returns 0 when all actual values are identical or the
// input is empty, even though the quantity is mathematically undefined there.
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	meanActual := stat.Mean(actual, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := 0; i < len(actual); i++ {
		dTot := actual[i] - meanActual
		dRes := actual[i] - predicted[i]
		ssTot += dTot * dTot
		ssRes += dRes * dRes
	}
	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// MAE computes the mean absolute error. A score of 0 means a perfect match
// with no errors.
func MAE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	mae := 0.0
	for i := 0; i < len(actual); i++ {
		mae += math.Abs(actual[i] - predicted[i])
	}
	mae /= float64(len(actual))
	return mae, nil
}

// RMSE computes the root mean squared error. A score of 0 means a perfect
// match with no errors.
func RMSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		d := actual[i] - predicted[i]
		mse += d * d
	}
	mse /= float64(len(actual))
	return math.Sqrt(mse), nil
}

// MAPE calculates the mean absolute percent error over the entries with a
// non-zero actual value. Zero-actual entries are skipped entirely rather than
// counted as 0% or undefined, and the average is taken over the qualifying
// entries only. Returns 0 when no entries qualify.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mape := 0.0
	var n int
	for i := 0; i < len(actual); i++ {
		if actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return mape / float64(n) * 100, nil
}

// Residuals returns the per-observation actual minus predicted values.
func Residuals(predicted, actual []float64) ([]float64, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	res := make([]float64, len(actual))
	for i := 0; i < len(actual); i++ {
		res[i] = actual[i] - predicted[i]
	}
	return res, nil
}
