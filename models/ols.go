package models

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// OLSRegression computes the closed-form univariate least squares fit. It is
// not part of the training pipeline and exists to cross-check a converged
// gradient descent fit.
type OLSRegression struct {
	intercept float64
	slope     float64
}

func NewOLSRegression() *OLSRegression {
	return &OLSRegression{}
}

func (o *OLSRegression) Fit(x, y []float64) error {
	m := len(y)
	if m == 0 {
		return ErrNoTrainingData
	}
	if len(x) != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", len(x), m, ErrTargetLenMismatch)
	}

	o.intercept, o.slope = stat.LinearRegression(x, y, nil, false)
	return nil
}

func (o *OLSRegression) Predict(x float64) float64 {
	return Estimate(x, o.intercept, o.slope)
}

func (o *OLSRegression) Intercept() float64 {
	return o.intercept
}

func (o *OLSRegression) Slope() float64 {
	return o.slope
}
