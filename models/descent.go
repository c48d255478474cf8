package models

import (
	"fmt"
)

// GradientDescentOptions represents input options to run the batch gradient
// descent fit.
type GradientDescentOptions struct {
	LearningRate float64
	Iterations   int
}

// NewDefaultGradientDescentOptions returns a default set of gradient descent
// options.
func NewDefaultGradientDescentOptions() *GradientDescentOptions {
	return &GradientDescentOptions{
		LearningRate: 0.1,
		Iterations:   1000,
	}
}

// GradientDescent fits a line by batch gradient descent over a fixed iteration
// budget. Inputs are expected in normalized space; the engine performs no
// divergence detection, so a too-large learning rate produces a growing cost
// history rather than an error.
type GradientDescent struct {
	opt *GradientDescentOptions

	intercept   float64
	slope       float64
	costHistory []float64
}

func NewGradientDescent(opt *GradientDescentOptions) (*GradientDescent, error) {
	if opt == nil {
		opt = NewDefaultGradientDescentOptions()
	}
	if opt.LearningRate <= 0 {
		return nil, fmt.Errorf("got learning rate %f, %w", opt.LearningRate, ErrBadLearningRate)
	}
	if opt.Iterations <= 0 {
		return nil, fmt.Errorf("got %d iterations, %w", opt.Iterations, ErrBadIterations)
	}
	return &GradientDescent{
		opt: opt,
	}, nil
}

// Fit runs the fixed iteration budget over the observations. Both parameters
// are updated simultaneously from the same pre-update values each iteration,
// and the cost after each completed iteration is appended to the cost history.
func (g *GradientDescent) Fit(x, y []float64) error {
	if g.opt == nil {
		return ErrNoOptions
	}
	m := len(y)
	if m == 0 {
		return ErrNoTrainingData
	}
	if len(x) != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", len(x), m, ErrTargetLenMismatch)
	}

	theta0 := 0.0
	theta1 := 0.0
	costHistory := make([]float64, 0, g.opt.Iterations)

	for i := 0; i < g.opt.Iterations; i++ {
		grad0 := 0.0
		grad1 := 0.0
		for j := 0; j < m; j++ {
			err := Estimate(x[j], theta0, theta1) - y[j]
			grad0 += err
			grad1 += err * x[j]
		}
		grad0 /= float64(m)
		grad1 /= float64(m)

		theta0 -= g.opt.LearningRate * grad0
		theta1 -= g.opt.LearningRate * grad1

		costHistory = append(costHistory, Cost(x, y, theta0, theta1))
	}

	g.intercept = theta0
	g.slope = theta1
	g.costHistory = costHistory
	return nil
}

func (g *GradientDescent) Predict(x float64) float64 {
	return Estimate(x, g.intercept, g.slope)
}

func (g *GradientDescent) Intercept() float64 {
	return g.intercept
}

func (g *GradientDescent) Slope() float64 {
	return g.slope
}

// CostHistory returns a copy of the cost recorded after each iteration of the
// last fit. Its length equals the configured iteration count.
func (g *GradientDescent) CostHistory() []float64 {
	c := make([]float64, len(g.costHistory))
	copy(c, g.costHistory)
	return c
}
