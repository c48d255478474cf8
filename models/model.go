// Package models is a collection of univariate linear fitting implementations
// sharing the hypothesis and cost function of the trainer.
package models

// Model fits a line y = intercept + slope*x to a pair of equal-length slices.
type Model interface {
	Fit(x, y []float64) error
	Predict(x float64) float64
	Intercept() float64
	Slope() float64
}

// Estimate evaluates the linear hypothesis theta0 + theta1*x. It is total over
// all finite inputs and may overflow to Inf.
func Estimate(x, theta0, theta1 float64) float64 {
	return theta0 + theta1*x
}

// Cost computes the mean squared error objective (1/2m)*sum((h(x)-y)^2) of the
// hypothesis against the observations. Returns 0 for an empty dataset.
func Cost(x, y []float64, theta0, theta1 float64) float64 {
	m := len(y)
	if m == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < m; i++ {
		err := Estimate(x[i], theta0, theta1) - y[i]
		total += err * err
	}
	return total / (2 * float64(m))
}
