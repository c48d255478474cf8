// Package stats provides the normalization and summary statistics used when
// fitting a model in normalized space and mapping it back to original units.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats stores the population mean and standard deviation of one feature.
type Stats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Normalize shifts and scales the input to zero mean and unit standard
// deviation using the population standard deviation. A zero standard deviation
// is clamped to 1.0 so constant-valued inputs normalize to all zeros instead of
// NaN. An empty input returns an empty slice with Stats{0, 1}.
func Normalize(data []float64) ([]float64, Stats) {
	if len(data) == 0 {
		return nil, Stats{Mean: 0, Std: 1}
	}

	mean := stat.Mean(data, nil)
	std := stat.PopStdDev(data, nil)
	if std == 0 {
		std = 1
	}

	normalized := make([]float64, len(data))
	copy(normalized, data)
	floats.AddConst(-mean, normalized)
	floats.Scale(1/std, normalized)
	return normalized, Stats{Mean: mean, Std: std}
}

// DenormalizeTheta re-expresses a line fit in normalized space in original
// units. With
//
//	price = price.Mean + price.Std*(theta0n + theta1n*(x-km.Mean)/km.Std)
//
// the original-unit parameters are
//
//	theta1 = price.Std * theta1n / km.Std
//	theta0 = price.Mean + price.Std*(theta0n - theta1n*km.Mean/km.Std)
//
// A zero km.Std yields ±Inf or NaN per IEEE 754; Normalize never produces one.
func DenormalizeTheta(theta0n, theta1n float64, km, price Stats) (float64, float64) {
	theta1 := price.Std * theta1n / km.Std
	theta0 := price.Mean + price.Std*(theta0n-theta1n*km.Mean/km.Std)
	return theta0, theta1
}

// Summary describes the distribution of a residual series.
type Summary struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`
}

// ResidualSummary computes distribution statistics over a residual series
// using the population standard deviation. An empty input returns the zero
// Summary.
func ResidualSummary(residuals []float64) Summary {
	if len(residuals) == 0 {
		return Summary{}
	}

	minRes := floats.Min(residuals)
	maxRes := floats.Max(residuals)
	return Summary{
		Mean:  stat.Mean(residuals, nil),
		Std:   stat.PopStdDev(residuals, nil),
		Min:   minRes,
		Max:   maxRes,
		Range: maxRes - minRes,
	}
}
