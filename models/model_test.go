package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	testData := map[string]struct {
		x, theta0, theta1 float64
		expected          float64
	}{
		"zero parameters": {123456, 0, 0, 0},
		"intercept only":  {0, 22000, -0.2, 22000},
		"negative slope":  {10000, 22000, -0.2, 20000},
		"positive slope":  {2, 1, 3, 7},
		"negative input":  {-4, 1, -2, 9},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, Estimate(td.x, td.theta0, td.theta1), 1e-12)
		})
	}
}

func TestCost(t *testing.T) {
	testData := map[string]struct {
		x, y           []float64
		theta0, theta1 float64
		expected       float64
	}{
		"empty":       {nil, nil, 1, 1, 0},
		"perfect fit": {[]float64{1, 2, 3}, []float64{2, 4, 6}, 0, 2, 0},
		"constant error": {
			// every prediction off by 2 gives (1/2m)*sum(4) = 2
			[]float64{1, 2}, []float64{3, 5}, 3, 2, 2,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, Cost(td.x, td.y, td.theta0, td.theta1), 1e-12)
		})
	}
}
