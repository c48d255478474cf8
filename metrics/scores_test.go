package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSquared(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		err       error
		expected  float64
	}{
		"length mismatch": {[]float64{1}, []float64{1, 2}, ErrResLenMismatch, 0},
		"empty":           {nil, nil, nil, 0},
		"perfect fit": {
			[]float64{20000, 18000, 16000},
			[]float64{20000, 18000, 16000},
			nil, 1.0,
		},
		"constant actual": {[]float64{1, 2, 3}, []float64{5, 5, 5}, nil, 0},
		"half explained": {
			[]float64{1.5, 1.5, 3.5, 3.5},
			[]float64{1, 2, 3, 4},
			nil, 0.8,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			r2, err := RSquared(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, r2, 1e-8)
		})
	}
}

func TestMAE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		err       error
		expected  float64
	}{
		"length mismatch": {[]float64{1}, []float64{1, 2}, ErrResLenMismatch, 0},
		"empty":           {nil, nil, nil, 0},
		"perfect":         {[]float64{1, 2}, []float64{1, 2}, nil, 0},
		"mixed signs":     {[]float64{2, 1}, []float64{1, 2}, nil, 1},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mae, err := MAE(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, mae, 1e-8)
		})
	}
}

func TestRMSE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		err       error
		expected  float64
	}{
		"length mismatch": {[]float64{1}, []float64{1, 2}, ErrResLenMismatch, 0},
		"empty":           {nil, nil, nil, 0},
		"perfect":         {[]float64{1, 2}, []float64{1, 2}, nil, 0},
		"uniform error":   {[]float64{4, 0}, []float64{1, 3}, nil, 3},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			rmse, err := RMSE(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, rmse, 1e-8)
		})
	}
}

func TestMAPE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		err       error
		expected  float64
	}{
		"length mismatch": {[]float64{1}, []float64{1, 2}, ErrResLenMismatch, 0},
		"empty":           {nil, nil, nil, 0},
		"all zero actuals skipped": {
			[]float64{5, 5},
			[]float64{0, 0},
			nil, 0,
		},
		"zero actual skipped in average": {
			[]float64{12, 5, 18},
			[]float64{10, 0, 20},
			nil, 15.0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mape, err := MAPE(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, mape, 1e-8)
		})
	}
}

func TestNewScores(t *testing.T) {
	predicted := []float64{20000, 18000, 16000}
	actual := []float64{20000, 18000, 16000}

	scores, err := NewScores(predicted, actual)
	require.Nil(t, err)

	assert.InDelta(t, 1.0, scores.R2, 1e-12)
	assert.InDelta(t, 0.0, scores.MAE, 1e-12)
	assert.InDelta(t, 0.0, scores.RMSE, 1e-12)
	assert.InDelta(t, 0.0, scores.MAPE, 1e-12)

	_, err = NewScores([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestResiduals(t *testing.T) {
	res, err := Residuals([]float64{1, 2, 3}, []float64{2, 2, 2})
	require.Nil(t, err)
	assert.Equal(t, []float64{1, 0, -1}, res)

	_, err = Residuals([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestFitQuality(t *testing.T) {
	assert.Equal(t, "good fit", FitQuality(0.7))
	assert.Equal(t, "moderate fit", FitQuality(0.5))
	assert.Equal(t, "poor fit", FitQuality(0.49))
}

func TestAccuracyGrade(t *testing.T) {
	assert.Equal(t, "excellent", AccuracyGrade(90))
	assert.Equal(t, "good", AccuracyGrade(85))
	assert.Equal(t, "needs improvement", AccuracyGrade(79.9))
}
