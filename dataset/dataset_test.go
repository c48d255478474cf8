package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		mileages []float64
		prices   []float64
		err      error
	}{
		"valid":            {[]float64{1000, 2000}, []float64{500, 400}, nil},
		"empty":            {nil, nil, ErrNoTrainingData},
		"length mismatch":  {[]float64{1000}, []float64{500, 400}, ErrDatasetLenMismatch},
		"negative mileage": {[]float64{-1, 2000}, []float64{500, 400}, ErrNegativeMileage},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			d, err := New(td.mileages, td.prices)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.mileages, d.Mileages)
			assert.Equal(t, td.prices, d.Prices)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	mileages := []float64{1000, 2000}
	prices := []float64{500, 400}
	d, err := New(mileages, prices)
	require.Nil(t, err)

	mileages[0] = 9999
	assert.Equal(t, 1000.0, d.Mileages[0])
}

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.Nil(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	testData := map[string]struct {
		contents         string
		err              error
		expectedMileages []float64
		expectedPrices   []float64
	}{
		"well formed": {
			contents:         "km,price\n240000,3650\n139800,3800\n",
			expectedMileages: []float64{240000, 139800},
			expectedPrices:   []float64{3650, 3800},
		},
		"reversed columns": {
			contents:         "price,km\n3650,240000\n",
			expectedMileages: []float64{240000},
			expectedPrices:   []float64{3650},
		},
		"malformed rows skipped": {
			contents:         "km,price\n240000,3650\n,4000\nnotanumber,4100\n150500,\n139800,3800\n",
			expectedMileages: []float64{240000, 139800},
			expectedPrices:   []float64{3650, 3800},
		},
		"short rows skipped": {
			contents:         "km,price\n240000,3650\n185530\n",
			expectedMileages: []float64{240000},
			expectedPrices:   []float64{3650},
		},
		"missing columns": {
			contents: "mileage,cost\n240000,3650\n",
			err:      ErrMissingColumns,
		},
		"all rows malformed": {
			contents: "km,price\n,\nx,y\n",
			err:      ErrNoTrainingData,
		},
		"empty file": {
			contents: "",
			err:      ErrNoTrainingData,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			d, err := Load(writeCSV(t, td.contents))
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expectedMileages, d.Mileages)
			assert.Equal(t, td.expectedPrices, d.Prices)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestCopy(t *testing.T) {
	d, err := New([]float64{1000, 2000}, []float64{500, 400})
	require.Nil(t, err)

	cp := d.Copy()
	cp.Mileages[0] = 0
	cp.Prices[0] = 0

	assert.Equal(t, 1000.0, d.Mileages[0])
	assert.Equal(t, 500.0, d.Prices[0])
}

func TestBounds(t *testing.T) {
	d, err := New([]float64{1000, 3000, 2000}, []float64{500, 300, 400})
	require.Nil(t, err)

	kmMin, kmMax := d.MileageBounds()
	assert.Equal(t, 1000.0, kmMin)
	assert.Equal(t, 3000.0, kmMax)

	priceMin, priceMax := d.PriceBounds()
	assert.Equal(t, 300.0, priceMin)
	assert.Equal(t, 500.0, priceMax)
}
