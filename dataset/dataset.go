// Package dataset loads and validates the (mileage, price) training pairs used
// to fit and evaluate a regression model.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrDatasetLenMismatch = errors.New("mileage feature has a different length than prices")
	ErrNegativeMileage    = errors.New("mileage must be non-negative")
	ErrMissingColumns     = errors.New("missing km or price column")
)

// Dataset represents the training observations storing a slice of mileages and
// the price observed at each mileage. Both must be of the same length.
type Dataset struct {
	Mileages []float64
	Prices   []float64
}

// New returns an instance of a Dataset given a mileage and price slice.
func New(mileages, prices []float64) (*Dataset, error) {
	if len(prices) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(mileages) != len(prices) {
		return nil, fmt.Errorf(
			"mileage feature has length of %d, but prices has a length of %d, %w",
			len(mileages), len(prices), ErrDatasetLenMismatch,
		)
	}
	for i := 0; i < len(mileages); i++ {
		if mileages[i] < 0 {
			return nil, fmt.Errorf("negative mileage at %d, %w", i, ErrNegativeMileage)
		}
	}

	km := make([]float64, len(mileages))
	price := make([]float64, len(prices))
	copy(km, mileages)
	copy(price, prices)
	d := &Dataset{
		Mileages: km,
		Prices:   price,
	}

	return d, nil
}

// Load reads the training pairs from a CSV file with a header containing a km
// and price column in any order. Rows with a missing or unparseable value in
// either column are skipped.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset file, %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse dataset file, %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoTrainingData
	}

	kmIdx, priceIdx := -1, -1
	for i, col := range records[0] {
		switch col {
		case "km":
			kmIdx = i
		case "price":
			priceIdx = i
		}
	}
	if kmIdx < 0 || priceIdx < 0 {
		return nil, ErrMissingColumns
	}

	var mileages, prices []float64
	for _, rec := range records[1:] {
		if kmIdx >= len(rec) || priceIdx >= len(rec) {
			continue
		}
		km, err := strconv.ParseFloat(rec[kmIdx], 64)
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(rec[priceIdx], 64)
		if err != nil {
			continue
		}
		mileages = append(mileages, km)
		prices = append(prices, price)
	}

	return New(mileages, prices)
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.Prices)
}

func (d *Dataset) Copy() *Dataset {
	km := make([]float64, len(d.Mileages))
	price := make([]float64, len(d.Prices))
	copy(km, d.Mileages)
	copy(price, d.Prices)
	return &Dataset{
		Mileages: km,
		Prices:   price,
	}
}

// MileageBounds returns the minimum and maximum mileage in the dataset.
func (d *Dataset) MileageBounds() (float64, float64) {
	return floats.Min(d.Mileages), floats.Max(d.Mileages)
}

// PriceBounds returns the minimum and maximum price in the dataset.
func (d *Dataset) PriceBounds() (float64, float64) {
	return floats.Min(d.Prices), floats.Max(d.Prices)
}
