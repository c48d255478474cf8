// Package regression fits a univariate linear model of car price as a function
// of mileage using batch gradient descent and exposes prediction, scoring, and
// plotting utilities on top of the stored parameters.
package regression

import (
	"errors"
	"fmt"

	"github.com/keonwoo98/ft-linear-regression/dataset"
	"github.com/keonwoo98/ft-linear-regression/metrics"
	"github.com/keonwoo98/ft-linear-regression/models"
	"github.com/keonwoo98/ft-linear-regression/stats"
)

var ErrUntrainedModel = errors.New("model has not been trained yet")

// Regressor fits a price-on-mileage linear model and can be used to generate
// price estimates
type Regressor struct {
	opt *Options

	theta0 float64
	theta1 float64

	normalization *NormalizationStats

	fitTrainingData *dataset.Dataset
	fitScores       *metrics.Scores
	residuals       []float64
	costHistory     []float64
	trained         bool
}

// New creates a new instance of a Regressor using the provided options. If no
// options are provided a default is used.
func New(opt *Options) (*Regressor, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.GradientDescent == nil {
		opt.GradientDescent = models.NewDefaultGradientDescentOptions()
	}

	// validate the descent configuration up front rather than at Fit time
	if _, err := models.NewGradientDescent(opt.GradientDescent); err != nil {
		return nil, fmt.Errorf("unable to initialize gradient descent, %w", err)
	}

	return &Regressor{opt: opt}, nil
}

// NewFromModel creates a new instance of a Regressor from a pre-existing
// model. This should be generated from a previous regressor call to Model()
// and can be used for immediate estimates skipping the training step. An
// untrained model is accepted and estimates with the (0, 0) parameters.
func NewFromModel(model Model) (*Regressor, error) {
	r := &Regressor{
		opt:           NewDefaultOptions(),
		theta0:        model.Theta0,
		theta1:        model.Theta1,
		normalization: model.Normalization,
		fitScores:     model.Scores,
		trained:       model.Trained,
	}
	return r, nil
}

// Fit uses the input mileage and price pairs and fits the regression model.
// The observations are normalized to zero mean and unit standard deviation,
// descent runs in normalized space, and the learned parameters are mapped back
// to original units before being stored.
func (r *Regressor) Fit(mileages, prices []float64) error {
	td, err := dataset.New(mileages, prices)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	r.fitTrainingData = td.Copy()

	normKm, kmStats := stats.Normalize(td.Mileages)
	normPrice, priceStats := stats.Normalize(td.Prices)

	gd, err := models.NewGradientDescent(r.opt.GradientDescent)
	if err != nil {
		return fmt.Errorf("unable to initialize gradient descent, %w", err)
	}
	if err := gd.Fit(normKm, normPrice); err != nil {
		return fmt.Errorf("unable to fit training data, %w", err)
	}

	r.theta0, r.theta1 = stats.DenormalizeTheta(gd.Intercept(), gd.Slope(), kmStats, priceStats)
	r.normalization = &NormalizationStats{
		Km:    kmStats,
		Price: priceStats,
	}
	r.costHistory = gd.CostHistory()
	r.trained = true

	predicted := make([]float64, td.Len())
	for i, km := range td.Mileages {
		predicted[i] = r.Predict(km)
	}

	r.residuals, err = metrics.Residuals(predicted, td.Prices)
	if err != nil {
		return fmt.Errorf("unable to compute training residuals, %w", err)
	}
	r.fitScores, err = metrics.NewScores(predicted, td.Prices)
	if err != nil {
		return fmt.Errorf("unable to score training fit, %w", err)
	}

	return nil
}

// Predict estimates the price at the given mileage using the stored
// real-world parameters. An untrained regressor estimates with (0, 0) which
// always yields 0; callers should branch on Trained() first.
func (r *Regressor) Predict(mileage float64) float64 {
	return models.Estimate(mileage, r.theta0, r.theta1)
}

// Trained reports whether this regressor holds parameters produced by a fit.
func (r *Regressor) Trained() bool {
	return r.trained
}

// Theta0 returns the intercept of the fitted line in original units.
func (r *Regressor) Theta0() float64 {
	return r.theta0
}

// Theta1 returns the slope of the fitted line in original units.
func (r *Regressor) Theta1() float64 {
	return r.theta1
}

// CostHistory returns the per-iteration cost trace of the last fit with one
// entry per completed gradient descent iteration.
func (r *Regressor) CostHistory() []float64 {
	c := make([]float64, len(r.costHistory))
	copy(c, r.costHistory)
	return c
}

// Residuals returns the difference between the training prices and the fitted
// line
func (r *Regressor) Residuals() []float64 {
	res := make([]float64, len(r.residuals))
	copy(res, r.residuals)
	return res
}

// Scores returns the fit scores computed against the training data after
// fitting. Returns an error if the regressor has not been trained.
func (r *Regressor) Scores() (*metrics.Scores, error) {
	if !r.trained {
		return nil, ErrUntrainedModel
	}
	return r.fitScores, nil
}

// ResidualSummary returns distribution statistics of the training residuals.
func (r *Regressor) ResidualSummary() stats.Summary {
	return stats.ResidualSummary(r.residuals)
}

// TrainingData returns the training data used to fit the current model
func (r *Regressor) TrainingData() *dataset.Dataset {
	if r.fitTrainingData == nil {
		return nil
	}
	return r.fitTrainingData.Copy()
}

// ModelEq returns a string representation of the fitted line represented as
// y ~ b + mx
func (r *Regressor) ModelEq() string {
	return fmt.Sprintf("Price ~ %.4f + %.8f*Mileage", r.theta0, r.theta1)
}

// Model generates a serializable representation of the learned parameters,
// the normalization statistics that produced them, and the fit scores. This
// can be used to initialize a new Regressor for immediate estimates skipping
// the training step.
func (r *Regressor) Model() Model {
	return Model{
		Theta0:        r.theta0,
		Theta1:        r.theta1,
		Trained:       r.trained,
		Normalization: r.normalization,
		Scores:        r.fitScores,
	}
}
