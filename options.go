package regression

import (
	"github.com/keonwoo98/ft-linear-regression/models"
)

// Options configures the training run of a Regressor.
type Options struct {
	GradientDescent *models.GradientDescentOptions
}

// NewDefaultOptions returns the default training configuration with a learning
// rate of 0.1 over 1000 iterations.
func NewDefaultOptions() *Options {
	return &Options{
		GradientDescent: models.NewDefaultGradientDescentOptions(),
	}
}
