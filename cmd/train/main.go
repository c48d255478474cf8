package main

import (
	"flag"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	regression "github.com/keonwoo98/ft-linear-regression"
	"github.com/keonwoo98/ft-linear-regression/dataset"
	"github.com/keonwoo98/ft-linear-regression/models"
)

const progressInterval = 100

func main() {
	dataPath := flag.String("data", "data/data.csv", "path to the training data csv with km and price columns")
	modelPath := flag.String("model", "models/theta.json", "path to write the trained model record")
	costPath := flag.String("cost-history", "models/cost_history.json", "path to write the per-iteration cost trace")
	learningRate := flag.Float64("learning-rate", 0.1, "gradient descent learning rate")
	iterations := flag.Int("iterations", 1000, "gradient descent iteration budget")
	profileCPU := flag.Bool("profile", false, "write a cpu profile of the training run")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	td, err := dataset.Load(*dataPath)
	if err != nil {
		log.Error().Err(err).Str("path", *dataPath).Msg("no data available")
		os.Exit(1)
	}
	kmMin, kmMax := td.MileageBounds()
	priceMin, priceMax := td.PriceBounds()
	log.Info().
		Int("samples", td.Len()).
		Floats64("mileage_range", []float64{kmMin, kmMax}).
		Floats64("price_range", []float64{priceMin, priceMax}).
		Msg("loaded training data")

	opt := &regression.Options{
		GradientDescent: &models.GradientDescentOptions{
			LearningRate: *learningRate,
			Iterations:   *iterations,
		},
	}
	r, err := regression.New(opt)
	if err != nil {
		log.Error().Err(err).Msg("invalid training configuration")
		os.Exit(1)
	}

	log.Info().
		Float64("learning_rate", *learningRate).
		Int("iterations", *iterations).
		Msg("starting gradient descent")

	if err := r.Fit(td.Mileages, td.Prices); err != nil {
		log.Error().Err(err).Msg("training failed")
		os.Exit(1)
	}

	costHistory := r.CostHistory()
	for i := 0; i < len(costHistory); i += progressInterval {
		log.Info().Int("iteration", i).Float64("cost", costHistory[i]).Msg("descent progress")
	}
	log.Info().
		Float64("theta0", r.Theta0()).
		Float64("theta1", r.Theta1()).
		Str("model_eq", r.ModelEq()).
		Msg("training completed")

	if scores, err := r.Scores(); err == nil {
		log.Info().
			Float64("r_squared", scores.R2).
			Float64("mae", scores.MAE).
			Float64("rmse", scores.RMSE).
			Float64("mape", scores.MAPE).
			Msg("fit scores")
	}

	// a failed write leaves the in-memory fit usable; report and keep going
	if err := regression.SaveModel(*modelPath, r.Model()); err != nil {
		log.Error().Err(err).Str("path", *modelPath).Msg("unable to save model")
	} else {
		log.Info().Str("path", *modelPath).Msg("model saved")
	}
	if err := regression.SaveCostHistory(*costPath, costHistory); err != nil {
		log.Error().Err(err).Str("path", *costPath).Msg("unable to save cost history")
	} else {
		log.Info().Str("path", *costPath).Msg("cost history saved")
	}

	for _, km := range []float64{50000, 100000, 150000, 200000} {
		log.Info().Float64("mileage", km).Float64("estimated_price", r.Predict(km)).Msg("example prediction")
	}
}
