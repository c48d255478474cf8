package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	regression "github.com/keonwoo98/ft-linear-regression"
	"github.com/keonwoo98/ft-linear-regression/dataset"
	"github.com/keonwoo98/ft-linear-regression/metrics"
	"github.com/keonwoo98/ft-linear-regression/stats"
)

func main() {
	dataPath := flag.String("data", "data/data.csv", "path to the training data csv with km and price columns")
	modelPath := flag.String("model", "models/theta.json", "path to the trained model record")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	td, err := dataset.Load(*dataPath)
	if err != nil {
		log.Error().Err(err).Str("path", *dataPath).Msg("no data available")
		os.Exit(1)
	}

	model := regression.LoadModel(*modelPath)
	if !model.Trained {
		log.Error().Msg("model not trained, run the train command first")
		os.Exit(1)
	}
	r, err := regression.NewFromModel(model)
	if err != nil {
		log.Error().Err(err).Msg("unable to load model")
		os.Exit(1)
	}

	predicted := make([]float64, td.Len())
	for i, km := range td.Mileages {
		predicted[i] = r.Predict(km)
	}

	scores, err := metrics.NewScores(predicted, td.Prices)
	if err != nil {
		log.Error().Err(err).Msg("unable to score model")
		os.Exit(1)
	}
	residuals, err := metrics.Residuals(predicted, td.Prices)
	if err != nil {
		log.Error().Err(err).Msg("unable to compute residuals")
		os.Exit(1)
	}
	summary := stats.ResidualSummary(residuals)
	accuracy := 100 - scores.MAPE

	fmt.Println("Model precision")
	fmt.Printf("  R²:   %.4f (%.2f%% of price variance explained by mileage) -> %s\n",
		scores.R2, scores.R2*100, metrics.FitQuality(scores.R2))
	fmt.Printf("  MAE:  %.2f\n", scores.MAE)
	fmt.Printf("  RMSE: %.2f\n", scores.RMSE)
	fmt.Printf("  MAPE: %.2f%% (average accuracy %.2f%%) -> %s\n",
		scores.MAPE, accuracy, metrics.AccuracyGrade(accuracy))
	fmt.Printf("  Residuals: mean %.2f, std %.2f, min %.2f, max %.2f, range %.2f\n",
		summary.Mean, summary.Std, summary.Min, summary.Max, summary.Range)
}
