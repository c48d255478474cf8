package main

import (
	"flag"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	regression "github.com/keonwoo98/ft-linear-regression"
	"github.com/keonwoo98/ft-linear-regression/dataset"
)

func main() {
	dataPath := flag.String("data", "data/data.csv", "path to the training data csv with km and price columns")
	modelPath := flag.String("model", "models/theta.json", "path to the trained model record")
	costPath := flag.String("cost-history", "models/cost_history.json", "path to the persisted cost trace")
	outPath := flag.String("out", "regression.html", "path to write the rendered html page")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	td, err := dataset.Load(*dataPath)
	if err != nil {
		log.Error().Err(err).Str("path", *dataPath).Msg("no data available")
		os.Exit(1)
	}

	model := regression.LoadModel(*modelPath)
	if !model.Trained {
		log.Warn().Msg("model not trained, plotting data repartition with a flat line at 0")
	}

	page := components.NewPage()
	page.AddCharts(regression.ScatterRegression(td, model.Theta0, model.Theta1))

	if costHistory := regression.LoadCostHistory(*costPath); len(costHistory) > 0 {
		page.AddCharts(regression.LineCostHistory(costHistory))
	} else {
		log.Warn().Str("path", *costPath).Msg("no cost history found, skipping convergence chart")
	}

	file, err := os.Create(*outPath)
	if err != nil {
		log.Error().Err(err).Str("path", *outPath).Msg("unable to create output file")
		os.Exit(1)
	}
	if err := page.Render(io.MultiWriter(file)); err != nil {
		log.Error().Err(err).Msg("unable to render page")
		os.Exit(1)
	}
	log.Info().Str("path", *outPath).Msg("visualization rendered")
}
