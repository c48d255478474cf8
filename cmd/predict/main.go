package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	regression "github.com/keonwoo98/ft-linear-regression"
)

const highPriceThreshold = 20000

func main() {
	modelPath := flag.String("model", "models/theta.json", "path to the trained model record")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	model := regression.LoadModel(*modelPath)
	r, err := regression.NewFromModel(model)
	if err != nil {
		log.Error().Err(err).Msg("unable to load model")
		os.Exit(1)
	}

	if !r.Trained() {
		log.Warn().Msg("model not trained yet, estimating with theta0=0 theta1=0; run the train command first")
	} else {
		log.Info().
			Float64("theta0", r.Theta0()).
			Float64("theta1", r.Theta1()).
			Msg("model loaded")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter mileage (km), or q to quit: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			break
		}
		if input == "" {
			fmt.Println("please enter a value")
			continue
		}

		mileage, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("please enter a valid number")
			continue
		}
		if mileage < 0 {
			fmt.Println("mileage cannot be negative")
			continue
		}

		estimated := r.Predict(mileage)
		fmt.Printf("Mileage: %.0f km => Estimated Price: %.2f\n", mileage, estimated)
		if estimated < 0 {
			fmt.Println("warning: negative price predicted, the model may not be reliable for this mileage range")
		} else if estimated > highPriceThreshold {
			fmt.Println("warning: very high price predicted, this mileage may be outside the training data range")
		}
	}
}
