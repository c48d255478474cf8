package models

import (
	"errors"
)

var (
	ErrNoOptions         = errors.New("no initialized model options")
	ErrNoTrainingData    = errors.New("no training data")
	ErrTargetLenMismatch = errors.New("target length does not match training length")
	ErrBadLearningRate   = errors.New("learning rate must be greater than zero")
	ErrBadIterations     = errors.New("iterations must be greater than zero")
)
