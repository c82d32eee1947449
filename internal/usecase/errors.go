package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownSport = errors.New("unknown sport")
)
