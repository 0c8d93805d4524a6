package textrank

import "errors"

var (
	// ErrInvalidInput is returned when the sentence sequence is empty or malformed.
	ErrInvalidInput = errors.New("textrank: invalid input")
	// ErrInvalidArgument is returned for out-of-range options or an extract
	// amount larger than the number of sentences.
	ErrInvalidArgument = errors.New("textrank: invalid argument")
)
