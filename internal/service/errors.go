package service

import "errors"

// Errors returned by services. Controllers map them to HTTP statuses with
// errors.Is; anything else is treated as an internal failure.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")

	// ErrNoMoreQuestions means the quiz candidate set is empty.
	ErrNoMoreQuestions = errors.New("no more questions available")
)
