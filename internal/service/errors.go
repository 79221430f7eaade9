package service

import "errors"

var (
	// ErrSubmissionInFlight rejects a submit while one is outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrAlreadySubmitted rejects a submit after one has succeeded.
	ErrAlreadySubmitted = errors.New("questionnaire already submitted")
)
