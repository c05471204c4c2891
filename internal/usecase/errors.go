package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrJobNotFound         = errors.New("job not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileIncomplete   = errors.New("profile incomplete")
	ErrNoJobsFound         = errors.New("no jobs found")
	ErrSavedSearchNotFound = errors.New("saved search not found")
)
