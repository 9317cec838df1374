package domain

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrViewNotFound     = errors.New("view not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrInvalidMediaKind = errors.New("invalid media kind")
)
