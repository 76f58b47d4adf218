package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrExpired           = errors.New("pending job has expired")
	ErrInvalidPath       = errors.New("path has no file extension")
	ErrUnknownAction     = errors.New("unknown callback action")
	ErrUnsupportedSource = errors.New("unsupported file source")
)
