package models

import "errors"

// Custom errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownModel = errors.New("unknown pace model")

	ErrUnknownDistanceKey = errors.New("unknown distance key")
)
