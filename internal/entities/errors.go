package entities

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already tracked")
	ErrValidation     = errors.New("invalid input")
	ErrTransientStore = errors.New("store unavailable")
)
