package repository

import "errors"

var (
	ErrUnknownEntity = errors.New("unknown entity type")
	ErrNotList       = errors.New("entity is not a list domain")
	ErrNotSingular   = errors.New("entity is not a singular record")
)
