package cli

import "errors"

var (
	// ErrInvalidCategory is returned when a category matches no configured name or alias.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrDescriptionRequired is returned when a command needs a description and got none.
	ErrDescriptionRequired = errors.New("description is required")
	// ErrInvalidTime is returned for a time argument that looks like HH:MM but is not a valid clock time.
	ErrInvalidTime = errors.New("invalid time")
)
