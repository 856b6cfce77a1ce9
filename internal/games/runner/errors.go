package runner

import "errors"

var (
	// ErrNoSurface is returned when the host offers no drawable area.
	ErrNoSurface = errors.New("runner: no drawable surface")

	// ErrUnknownCharacter is returned for ids and names outside the roster.
	ErrUnknownCharacter = errors.New("runner: unknown character")
)
