package markup

import "errors"

var (
	// ErrUnknownStyle is returned when a style kind name is not recognised.
	ErrUnknownStyle = errors.New("markup: unknown style kind")
	// ErrUnknownLineKind is returned when a line kind name is not recognised.
	ErrUnknownLineKind = errors.New("markup: unknown line kind")
	// ErrInvalidConfig is returned by [Config.Validate] and [LoadConfig].
	ErrInvalidConfig = errors.New("markup: invalid config")
)
