package animated

import "errors"

var (
	ErrInvalidRange  = errors.New("invalid interpolation range")
	ErrInvalidConfig = errors.New("invalid animation config")
)
