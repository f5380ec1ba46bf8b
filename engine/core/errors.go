package core

import (
	"errors"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownLogLevel = errors.New("unknown log level")
)
