package assets

import (
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedFile     = errors.New("malformed mesh file")
	ErrWatcherClosed     = errors.New("watcher already closed")
)
