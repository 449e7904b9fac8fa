package interop

import (
	"errors"

	"github.com/djtokey/plugins/internal/windows"
)

var (
	ErrUnsupportedVerb = errors.New("shell verb not supported")

	// ErrEmptyPath is shared with the shell launcher so either layer's
	// rejection matches.
	ErrEmptyPath = windows.ErrEmptyPath
)
