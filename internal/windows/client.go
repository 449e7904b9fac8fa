// Package windows wraps the handful of user32 and shell32 calls the interop
// plugins forward to.
package windows

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/djtokey/plugins/internal/logger"
)

var (
	// ErrEmptyPath is returned by Open for an empty path.
	ErrEmptyPath = errors.New("path is empty")

	ErrUnsupportedPlatform = errors.New("not supported on this platform")
)

// VerbOpen is the default shell verb.
const VerbOpen = "open"

// Client provides the window and shell operations used by the plugins
type Client struct {
	log logger.LoggerInterface
}

// NewClient creates a new Windows API client
func NewClient(log logger.LoggerInterface) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Client{log: log}
}

// ActiveWindowTitle returns the foreground window's title, or "" when there
// is none.
func (c *Client) ActiveWindowTitle() string {
	title, ok := ActiveWindowTitle()
	if !ok {
		c.log.Trace("No active window title")
		return ""
	}

	return title
}

// Open launches path through the shell: documents open in their associated
// application, programs are started.
func (c *Client) Open(path string) error {
	return c.OpenWith(VerbOpen, path)
}

// OpenWith runs a shell verb such as "edit" or "print" on path. Outside
// Windows only "open" is available.
func (c *Client) OpenWith(verb, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	c.log.Debug("Starting process", slog.String("verb", verb), slog.String("path", path))
	if err := shellOpen(verb, path); err != nil {
		c.log.Error("Process start failed",
			slog.String("verb", verb),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", verb, path, err)
	}

	return nil
}
