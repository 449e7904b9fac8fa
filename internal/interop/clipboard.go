package interop

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"

	"github.com/djtokey/plugins/internal/interfaces"
	"github.com/djtokey/plugins/internal/logger"
)

const ClipboardName = "Clipboard"

// systemClipboard is the native clipboard in text format. Init runs once per
// process; its failure is sticky.
type systemClipboard struct {
	once    sync.Once
	initErr error
}

var nativeClipboard = &systemClipboard{}

// NewSystemClipboard returns the process-wide native clipboard backend.
func NewSystemClipboard() interfaces.ClipboardBackend {
	return nativeClipboard
}

func (c *systemClipboard) init() error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.initErr = fmt.Errorf("clipboard unavailable: %w", err)
		}
	})
	return c.initErr
}

func (c *systemClipboard) ReadText() (string, error) {
	if err := c.init(); err != nil {
		return "", err
	}

	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (c *systemClipboard) WriteText(text string) error {
	if err := c.init(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Clipboard is the object scripts see as Clipboard
type Clipboard struct {
	log     logger.LoggerInterface
	backend interfaces.ClipboardBackend
}

func NewClipboard(backend interfaces.ClipboardBackend, log logger.LoggerInterface) *Clipboard {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Clipboard{log: log, backend: backend}
}

// SetText replaces the clipboard contents with text.
func (c *Clipboard) SetText(text string) error {
	if err := c.backend.WriteText(text); err != nil {
		c.log.Warn("Clipboard write failed", slog.Any("error", err))
		return err
	}

	c.log.Trace("Clipboard set", slog.Int("length", len(text)))
	return nil
}

// GetText returns the clipboard text, or "" when it holds no text.
func (c *Clipboard) GetText() (string, error) {
	text, err := c.backend.ReadText()
	if err != nil {
		c.log.Warn("Clipboard read failed", slog.Any("error", err))
		return "", err
	}

	return text, nil
}
