package interop

import (
	"github.com/djtokey/plugins/internal/interfaces"
)

const WindowsName = "Windows"

// Windows is the object scripts see as Windows
type Windows struct {
	reader interfaces.WindowReader
}

func NewWindows(reader interfaces.WindowReader) *Windows {
	return &Windows{reader: reader}
}

// GetActiveWindowTitle returns the title of the foreground window. It is
// empty when there is no foreground window, it has no title, or the
// platform has no notion of one.
func (w *Windows) GetActiveWindowTitle() string {
	return w.reader.ActiveWindowTitle()
}
