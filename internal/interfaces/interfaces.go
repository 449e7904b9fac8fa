// Package interfaces defines the OS seams the interop objects forward to, so
// they can be replaced in tests.
package interfaces

// ClipboardBackend reads and writes the system clipboard as text
type ClipboardBackend interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// ProcessLauncher starts documents and programs
type ProcessLauncher interface {
	Open(path string) error
}

// WindowReader reads properties of the desktop's windows
type WindowReader interface {
	ActiveWindowTitle() string
}

// EnvironmentReader reads process environment variables
type EnvironmentReader interface {
	LookupEnv(name string) (string, bool)
}
