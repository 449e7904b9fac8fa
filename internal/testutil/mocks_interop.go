package testutil

import (
	"sync"
)

// MockClipboard implements interfaces.ClipboardBackend in memory
type MockClipboard struct {
	mu       sync.Mutex
	Text     string
	ReadErr  error
	WriteErr error
	Writes   int
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) WithText(text string) *MockClipboard {
	m.Text = text
	return m
}

func (m *MockClipboard) WithReadError(err error) *MockClipboard {
	m.ReadErr = err
	return m
}

func (m *MockClipboard) WithWriteError(err error) *MockClipboard {
	m.WriteErr = err
	return m
}

func (m *MockClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Text, nil
}

func (m *MockClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	m.Writes++
	return nil
}

// MockLauncher implements interfaces.ProcessLauncher and records launches
type MockLauncher struct {
	mu      sync.Mutex
	Err     error
	Started []string
}

func NewMockLauncher() *MockLauncher {
	return &MockLauncher{Started: []string{}}
}

func (m *MockLauncher) WithError(err error) *MockLauncher {
	m.Err = err
	return m
}

func (m *MockLauncher) Open(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Started = append(m.Started, path)
	return nil
}

// MockWindowReader implements interfaces.WindowReader
type MockWindowReader struct {
	Title string
}

func NewMockWindowReader() *MockWindowReader {
	return &MockWindowReader{}
}

func (m *MockWindowReader) WithTitle(title string) *MockWindowReader {
	m.Title = title
	return m
}

func (m *MockWindowReader) ActiveWindowTitle() string {
	return m.Title
}

// MockEnvironment implements interfaces.EnvironmentReader over a map
type MockEnvironment struct {
	Vars map[string]string
}

func NewMockEnvironment() *MockEnvironment {
	return &MockEnvironment{Vars: map[string]string{}}
}

func (m *MockEnvironment) WithVar(name, value string) *MockEnvironment {
	m.Vars[name] = value
	return m
}

func (m *MockEnvironment) LookupEnv(name string) (string, bool) {
	v, ok := m.Vars[name]
	return v, ok
}
