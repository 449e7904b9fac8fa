// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djtokey/plugins/internal/midi"
)

// UseMIDIDriver installs d as the MIDI driver for the duration of the test.
// Tests using it must not run in parallel.
func UseMIDIDriver(t *testing.T, d midi.Driver) {
	t.Helper()

	midi.UseDriver(d)
	t.Cleanup(func() {
		midi.UseDriver(NewMockMIDIDriver())
	})
}

// WriteTestFile creates a file with the given content under dir
func WriteTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return path
}
