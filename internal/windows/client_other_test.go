//go:build !windows

package windows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djtokey/plugins/internal/testutil"
	"github.com/djtokey/plugins/internal/windows"
)

func TestClient_ActiveWindowTitleUnavailable(t *testing.T) {
	t.Parallel()

	c := windows.NewClient(nil)
	assert.Empty(t, c.ActiveWindowTitle())
}

func TestClient_OtherVerbsUnsupported(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "notes.txt", "cue")

	err := windows.NewClient(nil).OpenWith("print", path)
	assert.ErrorIs(t, err, windows.ErrUnsupportedPlatform)
}

func TestClient_OpenMissingProgram(t *testing.T) {
	t.Parallel()

	err := windows.NewClient(nil).Open("/nonexistent/djtokey-test-program")
	assert.Error(t, err)
}
