package interop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djtokey/plugins/internal/interop"
	"github.com/djtokey/plugins/internal/testutil"
	"github.com/djtokey/plugins/internal/windows"
)

func TestClipboard_SetAndGet(t *testing.T) {
	t.Parallel()

	backend := testutil.NewMockClipboard().WithText("before")
	cb := interop.NewClipboard(backend, nil)

	text, err := cb.GetText()
	require.NoError(t, err)
	assert.Equal(t, "before", text)

	require.NoError(t, cb.SetText("after"))
	assert.Equal(t, 1, backend.Writes)

	text, err = cb.GetText()
	require.NoError(t, err)
	assert.Equal(t, "after", text)
}

func TestClipboard_BackendErrors(t *testing.T) {
	t.Parallel()

	readErr := errors.New("clipboard locked")
	writeErr := errors.New("clipboard busy")
	cb := interop.NewClipboard(
		testutil.NewMockClipboard().WithReadError(readErr).WithWriteError(writeErr),
		nil,
	)

	_, err := cb.GetText()
	assert.ErrorIs(t, err, readErr)
	assert.ErrorIs(t, cb.SetText("x"), writeErr)
}

func TestProcess_Start(t *testing.T) {
	t.Parallel()

	launcher := testutil.NewMockLauncher()
	p := interop.NewProcess(launcher)

	require.NoError(t, p.Start(`C:\Music\set.m3u`))
	assert.Equal(t, []string{`C:\Music\set.m3u`}, launcher.Started)
}

func TestProcess_StartEmptyPath(t *testing.T) {
	t.Parallel()

	launcher := testutil.NewMockLauncher()
	p := interop.NewProcess(launcher)

	assert.ErrorIs(t, p.Start(""), interop.ErrEmptyPath)
	assert.ErrorIs(t, p.StartVerb("edit", ""), interop.ErrEmptyPath)
	assert.Empty(t, launcher.Started)
}

func TestProcess_EmptyPathMatchesLauncher(t *testing.T) {
	t.Parallel()

	err := windows.NewClient(nil).Open("")
	assert.ErrorIs(t, err, interop.ErrEmptyPath, "Launcher and Process reject empty paths alike")
	assert.ErrorIs(t, interop.File{}.WriteAllText("", "x"), windows.ErrEmptyPath)
}

func TestProcess_StartError(t *testing.T) {
	t.Parallel()

	startErr := errors.New("file not found")
	p := interop.NewProcess(testutil.NewMockLauncher().WithError(startErr))

	assert.ErrorIs(t, p.Start("missing.exe"), startErr)
}

func TestProcess_StartVerbWithoutVerbSupport(t *testing.T) {
	t.Parallel()

	launcher := testutil.NewMockLauncher()
	p := interop.NewProcess(launcher)

	require.NoError(t, p.StartVerb("open", "a.txt"))
	assert.ErrorIs(t, p.StartVerb("print", "a.txt"), interop.ErrUnsupportedVerb)
	assert.Equal(t, []string{"a.txt"}, launcher.Started)
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	env := interop.NewEnvironment(testutil.NewMockEnvironment().
		WithVar("DECK", "A").
		WithVar("EMPTY", ""))

	assert.Equal(t, "A", env.GetVariable("DECK"))
	assert.Empty(t, env.GetVariable("MISSING"))

	v, ok := env.LookupVariable("EMPTY")
	assert.True(t, ok, "Set but empty variables are reported as set")
	assert.Empty(t, v)

	_, ok = env.LookupVariable("MISSING")
	assert.False(t, ok)
}

func TestOSEnvironment(t *testing.T) {
	t.Setenv("DJTOKEY_TEST_VAR", "cue")

	env := interop.NewEnvironment(interop.NewOSEnvironment())
	assert.Equal(t, "cue", env.GetVariable("DJTOKEY_TEST_VAR"))
}

func TestWindows_GetActiveWindowTitle(t *testing.T) {
	t.Parallel()

	w := interop.NewWindows(testutil.NewMockWindowReader().WithTitle("VirtualDJ"))
	assert.Equal(t, "VirtualDJ", w.GetActiveWindowTitle())

	assert.Empty(t, interop.NewWindows(testutil.NewMockWindowReader()).GetActiveWindowTitle())
}
