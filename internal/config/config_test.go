package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djtokey/plugins/internal/config"
	"github.com/djtokey/plugins/internal/djcontrol"
	"github.com/djtokey/plugins/internal/testutil"
)

// Cannot use t.Parallel() - these tests modify environment variables

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(config.EnvMIDIDevice, "")
	t.Setenv(config.EnvAddr, "")
	t.Setenv(config.EnvConfig, "")
}

func TestGetConfigPath_EnvVarOverride(t *testing.T) {
	clearEnv(t)

	custom := filepath.Join("D:", "djtokey", "custom.json")
	t.Setenv(config.EnvConfig, custom)

	assert.Equal(t, custom, config.GetConfigPath())
}

func TestGetConfigPath_AppData(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	t.Setenv("APPDATA", dir)

	assert.Equal(t, filepath.Join(dir, "djtokey", "config.json"), config.GetConfigPath())
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("APPDATA", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, djcontrol.DeviceName, cfg.MIDIDevice)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := testutil.WriteTestFile(t, t.TempDir(), "config.json",
		`{"midiDevice": "Other Console", "listenAddr": ":9000", "logDir": "C:\\logs"}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Other Console", cfg.MIDIDevice)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, `C:\logs`, cfg.LogDir)

	t.Setenv(config.EnvAddr, ":9100")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.ListenAddr, "Environment overrides the file")
	assert.Equal(t, "Other Console", cfg.MIDIDevice)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := testutil.WriteTestFile(t, t.TempDir(), "config.json", `{"logDir": "logs"}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, djcontrol.DeviceName, cfg.MIDIDevice)
	assert.Equal(t, config.DefaultListenAddr, cfg.ListenAddr)
}

func TestLoad_InvalidJSON(t *testing.T) {
	clearEnv(t)

	path := testutil.WriteTestFile(t, t.TempDir(), "config.json", `{"midiDevice":`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestOverride(t *testing.T) {
	cfg := config.Default()

	cfg.Override("", ":1234")
	assert.Equal(t, djcontrol.DeviceName, cfg.MIDIDevice)
	assert.Equal(t, ":1234", cfg.ListenAddr)

	cfg.Override("Pad", "")
	assert.Equal(t, "Pad", cfg.MIDIDevice)
	assert.Equal(t, ":1234", cfg.ListenAddr)
}
