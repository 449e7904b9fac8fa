// Package config loads djtokey settings from an optional JSON file and the
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/djtokey/plugins/internal/djcontrol"
	"github.com/djtokey/plugins/internal/logger"
)

const (
	// DefaultListenAddr is where the host bridge listens when nothing else is set
	DefaultListenAddr = "127.0.0.1:8765"

	EnvMIDIDevice = "DJTOKEY_MIDI_DEVICE"
	EnvAddr       = "DJTOKEY_ADDR"
	EnvConfig     = "DJTOKEY_CONFIG"

	fileName = "config.json"
)

// Config holds the settings shared by every command
type Config struct {
	MIDIDevice string `json:"midiDevice"`
	ListenAddr string `json:"listenAddr"`
	LogDir     string `json:"logDir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MIDIDevice: djcontrol.DeviceName,
		ListenAddr: DefaultListenAddr,
	}
}

// GetConfigPath returns the config file location. It checks the
// DJTOKEY_CONFIG environment variable first, falling back to
// %APPDATA%\djtokey\config.json.
func GetConfigPath() string {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath
	}

	dir := os.Getenv("APPDATA")
	if dir == "" {
		if d, err := os.UserConfigDir(); err == nil {
			dir = d
		}
	}

	return filepath.Join(dir, logger.AppName, fileName)
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error when path is the default location.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = GetConfigPath()
	}

	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fromFile Config
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	c.merge(fromFile)
	return nil
}

func (c *Config) applyEnv() {
	c.merge(Config{
		MIDIDevice: os.Getenv(EnvMIDIDevice),
		ListenAddr: os.Getenv(EnvAddr),
	})
}

// merge copies the non-empty fields of o into c
func (c *Config) merge(o Config) {
	if o.MIDIDevice != "" {
		c.MIDIDevice = o.MIDIDevice
	}
	if o.ListenAddr != "" {
		c.ListenAddr = o.ListenAddr
	}
	if o.LogDir != "" {
		c.LogDir = o.LogDir
	}
}

// Override applies command line values. Empty values leave the setting alone.
func (c *Config) Override(midiDevice, listenAddr string) {
	c.merge(Config{MIDIDevice: midiDevice, ListenAddr: listenAddr})
}
