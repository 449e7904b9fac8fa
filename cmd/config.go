// Package cmd implements the command-line interface for djtokey.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/config"
)

// Config holds all command line configuration
type Config struct {
	Verbose    bool
	ShowLogs   bool
	ConfigPath string
	MIDIDevice string
	Addr       string
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	return &Config{
		Verbose:    getBoolFlag(cmd, "verbose"),
		ShowLogs:   getBoolFlag(cmd, "logs"),
		ConfigPath: getStringFlag(cmd, "config"),
		MIDIDevice: getStringFlag(cmd, "midi-device"),
		Addr:       getStringFlag(cmd, "addr"),
	}
}

// Settings loads the config file and environment, then applies the flags
// on top.
func (c *Config) Settings() (config.Config, error) {
	s, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	s.Override(c.MIDIDevice, c.Addr)
	return s, nil
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

// getStringFlag is getBoolFlag for string flags. Unknown flags read as "".
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}
