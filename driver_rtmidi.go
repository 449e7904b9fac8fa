//go:build !windows && !nomidi

package main

// Registers the rtmidi driver used for MIDI output outside Windows
import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
