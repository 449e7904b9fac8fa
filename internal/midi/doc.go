// Package midi enumerates MIDI output devices installed on the system and
// sends short messages to them.
//
// The device list is read from the platform driver once per process and
// cached. Each device must be opened before messages can be sent and closed
// when done; all methods on OutputDevice are safe for concurrent use.
//
// On Windows the winmm multimedia API is used directly. Elsewhere output
// ports come from gitlab.com/gomidi/midi/v2 and whichever gomidi driver the
// binary registers.
package midi
