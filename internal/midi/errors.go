package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceOpen is returned when opening a device that is already open.
	ErrDeviceOpen = errors.New("device open")

	// ErrDeviceNotOpen is returned when using or closing a device that is not open.
	ErrDeviceNotOpen = errors.New("device not open")

	// ErrShortMessage is returned when a short message has fewer than three bytes.
	ErrShortMessage = errors.New("short message needs status and two data bytes")

	// ErrNoSuchDevice is returned by a driver for an out of range device id.
	ErrNoSuchDevice = errors.New("no such MIDI output device")
)

// noErrorDetails is the text used when the driver cannot describe a failure.
const noErrorDetails = "no error details"

// DeviceError is a failure reported by the MIDI driver.
type DeviceError struct {
	Code uint32 // MMRESULT on Windows, zero elsewhere
	Text string
}

func (e *DeviceError) Error() string {
	if e.Code == 0 {
		return "midi: " + e.Text
	}

	return fmt.Sprintf("midi: %s (code %d)", e.Text, e.Code)
}
