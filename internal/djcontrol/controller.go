// Package djcontrol drives the button LEDs of a Hercules DJControl MP3 LE
// console over MIDI.
package djcontrol

import (
	"errors"
	"log/slog"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/djtokey/plugins/internal/logger"
	"github.com/djtokey/plugins/internal/midi"
)

// DeviceName is the MIDI output name the console registers under.
const DeviceName = "DJControl MP3 LE MIDI"

const (
	// blinkOffset added to a button's note selects its blinking LED
	blinkOffset = 48

	// highestNote is the last LED note cleared by TurnAllOff
	highestNote = 94

	velocityOn  = 127
	velocityOff = 0
)

// ErrNoDevice is returned by Open when the console is not connected.
var ErrNoDevice = errors.New("no DjControl MP3 LE device available")

// Options configures Open.
type Options struct {
	DeviceName string
	Logger     logger.LoggerInterface
}

// Option modifies Options.
type Option func(*Options)

// WithDeviceName matches a different MIDI output name.
func WithDeviceName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.DeviceName = name
		}
	}
}

func WithLogger(l logger.LoggerInterface) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func applyOptions(opts []Option) Options {
	o := Options{
		DeviceName: DeviceName,
		Logger:     logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Controller is an open connection to the console.
type Controller struct {
	log    logger.LoggerInterface
	device *midi.OutputDevice

	closeOnce sync.Once
	closeErr  error
}

// Open finds the console among the installed MIDI outputs and opens it.
func Open(opts ...Option) (*Controller, error) {
	o := applyOptions(opts)

	device, ok := midi.FindDevice(o.DeviceName)
	if !ok {
		o.Logger.Debug("MIDI output not found", slog.String("device", o.DeviceName))
		return nil, ErrNoDevice
	}

	if err := device.Open(); err != nil {
		return nil, err
	}

	o.Logger.Info("DJ console connected",
		slog.String("device", device.Name()),
		slog.Int("id", device.ID()),
	)

	return &Controller{log: o.Logger, device: device}, nil
}

// TurnAllOff switches off every LED, blinking ones included.
func (c *Controller) TurnAllOff() error {
	for note := byte(1); note <= highestNote; note++ {
		if err := c.turnOff(note); err != nil {
			return err
		}
	}

	return nil
}

// TurnOn lights the button's LED.
func (c *Controller) TurnOn(b Button) error {
	return c.turnOn(byte(b))
}

// TurnOnBlink makes the button's LED blink.
func (c *Controller) TurnOnBlink(b Button) error {
	return c.turnOn(byte(b) + blinkOffset)
}

// TurnOff switches the button's steady LED off.
func (c *Controller) TurnOff(b Button) error {
	return c.turnOff(byte(b))
}

// Close releases the MIDI device. Calling it more than once is harmless.
func (c *Controller) Close() error {
	if c == nil {
		return nil
	}

	c.closeOnce.Do(func() {
		c.closeErr = c.device.Close()
		c.log.Debug("DJ console closed", slog.String("device", c.device.Name()))
	})

	return c.closeErr
}

func (c *Controller) turnOn(note byte) error {
	c.log.Trace("LED on", slog.Int("note", int(note)))
	return c.device.SendShortMsg(gomidi.NoteOn(0, note, velocityOn))
}

// Off is sent as note-on with zero velocity, which is what the console expects.
func (c *Controller) turnOff(note byte) error {
	c.log.Trace("LED off", slog.Int("note", int(note)))
	return c.device.SendShortMsg(gomidi.NoteOn(0, note, velocityOff))
}
