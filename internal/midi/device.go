package midi

import (
	"fmt"
	"slices"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Access to the driver and the cached device list is guarded by staticLock.
var (
	staticLock sync.Mutex
	platform   Driver = newPlatformDriver()
	installed  []*OutputDevice
	listed     bool
)

// InstalledDevices returns the output devices installed on this system. The
// list is built on first use and reused for the lifetime of the process.
func InstalledDevices() []*OutputDevice {
	staticLock.Lock()
	defer staticLock.Unlock()

	if !listed {
		installed = makeDeviceList(platform)
		listed = true
	}

	return slices.Clone(installed)
}

// FindDevice returns the installed device with the given name. When several
// devices share a name the last one wins.
func FindDevice(name string) (*OutputDevice, bool) {
	var found *OutputDevice
	for _, d := range InstalledDevices() {
		if d.Name() == name {
			found = d
		}
	}

	return found, found != nil
}

// UseDriver replaces the platform driver and drops the cached device list.
// Devices obtained earlier keep talking to the driver they were created with.
func UseDriver(d Driver) {
	staticLock.Lock()
	defer staticLock.Unlock()

	platform = d
	installed = nil
	listed = false
}

func makeDeviceList(d Driver) []*OutputDevice {
	n := d.NumDevs()
	devices := make([]*OutputDevice, 0, n)

	for id := 0; id < n; id++ {
		// A device whose caps cannot be read stays listed with an empty name
		caps, _ := d.Caps(id)
		devices = append(devices, &OutputDevice{id: id, caps: caps, driver: d})
	}

	return devices
}

// OutputDevice is a MIDI output device installed on the system. Instances
// come from InstalledDevices.
type OutputDevice struct {
	// Set at construction, never modified
	id     int
	caps   Caps
	driver Driver

	mu   sync.Mutex
	port Port
}

// ID is the position of the device in the driver's device list.
func (d *OutputDevice) ID() int { return d.id }

// Name is the product name reported by the driver.
func (d *OutputDevice) Name() string { return d.caps.Name }

// Caps returns the full driver description of the device.
func (d *OutputDevice) Caps() Caps { return d.caps }

func (d *OutputDevice) String() string {
	return fmt.Sprintf("%d: %s", d.id, d.caps.Name)
}

// IsOpen reports whether the device is open.
func (d *OutputDevice) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.port != nil
}

// Open opens the device. It fails with ErrDeviceOpen if it is already open.
func (d *OutputDevice) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port != nil {
		return ErrDeviceOpen
	}

	port, err := d.driver.Open(d.id)
	if err != nil {
		return err
	}

	d.port = port
	return nil
}

// Close closes the device. It fails with ErrDeviceNotOpen if it is not open.
func (d *OutputDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port == nil {
		return ErrDeviceNotOpen
	}

	if err := d.port.Close(); err != nil {
		return err
	}

	d.port = nil
	return nil
}

// SendShortMsg sends a three byte message: status, data1, data2. Extra bytes
// are ignored.
func (d *OutputDevice) SendShortMsg(msg []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port == nil {
		return ErrDeviceNotOpen
	}

	if len(msg) < 3 {
		return ErrShortMessage
	}

	return d.port.ShortMsg(PackShortMessage(msg[0], msg[1], msg[2]))
}

// SendNoteOn sends a note-on message on channel (0-15).
func (d *OutputDevice) SendNoteOn(channel, note, velocity uint8) error {
	return d.SendShortMsg(gomidi.NoteOn(channel, note, velocity))
}

// SendNoteOff sends a note-off message on channel (0-15).
func (d *OutputDevice) SendNoteOff(channel, note uint8) error {
	return d.SendShortMsg(gomidi.NoteOff(channel, note))
}

// SilenceAllNotes sends All Notes Off on every channel.
func (d *OutputDevice) SilenceAllNotes() error {
	for ch := uint8(0); ch < 16; ch++ {
		if err := d.SendShortMsg(gomidi.ControlChange(ch, gomidi.AllNotesOff, gomidi.Off)); err != nil {
			return err
		}
	}

	return nil
}
