package midi

// Caps describes an output device as reported by the driver.
type Caps struct {
	Name           string
	ManufacturerID uint16
	ProductID      uint16
	DriverVersion  uint32
	Technology     uint16
	Voices         uint16
	Notes          uint16
	ChannelMask    uint16
	Support        uint32
}

// Driver is a platform MIDI output backend.
type Driver interface {
	// NumDevs returns the number of output devices.
	NumDevs() int
	// Caps describes device id.
	Caps(id int) (Caps, error)
	// Open opens device id for output.
	Open(id int) (Port, error)
}

// Port is an open output device.
type Port interface {
	// ShortMsg sends a packed short message.
	ShortMsg(msg uint32) error
	Close() error
}
