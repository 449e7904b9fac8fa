//go:build !windows

package midi

import (
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// gomidiDriver serves output ports from whichever gomidi driver the binary
// registered. Without one no devices are listed. NumDevs snapshots the port
// list; Caps and Open index that snapshot so ids keep naming the same port
// when ports are plugged in later.
type gomidiDriver struct {
	list func() []drivers.Out

	mu    sync.Mutex
	ports []drivers.Out
}

func newPlatformDriver() Driver {
	return newGomidiDriver(func() []drivers.Out { return gomidi.GetOutPorts() })
}

func newGomidiDriver(list func() []drivers.Out) *gomidiDriver {
	return &gomidiDriver{list: list}
}

func (d *gomidiDriver) NumDevs() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ports = d.list()
	return len(d.ports)
}

func (d *gomidiDriver) Caps(id int) (Caps, error) {
	out, err := d.outPort(id)
	if err != nil {
		return Caps{}, err
	}

	return Caps{Name: out.String()}, nil
}

func (d *gomidiDriver) Open(id int) (Port, error) {
	out, err := d.outPort(id)
	if err != nil {
		return nil, err
	}

	if err := out.Open(); err != nil {
		return nil, &DeviceError{Text: err.Error()}
	}

	return &gomidiPort{out: out}, nil
}

func (d *gomidiDriver) outPort(id int) (drivers.Out, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id < 0 || id >= len(d.ports) {
		return nil, ErrNoSuchDevice
	}

	return d.ports[id], nil
}

type gomidiPort struct {
	out drivers.Out
}

func (p *gomidiPort) ShortMsg(msg uint32) error {
	status, data1, data2 := UnpackShortMessage(msg)
	data := []byte{status, data1, data2}[:shortMessageLen(status)]

	if err := p.out.Send(data); err != nil {
		return &DeviceError{Text: err.Error()}
	}

	return nil
}

func (p *gomidiPort) Close() error {
	if err := p.out.Close(); err != nil {
		return &DeviceError{Text: err.Error()}
	}

	return nil
}
