package testutil

import (
	"sync"

	"github.com/djtokey/plugins/internal/midi"
)

// MockMIDIDriver implements midi.Driver and records every message sent
type MockMIDIDriver struct {
	mu       sync.Mutex
	Devices  []midi.Caps
	CapsErr  map[int]error
	OpenErr  error
	SendErr  error
	CloseErr error
	Opened   []int
	Closed   []int
	Sent     []SentMessage
}

// SentMessage is one packed short message and the device it went to
type SentMessage struct {
	Device int
	Msg    uint32
}

func NewMockMIDIDriver() *MockMIDIDriver {
	return &MockMIDIDriver{
		Devices: []midi.Caps{},
		CapsErr: map[int]error{},
	}
}

// WithDevice appends an installed device with the given name
func (m *MockMIDIDriver) WithDevice(name string) *MockMIDIDriver {
	m.Devices = append(m.Devices, midi.Caps{Name: name})
	return m
}

func (m *MockMIDIDriver) WithCapsError(id int, err error) *MockMIDIDriver {
	m.CapsErr[id] = err
	return m
}

func (m *MockMIDIDriver) WithOpenError(err error) *MockMIDIDriver {
	m.OpenErr = err
	return m
}

func (m *MockMIDIDriver) WithSendError(err error) *MockMIDIDriver {
	m.SendErr = err
	return m
}

func (m *MockMIDIDriver) WithCloseError(err error) *MockMIDIDriver {
	m.CloseErr = err
	return m
}

func (m *MockMIDIDriver) NumDevs() int {
	return len(m.Devices)
}

func (m *MockMIDIDriver) Caps(id int) (midi.Caps, error) {
	if err := m.CapsErr[id]; err != nil {
		return midi.Caps{}, err
	}

	if id < 0 || id >= len(m.Devices) {
		return midi.Caps{}, midi.ErrNoSuchDevice
	}

	return m.Devices[id], nil
}

func (m *MockMIDIDriver) Open(id int) (midi.Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OpenErr != nil {
		return nil, m.OpenErr
	}

	m.Opened = append(m.Opened, id)
	return &mockPort{driver: m, id: id}, nil
}

// Messages returns a copy of the messages sent so far
func (m *MockMIDIDriver) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentMessage, len(m.Sent))
	copy(out, m.Sent)
	return out
}

// Bytes returns the unpacked messages sent so far
func (m *MockMIDIDriver) Bytes() [][3]byte {
	msgs := m.Messages()
	out := make([][3]byte, 0, len(msgs))
	for _, s := range msgs {
		status, d1, d2 := midi.UnpackShortMessage(s.Msg)
		out = append(out, [3]byte{status, d1, d2})
	}
	return out
}

type mockPort struct {
	driver *MockMIDIDriver
	id     int
}

func (p *mockPort) ShortMsg(msg uint32) error {
	p.driver.mu.Lock()
	defer p.driver.mu.Unlock()

	if p.driver.SendErr != nil {
		return p.driver.SendErr
	}

	p.driver.Sent = append(p.driver.Sent, SentMessage{Device: p.id, Msg: msg})
	return nil
}

func (p *mockPort) Close() error {
	p.driver.mu.Lock()
	defer p.driver.mu.Unlock()

	if p.driver.CloseErr != nil {
		return p.driver.CloseErr
	}

	p.driver.Closed = append(p.driver.Closed, p.id)
	return nil
}
