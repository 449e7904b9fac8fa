//go:build !windows

package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// fakeOut is an in-memory gomidi output port
type fakeOut struct {
	name   string
	number int
	open   bool
	sent   [][]byte
}

func (f *fakeOut) Open() error             { f.open = true; return nil }
func (f *fakeOut) Close() error            { f.open = false; return nil }
func (f *fakeOut) IsOpen() bool            { return f.open }
func (f *fakeOut) Number() int             { return f.number }
func (f *fakeOut) String() string          { return f.name }
func (f *fakeOut) Underlying() interface{} { return f }

func (f *fakeOut) Send(data []byte) error {
	f.sent = append(f.sent, append([]byte(nil), data...))
	return nil
}

func TestGomidiDriver_IdsFollowEnumeration(t *testing.T) {
	t.Parallel()

	synth := &fakeOut{name: "Synth"}
	console := &fakeOut{name: "DJControl MP3 LE MIDI", number: 1}
	ports := []drivers.Out{synth, console}

	d := newGomidiDriver(func() []drivers.Out { return ports })
	require.Equal(t, 2, d.NumDevs())

	caps, err := d.Caps(1)
	require.NoError(t, err)
	assert.Equal(t, "DJControl MP3 LE MIDI", caps.Name)

	// A port plugged in ahead of the console after enumeration
	ports = []drivers.Out{&fakeOut{name: "Late Arrival"}, synth, console}

	p, err := d.Open(1)
	require.NoError(t, err)
	assert.True(t, console.IsOpen(), "Open must use the enumerated port")

	require.NoError(t, p.ShortMsg(PackShortMessage(0x90, 46, 127)))
	require.NoError(t, p.ShortMsg(PackShortMessage(0xC0, 5, 0)))
	assert.Equal(t, [][]byte{{0x90, 46, 127}, {0xC0, 5}}, console.sent)

	require.NoError(t, p.Close())
	assert.False(t, console.IsOpen())
}

func TestGomidiDriver_BadID(t *testing.T) {
	t.Parallel()

	d := newGomidiDriver(func() []drivers.Out { return nil })
	assert.Equal(t, 0, d.NumDevs())

	_, err := d.Caps(0)
	assert.ErrorIs(t, err, ErrNoSuchDevice)

	_, err = d.Open(-1)
	assert.ErrorIs(t, err, ErrNoSuchDevice)
}
