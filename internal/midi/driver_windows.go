//go:build windows

package midi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	callbackNull    = 0x00000000
	maxErrorLength  = 256
	mmsyserrNoError = 0
)

var (
	winmm                    = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs    = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps    = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen          = winmm.NewProc("midiOutOpen")
	procMidiOutClose         = winmm.NewProc("midiOutClose")
	procMidiOutShortMsg      = winmm.NewProc("midiOutShortMsg")
	procMidiOutGetErrorTextW = winmm.NewProc("midiOutGetErrorTextW")
)

// MIDIOUTCAPSW
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

type winmmDriver struct{}

func newPlatformDriver() Driver { return winmmDriver{} }

func (winmmDriver) NumDevs() int {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	return int(uint32(r0))
}

func (winmmDriver) Caps(id int) (Caps, error) {
	var caps midiOutCaps

	rc, _, _ := procMidiOutGetDevCaps.Call(
		uintptr(id),
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if err := checkReturnCode(rc); err != nil {
		return Caps{}, err
	}

	return Caps{
		Name:           windows.UTF16ToString(caps.szPname[:]),
		ManufacturerID: caps.wMid,
		ProductID:      caps.wPid,
		DriverVersion:  caps.vDriverVersion,
		Technology:     caps.wTechnology,
		Voices:         caps.wVoices,
		Notes:          caps.wNotes,
		ChannelMask:    caps.wChannelMask,
		Support:        caps.dwSupport,
	}, nil
}

func (winmmDriver) Open(id int) (Port, error) {
	var handle windows.Handle

	rc, _, _ := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&handle)),
		uintptr(id),
		0,
		0,
		callbackNull,
	)
	if err := checkReturnCode(rc); err != nil {
		return nil, err
	}

	return &winmmPort{handle: handle}, nil
}

type winmmPort struct {
	handle windows.Handle
}

func (p *winmmPort) ShortMsg(msg uint32) error {
	rc, _, _ := procMidiOutShortMsg.Call(uintptr(p.handle), uintptr(msg))
	return checkReturnCode(rc)
}

func (p *winmmPort) Close() error {
	rc, _, _ := procMidiOutClose.Call(uintptr(p.handle))
	return checkReturnCode(rc)
}

// checkReturnCode converts a non-zero MMRESULT into a *DeviceError carrying
// the driver's description of it.
func checkReturnCode(rc uintptr) error {
	if rc == mmsyserrNoError {
		return nil
	}

	buf := make([]uint16, maxErrorLength)
	r, _, _ := procMidiOutGetErrorTextW.Call(rc, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r != mmsyserrNoError {
		return &DeviceError{Code: uint32(rc), Text: noErrorDetails}
	}

	return &DeviceError{Code: uint32(rc), Text: windows.UTF16ToString(buf)}
}
