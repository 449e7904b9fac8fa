package midi

// Status bytes used by the short message helpers.
const (
	StatusNoteOff       byte = 0x80
	StatusNoteOn        byte = 0x90
	StatusControlChange byte = 0xB0
	StatusProgramChange byte = 0xC0
	StatusChannelMask   byte = 0x0F
	StatusCommandMask   byte = 0xF0
)

// PackShortMessage packs a status byte and two data bytes into the 32-bit
// word expected by midiOutShortMsg: status in the low byte, then data1, then
// data2.
func PackShortMessage(status, data1, data2 byte) uint32 {
	return uint32(status) | uint32(data1)<<8 | uint32(data2)<<16
}

// UnpackShortMessage is the inverse of PackShortMessage.
func UnpackShortMessage(m uint32) (status, data1, data2 byte) {
	return byte(m), byte(m >> 8), byte(m >> 16)
}

// shortMessageLen reports how many bytes of a packed message are meaningful
// for its status byte.
func shortMessageLen(status byte) int {
	switch status & StatusCommandMask {
	case StatusProgramChange, 0xD0:
		return 2
	}

	switch status {
	case 0xF1, 0xF3:
		return 2
	case 0xF6, 0xF8, 0xFA, 0xFB, 0xFC, 0xFE, 0xFF:
		return 1
	}

	return 3
}
