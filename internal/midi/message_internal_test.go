package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortMessageLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status byte
		want   int
	}{
		{0x90, 3},
		{0x8F, 3},
		{0xB3, 3},
		{0xE0, 3},
		{0xC5, 2},
		{0xD0, 2},
		{0xF3, 2},
		{0xF8, 1},
		{0xFE, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shortMessageLen(tt.status), "status 0x%X", tt.status)
	}
}
