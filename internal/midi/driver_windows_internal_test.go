//go:build windows

package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MMSYSERR_BADDEVICEID
const mmsyserrBadDeviceID = 2

func TestCheckReturnCode(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkReturnCode(mmsyserrNoError))

	t.Run("known code carries driver text", func(t *testing.T) {
		var devErr *DeviceError
		require.True(t, errors.As(checkReturnCode(mmsyserrBadDeviceID), &devErr))
		assert.Equal(t, uint32(mmsyserrBadDeviceID), devErr.Code)
		assert.NotEmpty(t, devErr.Text)
		assert.NotEqual(t, noErrorDetails, devErr.Text)
	})

	t.Run("unknown code has no details", func(t *testing.T) {
		var devErr *DeviceError
		require.True(t, errors.As(checkReturnCode(0xFFFF), &devErr))
		assert.Equal(t, uint32(0xFFFF), devErr.Code)
		assert.Equal(t, noErrorDetails, devErr.Text)
	})
}

func TestWinmmDriver_CapsBadDevice(t *testing.T) {
	t.Parallel()

	drv := winmmDriver{}
	_, err := drv.Caps(drv.NumDevs() + 100)

	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, uint32(mmsyserrBadDeviceID), devErr.Code)
}
