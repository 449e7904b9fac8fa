package windows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djtokey/plugins/internal/windows"
)

func TestClient_OpenEmptyPath(t *testing.T) {
	t.Parallel()

	c := windows.NewClient(nil)

	assert.ErrorIs(t, c.Open(""), windows.ErrEmptyPath)
	assert.ErrorIs(t, c.OpenWith("edit", ""), windows.ErrEmptyPath)
}
