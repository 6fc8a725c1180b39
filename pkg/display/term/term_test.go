package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/beef/pkg/display"
)

func TestFit(t *testing.T) {
	assert.Equal(t, 1, fit(8, 8, 80, 24))
	assert.Equal(t, 4, fit(256, 256, 80, 40))
	assert.Equal(t, 6, fit(256, 256, 200, 24))
}

func TestDriver(t *testing.T) {
	var buf bytes.Buffer
	d := &Driver{Output: &buf, Step: 1}

	assert.ErrorIs(t, d.Present(nil, 0, 0), display.ErrClosed)
	require.NoError(t, d.Start("test", 2, 2))

	fb := []uint32{0x00FF0000, 0x0000FF00, 0x000000FF, 0x00FFFFFF}
	require.NoError(t, d.Present(fb, 2, 2))
	out := buf.String()

	// one line of two half blocks
	assert.Equal(t, 2, strings.Count(out, "▀"))
	assert.Contains(t, out, "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀")
	assert.Contains(t, out, "\x1b[38;2;0;255;0m\x1b[48;2;255;255;255m▀")

	require.NoError(t, d.Stop())
	assert.True(t, strings.HasSuffix(buf.String(), "\x1b[?25h"))
}
