package histogram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presenterFunc func(fb []uint32, width, height int) error

func (f presenterFunc) Present(fb []uint32, width, height int) error {
	return f(fb, width, height)
}

func TestHistogram_Present(t *testing.T) {
	var forwarded int
	h := New(presenterFunc(func(fb []uint32, width, height int) error {
		forwarded++
		assert.Equal(t, 2, width)
		return nil
	}))

	require.NoError(t, h.Present([]uint32{1, 1, 2, 3}, 2, 2))
	require.NoError(t, h.Present([]uint32{1, 3, 3, 3}, 2, 2))

	assert.Equal(t, 2, forwarded)
	assert.Equal(t, 2, h.Frames())
	assert.Equal(t, 3, h.Count(1))
	assert.Equal(t, 1, h.Count(2))
	assert.Equal(t, 4, h.Count(3))
	assert.Equal(t, 0, h.Count(4))
	assert.Equal(t, []uint32{1, 2, 3}, h.Colours())
}

func TestHistogram_PresentError(t *testing.T) {
	errFail := errors.New("fail")
	h := New(presenterFunc(func([]uint32, int, int) error { return errFail }))

	assert.ErrorIs(t, h.Present([]uint32{0}, 1, 1), errFail)
	assert.Equal(t, 1, h.Count(0), "frame counted before forwarding")
}

func TestHistogram_Plot(t *testing.T) {
	h := New(nil)
	_, err := h.Plot()
	assert.ErrorIs(t, err, ErrNoFrames)

	require.NoError(t, h.Present([]uint32{0x00002200, 0x00DDFFDD, 0x00DDFFDD}, 3, 1))

	img, err := h.Image(320, 240)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "histogram.png")
	require.NoError(t, h.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
