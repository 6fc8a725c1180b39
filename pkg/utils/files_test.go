package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
)

var payload = []byte{0x3C, 0x7E, 0x42, 0x42, 0x42, 0x42, 0x7E, 0x3C}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("raw", func(t *testing.T) {
		path := filepath.Join(dir, "vram.bin")
		require.NoError(t, os.WriteFile(path, payload, 0o644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(dir, "vram.bin.gz")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("vram.bin")
		require.NoError(t, err)
		_, err = f.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(dir, "vram.ZIP")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, zip.NewWriter(&buf).Close())

		_, err := Decompress(".zip", buf.Bytes())
		assert.Error(t, err)
	})

	t.Run("corrupt", func(t *testing.T) {
		_, err := Decompress(".gz", payload)
		assert.Error(t, err)
		_, err = Decompress(".7z", payload)
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.bin"))
		assert.Error(t, err)
	})
}

func TestEncodeImage(t *testing.T) {
	f, err := ParseFormat(".BMP")
	require.NoError(t, err)
	assert.Equal(t, FormatBMP, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, format := range []Format{FormatPNG, FormatBMP} {
		var buf bytes.Buffer
		require.NoError(t, EncodeImage(&buf, img, format))

		_, name, err := image.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, string(format), name)
	}
	assert.Error(t, EncodeImage(&bytes.Buffer{}, img, "tiff"))
}
