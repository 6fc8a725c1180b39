package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/beef/pkg/display"
	"github.com/thelolagemann/beef/pkg/display/snapshot"
	"github.com/thelolagemann/beef/pkg/log"
)

func writeDump(t *testing.T) string {
	t.Helper()

	data := make([]byte, 0x10000)
	for i := 0x8000; i < 0x9800; i += 2 {
		data[i], data[i+1] = 0xF0, 0xAA
	}
	path := filepath.Join(t.TempDir(), "vram.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func defaults(t *testing.T, args ...string) *config {
	t.Helper()

	cfg, err := parseFlags(flag.NewFlagSet("beef", flag.ContinueOnError), args)
	require.NoError(t, err)
	return cfg
}

func TestParseFlags(t *testing.T) {
	cfg := defaults(t)
	assert.Equal(t, "auto", cfg.driver)
	assert.Equal(t, uint(0x91), cfg.lcdc)
	assert.Equal(t, "green", cfg.palette)
	assert.Equal(t, "flat", cfg.layout)

	cfg = defaults(t, "-dump", "a.bin", "-driver", "none", "-frames", "3", "-layout", "raster", "-lcdc", "0x81")
	assert.Equal(t, "a.bin", cfg.dump)
	assert.Equal(t, "none", cfg.driver)
	assert.Equal(t, 3, cfg.frames)
	assert.Equal(t, "raster", cfg.layout)
	assert.Equal(t, uint(0x81), cfg.lcdc)
}

func TestRun_Headless(t *testing.T) {
	for _, mmap := range []bool{false, true} {
		cfg := defaults(t, "-dump", writeDump(t), "-driver", "none")
		cfg.mmap = mmap

		var out bytes.Buffer
		require.NoError(t, run(cfg, log.NewWithOutput(&out, false)))
		assert.Contains(t, out.String(), "rendered 1 frames")
	}
}

func TestRun_Snapshot(t *testing.T) {
	driver, ok := display.GetDriver("snapshot").(*snapshot.Driver)
	require.True(t, ok)
	dir := t.TempDir()

	cfg := defaults(t, "-dump", writeDump(t), "-driver", "snapshot", "-frames", "2", "-layout", "raster")
	driver.Dir, driver.Format = dir, "png"

	require.NoError(t, run(cfg, log.NewNullLogger()))
	for i := 0; i < 2; i++ {
		assert.FileExists(t, driver.Path(i))
	}
	assert.NoFileExists(t, driver.Path(2))
}

func TestRun_Histogram(t *testing.T) {
	out := filepath.Join(t.TempDir(), "colours.png")
	cfg := defaults(t, "-dump", writeDump(t), "-driver", "none", "-frames", "2", "-histogram", out)

	require.NoError(t, run(cfg, log.NewNullLogger()))
	assert.FileExists(t, out)
}

func TestRun_Errors(t *testing.T) {
	dump := writeDump(t)

	tests := []struct {
		name string
		args []string
	}{
		{"palette", []string{"-dump", dump, "-driver", "none", "-palette", "purple"}},
		{"layout", []string{"-dump", dump, "-driver", "none", "-layout", "zigzag"}},
		{"lcdc", []string{"-dump", dump, "-driver", "none", "-lcdc", "0x100"}},
		{"driver", []string{"-dump", dump, "-driver", "crt"}},
		{"missing file", []string{"-dump", filepath.Join(t.TempDir(), "missing.bin"), "-driver", "none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(defaults(t, tt.args...), log.NewNullLogger()))
		})
	}
}

func TestRun_AskForFile(t *testing.T) {
	saved := askForFile
	t.Cleanup(func() { askForFile = saved })

	errCancelled := errors.New("cancelled")
	askForFile = func(string, string) (string, error) { return "", errCancelled }
	assert.ErrorIs(t, run(defaults(t, "-driver", "none"), log.NewNullLogger()), errCancelled)

	dump := writeDump(t)
	askForFile = func(string, string) (string, error) { return dump, nil }
	assert.NoError(t, run(defaults(t, "-driver", "none"), log.NewNullLogger()))
}
