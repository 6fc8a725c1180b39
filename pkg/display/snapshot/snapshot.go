// Package snapshot provides a display driver that writes every
// presented frame to an image file.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thelolagemann/beef/pkg/display"
	"github.com/thelolagemann/beef/pkg/utils"
)

func init() {
	driver := &Driver{}
	display.Install("snapshot", driver, []display.DriverOption{
		{
			Name:        "dir",
			Default:     "frames",
			Value:       &driver.Dir,
			Type:        "string",
			Description: "Directory frames are written to",
		},
		{
			Name:        "format",
			Default:     "png",
			Value:       &driver.Format,
			Type:        "string",
			Description: "Image format of written frames (png, bmp)",
		},
	})
}

// Driver writes frames to Dir, one file per frame, named by the
// frame number.
type Driver struct {
	Dir    string
	Format string

	format  utils.Format
	frame   int
	started bool
}

func (d *Driver) Start(_ string, _, _ int) error {
	format, err := utils.ParseFormat(d.Format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	d.format = format
	d.frame = 0
	d.started = true
	return nil
}

// Path returns the path the given frame is written to.
func (d *Driver) Path(frame int) string {
	return filepath.Join(d.Dir, fmt.Sprintf("frame-%05d.%s", frame, d.format))
}

func (d *Driver) Present(fb []uint32, width, height int) error {
	if !d.started {
		return display.ErrClosed
	}

	f, err := os.Create(d.Path(d.frame))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	if err := utils.EncodeImage(f, display.Image(fb, width, height), d.format); err != nil {
		return fmt.Errorf("snapshot: encoding frame %d: %w", d.frame, err)
	}
	d.frame++

	return f.Close()
}

func (d *Driver) Stop() error {
	d.started = false
	return nil
}
