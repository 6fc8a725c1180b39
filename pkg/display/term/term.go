// Package term provides a display driver drawing frames to a
// 24-bit colour terminal. Two pixels are drawn per character
// using the upper half block, so pixels keep a square ratio.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/thelolagemann/beef/pkg/display"
)

func init() {
	driver := &Driver{Output: os.Stdout}
	display.Install("term", driver, []display.DriverOption{
		{
			Name:        "step",
			Default:     0,
			Value:       &driver.Step,
			Type:        "int",
			Description: "Draw every nth pixel, 0 fits the frame to the terminal",
		},
	})
}

// Driver draws frames to Output.
type Driver struct {
	Output io.Writer
	// Step is the sampling interval, 0 fits the terminal.
	Step int

	w       *bufio.Writer
	step    int
	started bool
}

func (d *Driver) Start(_ string, width, height int) error {
	if d.Output == nil {
		return fmt.Errorf("term: no output")
	}

	d.step = d.Step
	if d.step <= 0 {
		cols, rows, err := size(d.Output)
		if err != nil {
			return fmt.Errorf("term: %w", err)
		}
		d.step = fit(width, height, cols, rows)
	}

	d.w = bufio.NewWriter(d.Output)
	d.started = true

	// clear screen, hide cursor
	_, err := d.w.WriteString("\x1b[2J\x1b[?25l")
	return err
}

// fit returns the smallest step that fits a width x height frame
// into cols x rows characters, keeping the last row for the prompt.
func fit(width, height, cols, rows int) int {
	step := 1
	for width/step > cols || (height/step+1)/2 > rows-1 {
		step++
	}
	return step
}

func (d *Driver) Present(fb []uint32, width, height int) error {
	if !d.started {
		return display.ErrClosed
	}

	// move the cursor home so frames overwrite each other
	d.w.WriteString("\x1b[H")
	for y := 0; y < height; y += d.step * 2 {
		for x := 0; x < width; x += d.step {
			top := fb[y*width+x]
			bottom := top
			if y+d.step < height {
				bottom = fb[(y+d.step)*width+x]
			}
			fmt.Fprintf(d.w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				uint8(top>>16), uint8(top>>8), uint8(top),
				uint8(bottom>>16), uint8(bottom>>8), uint8(bottom))
		}
		d.w.WriteString("\x1b[0m\n")
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return nil
}

func (d *Driver) Stop() error {
	if !d.started {
		return nil
	}
	d.started = false

	// reset colours, show cursor
	d.w.WriteString("\x1b[0m\x1b[?25h")
	return d.w.Flush()
}
