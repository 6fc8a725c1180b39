//go:build !test

// Package fyne provides a display driver presenting frames in a
// fyne window.
package fyne

import (
	"fmt"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/thelolagemann/beef/pkg/display"
	"github.com/thelolagemann/beef/pkg/log"
	"github.com/thelolagemann/beef/pkg/utils"
)

func init() {
	driver := &fyneDriver{Logger: log.New()}
	display.Install("fyne", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     2.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
	})
}

// fyneDriver presents frames through a canvas.Raster. fyne owns
// the main goroutine, so the emulation is run through Loop.
type fyneDriver struct {
	scale float64

	app    fyne.App
	window fyne.Window
	raster *canvas.Raster

	log.Logger

	mu     sync.Mutex
	front  *image.RGBA // never written once published
	closed bool
	frozen bool
}

// SetLogger sets the logger menu actions report errors to.
func (f *fyneDriver) SetLogger(l log.Logger) {
	f.Logger = l
}

func (f *fyneDriver) Start(title string, width, height int) error {
	f.app = app.NewWithID("com.github.thelolagemann.beef")
	f.window = f.app.NewWindow(title)
	if f.window == nil {
		return fmt.Errorf("fyne: could not create window")
	}

	f.front = image.NewRGBA(image.Rect(0, 0, width, height))
	f.raster = canvas.NewRaster(func(w, h int) image.Image {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.front
	})
	f.raster.ScaleMode = canvas.ImageScalePixels
	f.raster.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	f.window.SetContent(f.raster)
	f.window.SetPadded(false)
	f.window.Resize(fyne.NewSize(float32(float64(width)*f.scale), float32(float64(height)*f.scale)))
	f.window.SetMainMenu(fyne.NewMainMenu(f.frameMenu()))
	f.window.SetOnClosed(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()
	})

	return nil
}

func (f *fyneDriver) frameMenu() *fyne.Menu {
	return fyne.NewMenu("Frame",
		fyne.NewMenuItem("Copy", func() {
			reportError(f.Logger, "copying frame", utils.CopyImage(f.current()))
		}),
		fyne.NewMenuItem("Save...", func() {
			reportError(f.Logger, "saving frame", utils.SaveImage(f.current()))
		}),
		NewCustomizedMenuItem("Freeze", nil, Checked(false, func(frozen bool) {
			f.mu.Lock()
			f.frozen = frozen
			f.mu.Unlock()
		})),
	)
}

func (f *fyneDriver) current() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.front
}

func (f *fyneDriver) Present(fb []uint32, width, height int) error {
	f.mu.Lock()
	if f.closed || f.window == nil {
		f.mu.Unlock()
		return display.ErrClosed
	}
	frozen := f.frozen
	f.mu.Unlock()

	if frozen {
		return nil
	}

	img := display.Image(fb, width, height)
	f.mu.Lock()
	f.front = img
	f.mu.Unlock()

	canvas.Refresh(f.raster)
	return nil
}

// Loop shows the window and runs run on a separate goroutine once
// the app has started, returning its error after the window has
// closed.
func (f *fyneDriver) Loop(run func() error) error {
	return runStarted(f.app.Lifecycle().SetOnStarted, f.window.ShowAndRun, f.app.Quit, run)
}

func (f *fyneDriver) Stop() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()

	return nil
}
