// Package sdl provides a display driver using SDL2.
package sdl

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/thelolagemann/beef/pkg/display"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL video must be driven from the main thread
	runtime.LockOSThread()

	driver := &sdlDriver{}
	display.Install("sdl", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     2.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
		{
			Name:        "vsync",
			Default:     true,
			Value:       &driver.vsync,
			Type:        "bool",
			Description: "Synchronise presentation with the display refresh rate",
		},
	})
}

// sdlDriver streams frames into an ARGB8888 texture, which matches
// the packed 0x00RRGGBB layout of a frame.
type sdlDriver struct {
	scale float64
	vsync bool

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	closed   bool
}

func (s *sdlDriver) Start(title string, width, height int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float64(width)*s.scale), int32(float64(height)*s.scale), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: creating window: %w", err)
	}

	var flags uint32 = sdl.RENDERER_ACCELERATED
	if s.vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl: creating renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl: setting logical size: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl: creating texture: %w", err)
	}

	s.window, s.renderer, s.texture = window, renderer, texture
	s.closed = false
	return nil
}

func (s *sdlDriver) Present(fb []uint32, width, height int) error {
	if s.closed || s.texture == nil {
		return display.ErrClosed
	}

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if _, ok := e.(*sdl.QuitEvent); ok {
			s.closed = true
			return display.ErrClosed
		}
	}

	if len(fb) < width*height {
		return fmt.Errorf("sdl: frame holds %d pixels, want %d", len(fb), width*height)
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&fb[0]), width*4); err != nil {
		return fmt.Errorf("sdl: updating texture: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()

	return nil
}

func (s *sdlDriver) Stop() error {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()

	return nil
}
