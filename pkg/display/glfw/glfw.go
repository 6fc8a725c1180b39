// Package glfw provides a display driver using GLFW and the
// OpenGL API.
package glfw

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/thelolagemann/beef/pkg/display"
)

func init() {
	// GLFW: this is needed to arrange for main to run on main thread
	runtime.LockOSThread()

	// register display driver
	driver := &glfwDriver{}
	display.Install("glfw", driver, []display.DriverOption{
		{
			Name:        "fullscreen",
			Default:     false,
			Value:       &driver.fullscreen,
			Type:        "bool",
			Description: "Run in fullscreen mode",
		},
		{
			Name:        "scale",
			Default:     2.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
	})
}

// glfwDriver implements a barebones display driver using GLFW
// and the OpenGL API. The frame is uploaded to a texture and
// blitted to the default framebuffer.
type glfwDriver struct {
	fullscreen bool
	scale      float64

	window  *glfw.Window
	texture uint32
	fb      uint32

	// size of the drawable area, updated on resize
	targetWidth, targetHeight int32
}

// Start creates the window and the GL resources frames are drawn
// with.
func (g *glfwDriver) Start(title string, width, height int) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: init: %w", err)
	}

	window, err := glfw.CreateWindow(int(float64(width)*g.scale), int(float64(height)*g.scale), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("glfw: creating window: %w", err)
	}

	if g.fullscreen {
		mon := glfw.GetPrimaryMonitor()
		mode := mon.GetVideoMode()
		window.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("glfw: initialising OpenGL: %w", err)
	}
	g.window = window

	gl.GenTextures(1, &g.texture)
	gl.BindTexture(gl.TEXTURE_2D, g.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	gl.GenFramebuffers(1, &g.fb)
	gl.BindFramebuffer(gl.FRAMEBUFFER, g.fb)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, g.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, g.fb)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)

	w, h := window.GetFramebufferSize()
	g.targetWidth, g.targetHeight = int32(w), int32(h)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.targetWidth, g.targetHeight = int32(w), int32(h)
	})

	return nil
}

// Present uploads the frame and swaps buffers.
func (g *glfwDriver) Present(fb []uint32, width, height int) error {
	if g.window == nil {
		return display.ErrClosed
	}

	glfw.PollEvents()
	if g.window.ShouldClose() {
		return display.ErrClosed
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, g.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(display.RGB(fb)))

	// flip vertically, GL's origin is bottom left
	gl.BlitFramebuffer(0, 0, int32(width), int32(height), 0, g.targetHeight, g.targetWidth, 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)

	g.window.SwapBuffers()
	return nil
}

// Stop stops the display driver.
func (g *glfwDriver) Stop() error {
	if g.window != nil {
		g.window.Destroy()
		g.window = nil
	}
	glfw.Terminate()

	return nil
}
