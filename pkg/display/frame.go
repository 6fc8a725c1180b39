package display

import (
	"image"
	"image/color"
)

// Image converts a frame of packed 0x00RRGGBB colours into an
// image.RGBA.
func Image(fb []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Draw(img, fb)
	return img
}

// Draw copies fb into img, which must be at least as large as the
// frame.
func Draw(img *image.RGBA, fb []uint32) {
	width := img.Rect.Dx()
	for i, c := range fb {
		img.SetRGBA(i%width, i/width, RGBA(c))
	}
}

// RGBA returns the packed colour c as a color.RGBA.
func RGBA(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// RGB returns the frame as tightly packed 8-bit RGB triplets.
func RGB(fb []uint32) []byte {
	out := make([]byte, len(fb)*3)
	for i, c := range fb {
		out[i*3] = uint8(c >> 16)
		out[i*3+1] = uint8(c >> 8)
		out[i*3+2] = uint8(c)
	}
	return out
}
