//go:build !test

package utils

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

// CopyImage copies img to the clipboard as a PNG.
func CopyImage(img image.Image) error {
	err := clipboard.Init()
	if err != nil {
		return err
	}

	// encode image to byte slice
	var b bytes.Buffer
	if err := EncodeImage(&b, img, FormatPNG); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())

	return nil
}

// SaveImage asks the user where to save img, and saves it in the
// format given by the chosen extension.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Filter("Bitmap Image", "bmp").Title("Save Image").Save()
	if err != nil {
		return err
	}

	format, err := ParseFormat(filepath.Ext(filename))
	if err != nil {
		// no known extension, default to PNG
		filename += ".png"
		format = FormatPNG
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeImage(file, img, format)
}
