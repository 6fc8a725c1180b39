//go:build !test

package main

import (
	_ "github.com/thelolagemann/beef/pkg/display/fyne"
	_ "github.com/thelolagemann/beef/pkg/display/glfw"
	_ "github.com/thelolagemann/beef/pkg/display/sdl"
	"github.com/thelolagemann/beef/pkg/utils"
)

func init() {
	askForFile = utils.AskForFile
}
