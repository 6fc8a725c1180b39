//go:build !test

package utils

import "github.com/sqweek/dialog"

// AskForFile asks the user to pick a file to open.
func AskForFile(title, startingDir string) (string, error) {
	return dialog.File().SetStartDir(startingDir).Title(title).Load()
}
