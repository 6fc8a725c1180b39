//go:build linux || darwin || freebsd || netbsd || openbsd

package term

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// size returns the size of the terminal w is connected to.
func size(w io.Writer) (cols, rows int, err error) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, errors.New("output is not a terminal")
	}

	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
