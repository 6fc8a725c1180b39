//go:build linux || darwin || freebsd || netbsd || openbsd

package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriver_NotATerminal(t *testing.T) {
	d := &Driver{Output: &bytes.Buffer{}}
	assert.Error(t, d.Start("test", 256, 256))
}
