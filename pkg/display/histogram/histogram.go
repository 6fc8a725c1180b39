// Package histogram counts the colours of presented frames and
// plots them as a bar chart.
package histogram

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/thelolagemann/beef/pkg/display"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoFrames is returned when plotting before any frame has been
// presented.
var ErrNoFrames = errors.New("histogram: no frames presented")

// Presenter is the surface frames are forwarded to.
type Presenter interface {
	Present(fb []uint32, width, height int) error
}

// Histogram wraps a Presenter, counting every pixel of every frame
// before passing it on.
type Histogram struct {
	next   Presenter
	counts map[uint32]int
	frames int
	mu     sync.Mutex
}

// New returns a Histogram forwarding frames to next. next may be
// nil, in which case frames are only counted.
func New(next Presenter) *Histogram {
	return &Histogram{
		next:   next,
		counts: make(map[uint32]int),
	}
}

func (h *Histogram) Present(fb []uint32, width, height int) error {
	h.mu.Lock()
	for _, c := range fb {
		h.counts[c]++
	}
	h.frames++
	h.mu.Unlock()

	if h.next == nil {
		return nil
	}
	return h.next.Present(fb, width, height)
}

// Frames returns the number of frames counted.
func (h *Histogram) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Count returns the number of pixels of colour c seen so far.
func (h *Histogram) Count(c uint32) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[c]
}

// Colours returns every colour seen, in ascending order.
func (h *Histogram) Colours() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	colours := make([]uint32, 0, len(h.counts))
	for c := range h.counts {
		colours = append(colours, c)
	}
	sort.Slice(colours, func(i, j int) bool { return colours[i] < colours[j] })
	return colours
}

// Plot builds a bar chart with one bar per colour, each drawn in
// the colour it counts.
func (h *Histogram) Plot() (*plot.Plot, error) {
	colours := h.Colours()
	if len(colours) == 0 {
		return nil, ErrNoFrames
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Colours over %d frames", h.Frames())
	p.Y.Label.Text = "Pixels"

	names := make([]string, len(colours))
	for i, c := range colours {
		names[i] = fmt.Sprintf("#%06X", c)

		values := make(plotter.Values, len(colours))
		values[i] = float64(h.Count(c))
		bar, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return nil, fmt.Errorf("histogram: %w", err)
		}
		bar.Color = display.RGBA(c)
		p.Add(bar)
	}
	p.NominalX(names...)

	return p, nil
}

// Image renders the plot into a width x height image.
func (h *Histogram) Image(width, height int) (*image.RGBA, error) {
	p, err := h.Plot()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	return img, nil
}

// Save writes the plot to path, the format is taken from the file
// extension.
func (h *Histogram) Save(path string) error {
	p, err := h.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	return nil
}
