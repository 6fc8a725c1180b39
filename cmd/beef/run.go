package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thelolagemann/beef/internal/gameboy"
	"github.com/thelolagemann/beef/internal/mmu"
	"github.com/thelolagemann/beef/internal/ppu"
	"github.com/thelolagemann/beef/internal/ppu/palette"
	"github.com/thelolagemann/beef/pkg/display"
	"github.com/thelolagemann/beef/pkg/display/histogram"
	"github.com/thelolagemann/beef/pkg/log"
	"github.com/thelolagemann/beef/pkg/utils"
)

const (
	title         = "beef"
	statsviewAddr = "localhost:12600"
)

// askForFile is set when a file dialog is available.
var askForFile func(title, startingDir string) (string, error)

type config struct {
	dump      string
	mmap      bool
	driver    string
	frames    int
	lcdc      uint
	palette   string
	layout    string
	histogram string
	statsview bool
	debug     bool
}

// run loads the memory image, renders the configured number of
// frames and tears everything down again.
func run(cfg *config, logger log.Logger) error {
	if cfg.lcdc > 0xFF {
		return fmt.Errorf("invalid LCDC value 0x%X", cfg.lcdc)
	}
	pal, ok := palette.ByName(cfg.palette)
	if !ok {
		return fmt.Errorf("unknown palette %q (available: %s)", cfg.palette, strings.Join(palette.Names(), ", "))
	}
	layout, err := ppu.ParseLayout(cfg.layout)
	if err != nil {
		return err
	}

	mem, closeMem, err := loadMemory(cfg, logger)
	if err != nil {
		return err
	}
	defer closeMem()

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithPalette(pal),
		gameboy.WithLayout(layout),
		gameboy.WithLCDC(uint8(cfg.lcdc)),
	}
	if cfg.debug {
		opts = append(opts, gameboy.Debug())
	}

	var driver display.Driver
	if cfg.driver != "none" {
		if driver = display.GetDriver(cfg.driver); driver == nil {
			return fmt.Errorf("unknown display driver %q (installed: %s)", cfg.driver, strings.Join(display.Names(), ", "))
		}
		if l, ok := driver.(display.LoggerSetter); ok {
			l.SetLogger(logger)
		}
		if err := driver.Start(title, ppu.FrameWidth, ppu.FrameHeight); err != nil {
			return fmt.Errorf("starting display driver: %w", err)
		}
		defer driver.Stop()
	}

	var hist *histogram.Histogram
	switch {
	case cfg.histogram != "" && driver != nil:
		hist = histogram.New(driver)
		opts = append(opts, gameboy.WithPresenter(hist))
	case cfg.histogram != "":
		hist = histogram.New(nil)
		opts = append(opts, gameboy.WithPresenter(hist))
	case driver != nil:
		opts = append(opts, gameboy.WithPresenter(driver))
	}

	frames := cfg.frames
	if driver == nil && hist == nil && frames == 0 {
		// nothing would ever close a headless machine
		frames = 1
	}

	gb := gameboy.NewGameBoy(mem, opts...)
	loop := func() error {
		for i := 0; frames == 0 || i < frames; i++ {
			if err := gb.Frame(); err != nil {
				if errors.Is(err, display.ErrClosed) {
					return nil
				}
				return err
			}
		}
		return nil
	}

	if looper, ok := driver.(display.Looper); ok {
		err = looper.Loop(loop)
	} else {
		err = loop()
	}
	if err != nil {
		return err
	}
	logger.Infof("rendered %d frames", gb.Frames())

	if hist != nil {
		if err := hist.Save(cfg.histogram); err != nil {
			return err
		}
		logger.Infof("wrote colour histogram to %s", cfg.histogram)
	}

	return nil
}

// loadMemory returns the memory image named by cfg, asking for one
// if none was given.
func loadMemory(cfg *config, logger log.Logger) (mmu.Reader, func() error, error) {
	nop := func() error { return nil }

	path := cfg.dump
	if path == "" {
		if askForFile == nil {
			return nil, nop, errors.New("no memory image given")
		}
		var err error
		if path, err = askForFile("Load memory image", "."); err != nil {
			return nil, nop, fmt.Errorf("selecting memory image: %w", err)
		}
	}

	if cfg.mmap {
		mem, err := mmu.MapFile(path)
		if err != nil {
			return nil, nop, err
		}
		logger.Debugf("mapped %s", path)
		return mem, mem.Close, nil
	}

	data, err := utils.LoadFile(path)
	if err != nil {
		return nil, nop, fmt.Errorf("loading memory image: %w", err)
	}
	if len(data) > 0x10000 {
		logger.Infof("memory image is %d bytes, only the first 64 KiB are used", len(data))
	}
	logger.Debugf("loaded %d bytes from %s", len(data), path)

	return mmu.NewFromBytes(data), nop, nil
}
