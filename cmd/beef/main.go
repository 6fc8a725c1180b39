package main

import (
	"flag"
	"os"

	"github.com/thelolagemann/beef/pkg/display"
	_ "github.com/thelolagemann/beef/pkg/display/snapshot"
	_ "github.com/thelolagemann/beef/pkg/display/term"
	_ "github.com/thelolagemann/beef/pkg/display/web"
	"github.com/thelolagemann/beef/pkg/log"
	"github.com/thelolagemann/beef/pkg/statsview"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := log.NewWithOutput(os.Stderr, cfg.debug)
	if cfg.statsview {
		statsview.Launch(statsviewAddr, logger)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := &config{}
	fs.StringVar(&cfg.dump, "dump", "", "The memory image to load (raw, .gz, .zip or .7z)")
	fs.BoolVar(&cfg.mmap, "mmap", false, "Map the memory image instead of reading it, raw images only")
	fs.StringVar(&cfg.driver, "driver", "auto", "The display driver to use, none renders headless")
	fs.IntVar(&cfg.frames, "frames", 0, "Number of frames to render, 0 renders until the display is closed")
	fs.UintVar(&cfg.lcdc, "lcdc", 0x91, "Initial value of the LCDC register")
	fs.StringVar(&cfg.palette, "palette", "green", "The palette to render with")
	fs.StringVar(&cfg.layout, "layout", "flat", "The background layout, flat or raster")
	fs.StringVar(&cfg.histogram, "histogram", "", "Write a plot of the rendered colours to this file")
	fs.BoolVar(&cfg.statsview, "statsview", false, "Serve runtime statistics on "+statsviewAddr)
	fs.BoolVar(&cfg.debug, "debug", false, "Dump the registers after every frame")

	display.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
