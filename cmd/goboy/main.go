// cmd/goboy is a minimal headless runner: load a ROM-only cartridge image,
// run it for a fixed number of frames, and write the final frame to a PNG.
// ROM loading, host windowing, and input capture are the core's external
// collaborators, none of which it implements itself; this binary supplies
// the minimum needed to demonstrate the core runs: no window, no input,
// no live display.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"goboy/internal/diagnostics"
	"goboy/internal/gameboy"
	"goboy/pkg/log"
	"goboy/pkg/screen"
)

func main() {
	romPath := flag.String("rom", "", "path to a ROM-only cartridge image")
	bootPath := flag.String("boot", "", "path to a 256-byte DMG boot ROM image (optional)")
	frames := flag.Int("frames", 60, "number of frames to run before snapshotting")
	out := flag.String("out", "frame.png", "path to write the final frame as PNG")
	scale := flag.Int("scale", 1, "nearest-neighbor upscale factor for the snapshot")
	timingChart := flag.String("timing-chart", "", "path to write a per-frame cycle-count chart as PNG (optional)")
	modeHistogram := flag.String("mode-histogram", "", "path to write a PPU mode-occupancy histogram as PNG (optional)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "goboy: -rom is required")
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goboy: reading rom: %v\n", err)
		os.Exit(1)
	}

	var opts []gameboy.Option
	opts = append(opts, gameboy.WithLogger(log.New()))

	scr := screen.NewRGBAScreen(160, 144)
	opts = append(opts, gameboy.WithScreen(scr))

	if *bootPath != "" {
		bootImage, err := os.ReadFile(*bootPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "goboy: reading boot rom: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(bootImage))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goboy: %v\n", err)
		os.Exit(1)
	}

	cyclesPerFrame := make([]int, 0, *frames)
	for i := 0; i < *frames; i++ {
		if err := gb.RunFrame(); err != nil {
			fmt.Fprintf(os.Stderr, "goboy: frame %d: %v\n", i, err)
			os.Exit(1)
		}
		cyclesPerFrame = append(cyclesPerFrame, gb.CyclesLastFrame())
	}

	if *timingChart != "" {
		if err := diagnostics.WriteFrameTimingChart(*timingChart, cyclesPerFrame); err != nil {
			fmt.Fprintf(os.Stderr, "goboy: writing timing chart: %v\n", err)
			os.Exit(1)
		}
	}
	if *modeHistogram != "" {
		if err := diagnostics.WriteModeHistogram(*modeHistogram, gb.PPUModeCycleTotals()); err != nil {
			fmt.Fprintf(os.Stderr, "goboy: writing mode histogram: %v\n", err)
			os.Exit(1)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goboy: creating %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	img := scr.Image
	if *scale > 1 {
		img = scr.Upscale(*scale)
	}
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "goboy: encoding png: %v\n", err)
		os.Exit(1)
	}
}
