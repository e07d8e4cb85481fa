// Command mandelbrot is an interactive Mandelbrot set viewer.
//
// Usage:
//
//	mandelbrot [flags]
//
// The viewer opens a native window when a display is available, falls back
// to the terminal, and renders headlessly to a PNG file otherwise. Use
// -surface to choose explicitly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/gogpu/mandelbrot"
	_ "github.com/gogpu/mandelbrot/integration/gpuwindow" // registers the "window" surface
	"github.com/gogpu/mandelbrot/surface"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	surface    string
	width      int
	height     int
	iterations int
	workers    int
	iterMode   string
	hue        float64
	frames     int
	out        string
	fps        int
	logLevel   string
	logFile    string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.surface, "surface", "auto", "Surface: auto, "+strings.Join(surface.List(), ", "))
	fs.IntVar(&o.width, "width", mandelbrot.DefaultWidth, "Canvas width in pixels")
	fs.IntVar(&o.height, "height", mandelbrot.DefaultHeight, "Canvas height in pixels")
	fs.IntVar(&o.iterations, "iterations", mandelbrot.DefaultMaxIterations, "Initial iteration budget")
	fs.IntVar(&o.workers, "workers", 0, "Render workers (0 = GOMAXPROCS)")
	fs.StringVar(&o.iterMode, "iter-mode", mandelbrot.IterationStep.String(), "Iteration control: step or rate")
	fs.Float64Var(&o.hue, "hue", mandelbrot.DefaultHue, "Palette hue in degrees")
	fs.IntVar(&o.frames, "frames", 1, "Frames to render (image surface)")
	fs.StringVar(&o.out, "out", surface.DefaultOut, "Output PNG path (image surface)")
	fs.IntVar(&o.fps, "fps", surface.DefaultMaxFPS, "Frame rate cap (terminal surface, <0 uncapped)")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&o.logFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.BoolVar(&o.version, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "mandelbrot - interactive Mandelbrot set viewer\n\n")
		fmt.Fprintf(stderr, "Usage: mandelbrot [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mandelbrot                              Best available surface\n")
		fmt.Fprintf(stderr, "  mandelbrot -surface terminal -fps 20    Render in the terminal\n")
		fmt.Fprintf(stderr, "  mandelbrot -surface image -out m.png    Write one frame to m.png\n")
	}

	err := fs.Parse(args)
	return o, err
}

func (o options) config() (*mandelbrot.Config, error) {
	mode, err := mandelbrot.ParseIterationMode(o.iterMode)
	if err != nil {
		return nil, err
	}
	return mandelbrot.NewConfig(
		mandelbrot.WithSize(o.width, o.height),
		mandelbrot.WithMaxIterations(o.iterations),
		mandelbrot.WithWorkers(o.workers),
		mandelbrot.WithIterationMode(mode),
		mandelbrot.WithHue(o.hue),
	)
}

// setupLogging installs a text logger for the viewer and gg. The returned
// function closes the log file, if any.
func setupLogging(level, path string, stderr io.Writer) (func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}

	w, closeFn := stderr, func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	mandelbrot.SetLogger(logger)
	gg.SetLogger(logger.With("component", "gg"))
	return closeFn, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.version {
		fmt.Fprintf(stdout, "mandelbrot %s\n", mandelbrot.Version)
		return 0
	}

	closeLog, err := setupLogging(o.logLevel, o.logFile, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := o.config()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	host, err := surface.NewHostByName(o.surface, surface.Options{
		Title:  "Mandelbrot",
		Frames: o.frames,
		Out:    o.out,
		MaxFPS: o.fps,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer host.Close()

	viewer := mandelbrot.NewViewer(cfg)
	defer viewer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx, viewer); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
