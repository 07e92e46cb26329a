// Command vantage opens the interactive viewport with its debug overlay.
//
// Usage:
//
//	vantage [-config vantage.json] [-width 1280] [-height 720] [-fps]
//	vantage -headless -script smoke.json
//
// Flags override values from the config file. With -headless no window is
// opened; frames are driven on a ticker and rendered by a recording backend,
// which is how scripted runs execute in CI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/vantage"
	"github.com/phanxgames/vantage/ebitenhost"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	width := flag.Int("width", 0, "Window width in logical pixels (default: 1280)")
	height := flag.Int("height", 0, "Window height in logical pixels (default: 720)")
	tps := flag.Int("tps", 0, "Updates per second (default: sync with display)")
	showFPS := flag.Bool("fps", false, "Show the FPS readout")
	debug := flag.Bool("debug", false, "Log per-frame timings")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (default: info)")
	shotDir := flag.String("screenshots", "", "Screenshot directory (default: screenshots)")
	shotFmt := flag.String("screenshot-format", "", "Screenshot format: png or webp (default: png)")
	script := flag.String("script", "", "Path to a JSON test script to replay")
	headless := flag.Bool("headless", false, "Run without a window")
	ticks := flag.Uint64("ticks", 0, "Stop a headless run after N ticks")

	flag.Parse()

	cfg := vantage.DefaultRunConfig()
	if *configFile != "" {
		var err error
		cfg, err = vantage.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(vantage.Flags{
		Width:         *width,
		Height:        *height,
		TPS:           *tps,
		ShowFPS:       *showFPS,
		Debug:         *debug,
		LogLevel:      *logLevel,
		ScreenshotDir: *shotDir,
		ScreenshotFmt: *shotFmt,
		Script:        *script,
		Headless:      *headless,
		Ticks:         *ticks,
	})

	vantage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	var runner *vantage.TestRunner
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		runner, err = vantage.LoadTestScript(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
	}

	var err error
	if cfg.Headless.Enabled {
		err = runHeadless(cfg, runner)
	} else {
		err = ebitenhost.Run(cfg, runner)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(cfg vantage.RunConfig, runner *vantage.TestRunner) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := &vantage.HeadlessBackend{}
	if runner != nil {
		runner.Screenshots = backend
	}
	cam := cfg.Camera.Camera()
	fc := vantage.NewFrameCoordinator(vantage.CoordinatorConfig{
		Backend: backend,
		Camera:  &cam,
		Debug:   cfg.Debug,
	})

	err := vantage.RunHeadless(ctx, fc, runner, cfg.Headless)
	vantage.Logger().Info("headless: done",
		slog.Int("frames", backend.Frames), slog.Int("screenshots", len(backend.Captured)))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
