package vantage

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vantage.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"title": "scene", "headless": {"ticks": 30}}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "scene" {
		t.Errorf("Title = %q, want scene", cfg.Title)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.Headless.Ticks != 30 || cfg.Headless.Hz != 60 {
		t.Errorf("headless = %+v, want ticks 30 hz 60", cfg.Headless)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.HasPrefix(err.Error(), "config: read") {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{`)); err == nil || !strings.HasPrefix(err.Error(), "config: parse") {
		t.Errorf("bad json err = %v", err)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Width = 1024
	cfg.Script = "file.json"
	cfg.Resolve(Flags{Width: 640, Headless: true, Ticks: 10, LogLevel: "warn"})

	if cfg.Width != 640 {
		t.Errorf("Width = %d, want flag value 640", cfg.Width)
	}
	if cfg.Height != 720 {
		t.Errorf("Height = %d, want 720", cfg.Height)
	}
	if cfg.Script != "file.json" {
		t.Errorf("Script = %q, want file value", cfg.Script)
	}
	if !cfg.Headless.Enabled || cfg.Headless.Ticks != 10 {
		t.Errorf("headless = %+v", cfg.Headless)
	}
	if cfg.Headless.Width != 640 || cfg.Headless.Height != 720 {
		t.Errorf("headless size = %dx%d, want window size", cfg.Headless.Width, cfg.Headless.Height)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", cfg.Level())
	}
}

func TestResolveFillsInvalid(t *testing.T) {
	cfg := RunConfig{Width: -5, TPS: -1}
	cfg.Resolve(Flags{})
	def := DefaultRunConfig()
	if cfg.Title != def.Title || cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("resolved = %+v", cfg)
	}
	if cfg.TPS != 0 || cfg.Headless.Hz != 60 || cfg.Screenshots.Dir != "screenshots" || cfg.Screenshots.Format != FormatPNG {
		t.Errorf("resolved = %+v", cfg)
	}
}

func TestResolveDebugForcesDebugLevel(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Resolve(Flags{Debug: true})
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
}

func TestCameraConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"camera": {"eye": [0, 5, 10], "fovy": 60}}`))
	if err != nil {
		t.Fatal(err)
	}
	cam := cfg.Camera.Camera()
	if cam.Eye != (mgl32.Vec3{0, 5, 10}) || cam.FovyDegrees != 60 {
		t.Errorf("camera = %+v", cam)
	}
	if cam.ZFar != 100 || cam.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("unset fields lost defaults: %+v", cam)
	}
	if cam.Home.Eye != cam.Eye {
		t.Errorf("home = %v, want configured eye", cam.Home.Eye)
	}
}

func TestScreenshotConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"screenshots": {"format": "webp", "scale": -1}}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{ScreenshotDir: "out"})
	want := ScreenshotOptions{Dir: "out", Format: FormatWebP}
	if cfg.Screenshots != want {
		t.Errorf("screenshots = %+v, want %+v", cfg.Screenshots, want)
	}
}
