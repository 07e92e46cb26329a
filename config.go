package vantage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// CameraConfig holds the camera's starting pose and projection. Zero fields
// keep the DefaultCamera values.
type CameraConfig struct {
	Eye         *[3]float32 `json:"eye,omitempty"`
	Target      *[3]float32 `json:"target,omitempty"`
	Up          *[3]float32 `json:"up,omitempty"`
	FovyDegrees float32     `json:"fovy,omitempty"`
	ZNear       float32     `json:"znear,omitempty"`
	ZFar        float32     `json:"zfar,omitempty"`
}

// Camera builds the configured camera. The configured pose also becomes the
// camera's home.
func (c CameraConfig) Camera() Camera {
	cam := DefaultCamera()
	if c.Eye != nil {
		cam.Eye = *c.Eye
	}
	if c.Target != nil {
		cam.Target = *c.Target
	}
	if c.Up != nil {
		cam.Up = *c.Up
	}
	if c.FovyDegrees > 0 {
		cam.FovyDegrees = c.FovyDegrees
	}
	if c.ZNear > 0 {
		cam.ZNear = c.ZNear
	}
	if c.ZFar > 0 {
		cam.ZFar = c.ZFar
	}
	cam.Home = cam.Pose()
	return cam
}

// RunConfig holds everything a host needs to start a session.
type RunConfig struct {
	Title       string            `json:"title"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	TPS         int               `json:"tps"` // 0 syncs updates with the display
	ShowFPS     bool              `json:"show_fps"`
	Debug       bool              `json:"debug"`
	LogLevel    string            `json:"log_level"`
	Screenshots ScreenshotOptions `json:"screenshots"`
	Script      string            `json:"script"`
	Headless    HeadlessConfig    `json:"headless"`
	Camera      CameraConfig      `json:"camera"`
}

// DefaultRunConfig returns the settings used when no file or flag says
// otherwise.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:       "vantage",
		Width:       1280,
		Height:      720,
		LogLevel:    "info",
		Screenshots: ScreenshotOptions{Dir: "screenshots", Format: FormatPNG},
		Headless:    HeadlessConfig{Hz: 60},
	}
}

// LoadConfig reads a JSON config file on top of DefaultRunConfig.
// Fields not set in the file keep their defaults.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width         int
	Height        int
	TPS           int
	ShowFPS       bool
	Debug         bool
	LogLevel      string
	ScreenshotDir string
	ScreenshotFmt string
	Script        string
	Headless      bool
	Ticks         uint64
}

// Resolve applies CLI overrides and fills any fields still invalid with
// defaults. Non-zero flags win over the file.
func (c *RunConfig) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.TPS > 0 {
		c.TPS = flags.TPS
	}
	if flags.ShowFPS {
		c.ShowFPS = true
	}
	if flags.Debug {
		c.Debug = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.ScreenshotDir != "" {
		c.Screenshots.Dir = flags.ScreenshotDir
	}
	if flags.ScreenshotFmt != "" {
		c.Screenshots.Format = flags.ScreenshotFmt
	}
	if flags.Script != "" {
		c.Script = flags.Script
	}
	if flags.Headless {
		c.Headless.Enabled = true
	}
	if flags.Ticks > 0 {
		c.Headless.Ticks = flags.Ticks
	}

	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TPS < 0 {
		c.TPS = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Screenshots.Dir == "" {
		c.Screenshots.Dir = def.Screenshots.Dir
	}
	if c.Screenshots.Format == "" {
		c.Screenshots.Format = def.Screenshots.Format
	}
	if c.Screenshots.Scale < 0 {
		c.Screenshots.Scale = 0
	}
	if c.Headless.Hz <= 0 {
		c.Headless.Hz = def.Headless.Hz
	}
	if c.Headless.Width == 0 {
		c.Headless.Width = uint32(c.Width)
	}
	if c.Headless.Height == 0 {
		c.Headless.Height = uint32(c.Height)
	}
	if c.Debug {
		c.LogLevel = "debug"
	}
}

// Level parses LogLevel. Unknown names fall back to info.
func (c RunConfig) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
