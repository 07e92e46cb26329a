package vantage

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	vp := NewViewport()
	vp.Resize(Size{}, 1)
	if !strings.Contains(buf.String(), "rejected zero-area resize") {
		t.Errorf("log output = %q, want rejected resize warning", buf.String())
	}
}

func TestSignalQueueDrain(t *testing.T) {
	var q SignalQueue
	q.Send(SignalNewFile)
	q.Send(SignalQuit)
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != SignalNewFile || got[1] != SignalQuit {
		t.Errorf("Drain = %v, want [new-file quit]", got)
	}
	if q.Len() != 0 {
		t.Error("queue not empty after Drain")
	}
}
