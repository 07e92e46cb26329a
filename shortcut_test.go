package vantage

import "testing"

func TestShortcutExactModifiers(t *testing.T) {
	save := KeyboardShortcut{ModCtrl, KeyS}
	tests := []struct {
		name string
		in   KeyInput
		want bool
	}{
		{"ctrl+s", KeyInput{Key: KeyS, Modifiers: ModCtrl}, true},
		{"plain s", KeyInput{Key: KeyS}, false},
		{"ctrl+shift+s", KeyInput{Key: KeyS, Modifiers: ModCtrl | ModShift}, false},
		{"ctrl+o", KeyInput{Key: KeyO, Modifiers: ModCtrl}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := save.Matches(tt.in); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShortcutString(t *testing.T) {
	s := KeyboardShortcut{ModCtrl | ModShift, KeyS}
	if got := s.String(); got != "Ctrl+Shift+S" {
		t.Errorf("String() = %q, want Ctrl+Shift+S", got)
	}
}

func TestConsumeShortcutOnce(t *testing.T) {
	keys := []KeyInput{
		{Key: KeyS, Modifiers: ModCtrl},
		{Key: KeyS, Modifiers: ModCtrl},
	}
	s := KeyboardShortcut{ModCtrl, KeyS}
	keys, ok := consumeShortcut(keys, s)
	if !ok || len(keys) != 1 {
		t.Fatalf("first consume: ok=%v len=%d, want true 1", ok, len(keys))
	}
	keys, ok = consumeShortcut(keys, s)
	if !ok || len(keys) != 0 {
		t.Fatalf("second consume: ok=%v len=%d, want true 0", ok, len(keys))
	}
	if _, ok = consumeShortcut(keys, s); ok {
		t.Error("consume on empty input should fail")
	}
}

func TestDefaultShortcutSignals(t *testing.T) {
	want := map[KeyboardShortcut]Signal{
		{ModCtrl, KeyQ}:            SignalQuit,
		{ModCtrl, KeyN}:            SignalNewFile,
		{ModCtrl, KeyO}:            SignalOpenFile,
		{ModCtrl, KeyS}:            SignalSaveFile,
		{ModCtrl | ModShift, KeyS}: SignalSaveFileAs,
	}
	got := DefaultShortcuts()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for _, b := range got {
		if want[b.Shortcut] != b.Signal {
			t.Errorf("%v -> %v, want %v", b.Shortcut, b.Signal, want[b.Shortcut])
		}
	}
}
