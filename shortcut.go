package vantage

import "strings"

// KeyboardShortcut is a key plus the exact set of modifiers that must be held.
type KeyboardShortcut struct {
	Modifiers KeyModifiers
	Key       Key
}

// Matches reports whether a key press triggers the shortcut. Modifiers must
// match exactly, so Ctrl+S does not fire for Ctrl+Shift+S.
func (s KeyboardShortcut) Matches(k KeyInput) bool {
	return s.Key == k.Key && s.Modifiers == k.Modifiers
}

func (s KeyboardShortcut) String() string {
	var b strings.Builder
	if s.Modifiers&ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if s.Modifiers&ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if s.Modifiers&ModShift != 0 {
		b.WriteString("Shift+")
	}
	if s.Modifiers&ModMeta != 0 {
		b.WriteString("Meta+")
	}
	b.WriteString(s.Key.String())
	return b.String()
}

// ShortcutBinding ties a shortcut to the signal it raises.
type ShortcutBinding struct {
	Shortcut KeyboardShortcut
	Signal   Signal
}

// Shortcuts is an ordered shortcut table. Earlier bindings are matched first.
type Shortcuts []ShortcutBinding

// DefaultShortcuts returns the standard application bindings.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{
		{KeyboardShortcut{ModCtrl, KeyQ}, SignalQuit},
		{KeyboardShortcut{ModCtrl, KeyN}, SignalNewFile},
		{KeyboardShortcut{ModCtrl, KeyO}, SignalOpenFile},
		{KeyboardShortcut{ModCtrl, KeyS}, SignalSaveFile},
		{KeyboardShortcut{ModCtrl | ModShift, KeyS}, SignalSaveFileAs},
	}
}

// consumeShortcut removes the first key press in keys matching s and reports
// whether one was found. Each press can satisfy at most one shortcut.
func consumeShortcut(keys []KeyInput, s KeyboardShortcut) ([]KeyInput, bool) {
	for i, k := range keys {
		if s.Matches(k) {
			return append(keys[:i], keys[i+1:]...), true
		}
	}
	return keys, false
}
