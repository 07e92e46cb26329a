// Package vantage coordinates frames for an interactive 3D viewport with an
// immediate-mode debug overlay.
//
// The package owns the per-frame state a viewport needs: where the cursor is
// (in pixels and in normalized device coordinates), how large the drawable
// area is, and the camera looking into the scene. Raw platform input arrives
// as [Event] values; a [FrameCoordinator] applies them, asks a [Backend] to
// render, and decides from the returned [FrameOutcome] whether to carry on,
// reconfigure the surface, skip the frame, or shut down.
//
// # Quick start
//
// A host translates its native events and hands them to the coordinator:
//
//	fc := vantage.NewFrameCoordinator(vantage.CoordinatorConfig{
//		Backend: myBackend,
//	})
//	fc.Push(vantage.Resized{Width: 1280, Height: 720, ScaleFactor: 1})
//	fc.Push(vantage.CursorMoved{X: 640, Y: 360})
//	fc.Push(vantage.RedrawRequested{})
//	fc.Tick()
//	if fc.Terminated() {
//		return fc.Err()
//	}
//
// The ebitenhost package provides a ready-made host and backend for
// [Ebitengine]; [RunHeadless] drives a coordinator without a window.
//
// # Coordinate spaces
//
// Pixel coordinates have their origin at the top-left with Y down.
// Normalized device coordinates (NDC) have their origin at the viewport
// centre with +Y up; the viewport corners map to (-1, 1) and (1, -1).
//
// # Overlay
//
// The [OverlayBridge] draws a small debugger window listing the camera and
// cursor state. Camera fields are editable in place; edits land directly in
// the coordinator's [Camera] and are visible to the next
// [Camera.ViewProjectionMatrix] call. Keyboard shortcuts produce
// application [Signal] values delivered to a [SignalSink].
//
// # Scripted runs
//
// [LoadTestScript] parses a JSON list of steps (move, click, drag, key,
// text, wait, screenshot and so on). A [TestRunner] feeds them to the
// coordinator one frame at a time through the Inject methods, which makes
// the same script usable in a window and under [RunHeadless]:
//
//	{"steps": [
//		{"action": "resize", "width": 640, "height": 360},
//		{"action": "click", "x": 40, "y": 16},
//		{"action": "key", "key": "s", "mods": ["ctrl"]},
//		{"action": "screenshot", "label": "collapsed"}
//	]}
//
// Screenshots are written by [SaveScreenshot] as PNG or WebP.
//
// [Ebitengine]: https://ebitengine.org
package vantage
