// Package ebitenhost runs a vantage frame coordinator inside an
// [Ebitengine] window.
//
// [Game] implements [ebiten.Game]. Update polls mouse, keyboard and window
// state, feeds the coordinator as events and ticks it. Draw issues the
// redraw request, which renders the wireframe scene and the debug overlay
// through [Backend]. Layout reports the window size in physical pixels and
// turns size or scale changes into resize events.
//
//	cfg := vantage.DefaultRunConfig()
//	if err := ebitenhost.Run(cfg, nil); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
