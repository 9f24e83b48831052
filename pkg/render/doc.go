// Package render converts commonui vdom trees to HTML for the desktop host.
//
// Each node kind maps to one element:
//
//   - Box: <div class="cu-box">
//   - Clickable: <div class="cu-clickable" role="button" data-hid="hN">,
//     with data-on-* markers for wired handlers and tabindex when
//     clickable, aria-disabled when inert
//   - Icon: <span class="cu-icon" data-icon=... data-size=...>
//   - Text: <span class="cu-text cu-text-body-semibold">escaped text</span>
//
// Styles are serialised inline with styles.CSS.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// Handlers collected during rendering are available through Handlers and
// Dispatch, keyed by hydration ID and event name.
package render
