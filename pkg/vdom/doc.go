// Package vdom provides the render tree that commonui components produce.
//
// Components are stateless: each render builds a fresh VNode tree from
// props. The host UI consumes the tree through its own primitives, one per
// node kind:
//
//	Box        layout container, passes children through
//	Clickable  hit-testing region with click and hover handlers
//	Icon       named glyph with a size category and color
//	Text       text run with a named text type
//
// Trees are built with the constructor helpers:
//
//	ClickableBox(style, Handlers{OnClick: save},
//	    Box(rowStyle,
//	        Icon("iconfont-check", SizeSmall, styles.White, nil),
//	        Text(TextBodySemibold, labelStyle, "Save"),
//	    ),
//	)
//
// A Clickable node with a nil OnClick is inert: Fire(EventClick) on it
// invokes nothing.
package vdom
