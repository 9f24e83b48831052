// Package button implements the commonui Button component.
//
// A button is a pure function of its Props: Render resolves the variant
// (Type plus BackgroundMode) to base container and label styles by table
// lookup, layers the state styles (full width, small, icon, disabled,
// waiting) and the caller's overrides on top, and returns a vdom tree.
//
//	node, err := button.Render(styles.Electron, button.Props{
//	    Type:    button.Primary,
//	    Label:   "Save",
//	    OnClick: save,
//	})
//
// Only the pairs listed by Supported have style rows. Any other pair fails
// with ErrUnsupportedVariant instead of rendering an unstyled button. The
// style tables are built once per platform at init and checked against
// Supported; a mismatch panics at startup.
//
// A disabled or waiting button renders with a nil click handler, so the
// host's clickable region is inert.
package button
