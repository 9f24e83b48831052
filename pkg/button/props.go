package button

import (
	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// Props configures a Button. Props are read once per render; the button
// keeps no state between renders.
type Props struct {
	Type           Type
	BackgroundMode BackgroundMode

	Disabled  bool
	Waiting   bool // shows the loading indicator and hides the content
	Small     bool
	FullWidth bool

	Icon     vdom.IconType // optional
	Label    string        // optional
	Children []*vdom.VNode // optional, rendered before the icon

	// Caller overrides, merged last.
	Style               styles.Style
	LabelContainerStyle styles.Style
	LabelStyle          styles.Style

	OnClick      vdom.Handler
	OnMouseEnter vdom.Handler
	OnMouseLeave vdom.Handler
}

// Variant returns the (type, background mode) pair of p.
func (p Props) Variant() Variant {
	return Variant{Type: p.Type, Mode: p.BackgroundMode}
}

// Inert reports whether clicks are ignored.
func (p Props) Inert() bool {
	return p.Disabled || p.Waiting
}

// Validate checks that the variant of p has a style row.
func Validate(p Props) error {
	_, _, err := Resolve(styles.Electron, p.Type, p.BackgroundMode)
	return err
}
