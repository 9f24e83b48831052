package button

import (
	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// Render builds the render tree of a button on platform p:
//
//	Clickable (container style, gated click, hover handlers)
//	└── Box (row, centered)
//	    ├── children   (omitted while waiting)
//	    ├── Icon       (when props.Icon is set)
//	    ├── Text       (when props.Label is set)
//	    └── Box > Icon (loading indicator, while waiting)
//
// It fails only when the variant has no style row.
func Render(p styles.Platform, props Props) (*vdom.VNode, error) {
	r, err := Compose(p, props)
	if err != nil {
		return nil, err
	}

	content := make([]*vdom.VNode, 0, len(props.Children)+3)
	if !props.Waiting {
		content = append(content, props.Children...)
	}
	if props.Icon != "" {
		content = append(content, vdom.Icon(props.Icon, r.IconSize, r.IconColor, r.Icon))
	}
	if props.Label != "" {
		content = append(content, vdom.Text(r.TextType, r.Label, props.Label))
	}
	if props.Waiting {
		content = append(content, Progress(r))
	}

	return vdom.ClickableBox(r.Container, vdom.Handlers{
		OnClick:      r.OnClick,
		OnMouseEnter: props.OnMouseEnter,
		OnMouseLeave: props.OnMouseLeave,
	}, vdom.Box(r.LabelContainer, content...)), nil
}

// MustRender is like Render but panics on an unsupported variant. Use it for
// variants fixed at compile time.
func MustRender(p styles.Platform, props Props) *vdom.VNode {
	node, err := Render(p, props)
	if err != nil {
		panic(err)
	}
	return node
}

// Progress builds the loading indicator: an animated icon centered over the
// whole button.
func Progress(r *Resolved) *vdom.VNode {
	return vdom.Box(r.SpinnerContainer,
		vdom.Icon(r.Spinner, vdom.SizeDefault, "", r.SpinnerStyle),
	)
}
