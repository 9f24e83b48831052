package vdom

import "github.com/vango-dev/commonui/pkg/styles"

// compact drops nil children so callers can pass If(...) results directly.
func compact(children []*VNode) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Box creates a layout container.
func Box(style styles.Style, children ...*VNode) *VNode {
	return &VNode{
		Kind:     KindBox,
		Style:    style,
		Children: compact(children),
	}
}

// ClickableBox creates a hit-testing region. A nil OnClick makes the region
// inert.
func ClickableBox(style styles.Style, handlers Handlers, children ...*VNode) *VNode {
	return &VNode{
		Kind:     KindClickable,
		Style:    style,
		Children: compact(children),
		Handlers: handlers,
	}
}

// Icon creates an icon glyph.
func Icon(icon IconType, size SizeType, color styles.Color, style styles.Style) *VNode {
	return &VNode{
		Kind:     KindIcon,
		Icon:     icon,
		IconSize: size,
		Color:    color,
		Style:    style,
	}
}

// Text creates a styled text run.
func Text(textType TextType, style styles.Style, content string) *VNode {
	return &VNode{
		Kind:     KindText,
		TextType: textType,
		Style:    style,
		Text:     content,
	}
}
