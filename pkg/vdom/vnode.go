package vdom

import "github.com/vango-dev/commonui/pkg/styles"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindBox       VKind = iota // Layout container
	KindClickable              // Hit-testing region
	KindIcon                   // Named glyph
	KindText                   // Styled text run
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindClickable:
		return "Clickable"
	case KindIcon:
		return "Icon"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is a node of the render tree handed to the host UI.
type VNode struct {
	Kind     VKind        // Node type
	Style    styles.Style // Resolved style for this node
	Children []*VNode     // Child nodes (Box and Clickable only)
	Key      string       // Optional identity for the host's reconciler

	Text     string   // For KindText
	TextType TextType // For KindText

	Icon     IconType     // For KindIcon
	IconSize SizeType     // For KindIcon
	Color    styles.Color // For KindIcon

	Handlers Handlers // For KindClickable
}

// IsInteractive returns true if this node is a clickable region with a
// click handler wired.
func (v *VNode) IsInteractive() bool {
	return v != nil && v.Kind == KindClickable && v.Handlers.OnClick != nil
}

// TextType names a text style (controls font weight and size).
type TextType string

const (
	TextBody              TextType = "Body"
	TextBodySemibold      TextType = "BodySemibold"
	TextBodySmall         TextType = "BodySmall"
	TextBodySmallSemibold TextType = "BodySmallSemibold"
)

// IconType is a named icon identifier.
type IconType string

// Icons referenced directly by components. Callers may use any other name.
const (
	IconProgressWhiteAnimated IconType = "icon-progress-white-animated"
	IconProgressGreyAnimated  IconType = "icon-progress-grey-animated"
)

// SizeType is an icon size category.
type SizeType string

const (
	SizeDefault SizeType = "Default"
	SizeSmall   SizeType = "Small"
	SizeBig     SizeType = "Big"
)
