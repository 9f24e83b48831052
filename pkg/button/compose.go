package button

import (
	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// Resolved is the fully composed style state of one button render.
type Resolved struct {
	Variant Variant

	Container      styles.Style
	LabelContainer styles.Style
	Label          styles.Style // includes the caller's LabelStyle
	Icon           styles.Style

	IconColor styles.Color
	IconSize  vdom.SizeType
	TextType  vdom.TextType

	// OnClick is nil when the button is disabled or waiting.
	OnClick vdom.Handler

	Spinner          vdom.IconType
	SpinnerStyle     styles.Style
	SpinnerContainer styles.Style
}

// Compose resolves the variant of props on platform p and layers the state
// styles on top, in this order:
//
//  1. fullWidth
//  2. small (after fullWidth, so its height wins)
//  3. icon padding
//  4. opacity 0.3 when disabled or waiting
//  5. label and icon opacity 0 when waiting
//  6. caller Style, LabelContainerStyle and LabelStyle
func Compose(p styles.Platform, props Props) (*Resolved, error) {
	container, label, err := Resolve(p, props.Type, props.BackgroundMode)
	if err != nil {
		return nil, err
	}
	th := themeFor(p)

	if props.FullWidth {
		container = styles.Collapse(container, th.fullWidth)
	}
	if props.Small {
		container = styles.Collapse(container, th.small)
	}
	if props.Icon != "" {
		container = styles.Collapse(container, th.icon)
	}
	if props.Disabled || props.Waiting {
		container = styles.Collapse(container, th.opacity30)
	}

	var icon styles.Style
	if props.Label != "" {
		icon = th.iconWithLabel.Clone()
	}
	if props.Waiting {
		label = styles.Collapse(label, th.opacity0)
		icon = styles.Collapse(icon, th.opacity0)
	}

	iconColor := label.Color("color")
	if iconColor == styles.Black && props.Label != "" {
		iconColor = styles.Black50
	}

	iconSize := vdom.SizeDefault
	if p.IsMobile() || props.Label != "" {
		iconSize = vdom.SizeSmall
	}

	textType := vdom.TextBodySemibold
	if props.Small {
		textType = vdom.TextBodySmallSemibold
	}

	var onClick vdom.Handler
	if !props.Inert() {
		onClick = props.OnClick
	}

	spinnerStyle := th.progressNormal
	if props.Small {
		spinnerStyle = th.progressSmall
	}

	return &Resolved{
		Variant:          props.Variant(),
		Container:        styles.Collapse(container, props.Style),
		LabelContainer:   styles.Collapse(styles.FlexBoxRow, styles.FlexBoxCenter, th.labelContainer, props.LabelContainerStyle),
		Label:            styles.Collapse(label, props.LabelStyle),
		Icon:             icon,
		IconColor:        iconColor,
		IconSize:         iconSize,
		TextType:         textType,
		OnClick:          onClick,
		Spinner:          spinnerIcon(props.Type),
		SpinnerStyle:     spinnerStyle.Clone(),
		SpinnerContainer: th.progressContainer.Clone(),
	}, nil
}

// spinnerIcon picks the grey indicator for light backgrounds and the white
// one otherwise.
func spinnerIcon(t Type) vdom.IconType {
	switch t {
	case PrimaryGreenActive, Secondary, PrimaryColoredBackground:
		return vdom.IconProgressGreyAnimated
	default:
		return vdom.IconProgressWhiteAnimated
	}
}
