package button

import (
	"fmt"

	"github.com/vango-dev/commonui/pkg/styles"
)

// Variant is a (type, background mode) pair.
type Variant struct {
	Type Type
	Mode BackgroundMode
}

// String returns "Type" for Normal variants and "Type/Mode" otherwise.
func (v Variant) String() string {
	if v.Mode == Normal {
		return v.Type.String()
	}
	return v.Type.String() + "/" + v.Mode.String()
}

// ColoredModes are the background modes the *ColoredBackground types accept.
func ColoredModes() []BackgroundMode {
	return []BackgroundMode{Black, Blue, Green, Purple, Red}
}

// Supported lists every variant with a style row, in a stable order.
// Any other pair is rejected by Resolve.
func Supported() []Variant {
	out := []Variant{
		{Primary, Normal},
		{PrimaryPrivate, Normal},
		{Secondary, Normal},
		{Secondary, Terminal},
		{Danger, Normal},
		{Wallet, Normal},
		{PrimaryGreen, Normal},
		{PrimaryGreenActive, Normal},
	}
	for _, m := range ColoredModes() {
		out = append(out, Variant{PrimaryColoredBackground, m})
	}
	for _, m := range ColoredModes() {
		out = append(out, Variant{SecondaryColoredBackground, m})
	}
	return out
}

// supportedSet indexes Supported. Keys alone cannot decide membership:
// (Primary, Green) derives "PrimaryGreen", the container key of
// PrimaryGreen/Normal.
var supportedSet = func() map[Variant]bool {
	set := make(map[Variant]bool)
	for _, v := range Supported() {
		set[v] = true
	}
	return set
}()

// IsSupported reports whether (t, m) is one of Supported.
func IsSupported(t Type, m BackgroundMode) bool {
	return supportedSet[Variant{Type: t, Mode: m}]
}

// Heights are the container heights for one platform.
type Heights struct {
	Small     int
	Regular   int
	FullWidth int
}

// HeightsFor returns the container heights for p.
func HeightsFor(p styles.Platform) Heights {
	return Heights{
		Small:     styles.Pick(p, 24, 28),
		Regular:   styles.Pick(p, 28, 32),
		FullWidth: styles.Pick(p, 40, 48),
	}
}

// coloredLabelColors is the label color of PrimaryColoredBackground per mode.
var coloredLabelColors = map[BackgroundMode]styles.Color{
	Black:  styles.Black,
	Blue:   styles.Blue,
	Green:  styles.Green,
	Purple: styles.Purple,
	Red:    styles.Red,
}

// LabelColorFor returns the documented label color of a supported variant.
func LabelColorFor(v Variant) (styles.Color, bool) {
	switch {
	case v.Type == PrimaryColoredBackground:
		c, ok := coloredLabelColors[v.Mode]
		return c, ok
	case v.Type == SecondaryColoredBackground:
		_, ok := coloredLabelColors[v.Mode]
		return styles.White, ok
	case v.Type == Secondary && v.Mode == Terminal:
		return styles.White, true
	case v.Mode != Normal:
		return "", false
	case v.Type == Secondary:
		return styles.Black, true
	case v.Type == PrimaryGreenActive:
		return styles.Green, true
	case v.Type.Valid():
		return styles.White, true
	default:
		return "", false
	}
}

// theme holds every static style for one platform.
type theme struct {
	platform styles.Platform

	container map[string]styles.Style
	label     map[string]styles.Style

	fullWidth         styles.Style
	small             styles.Style
	icon              styles.Style
	iconWithLabel     styles.Style
	labelContainer    styles.Style
	opacity0          styles.Style
	opacity30         styles.Style
	progressContainer styles.Style
	progressNormal    styles.Style
	progressSmall     styles.Style
}

// themes is built once at init and never mutated.
var themes = func() [2]*theme {
	var out [2]*theme
	for i, p := range styles.Platforms() {
		th := newTheme(p)
		if err := th.checkCoverage(); err != nil {
			panic(err)
		}
		out[i] = th
	}
	return out
}()

func themeFor(p styles.Platform) *theme {
	if p.IsMobile() {
		return themes[1]
	}
	return themes[0]
}

func newTheme(p styles.Platform) *theme {
	h := HeightsFor(p)
	m := styles.Margins

	common := styles.PlatformStyles{
		Common: styles.FlexBoxColumn.Merge(styles.Style{
			"alignItems":     "center",
			"alignSelf":      "center",
			"borderRadius":   styles.BorderRadius,
			"height":         h.Regular,
			"justifyContent": "center",
		}),
		Electron: styles.Style{
			"display":      "inline-block",
			"lineHeight":   "inherit",
			"paddingLeft":  m.Medium,
			"paddingRight": m.Medium,
		},
		Mobile: styles.Style{
			"paddingLeft":  m.Small,
			"paddingRight": m.Small,
		},
	}.Resolve(p)

	commonLabel := styles.PlatformStyles{
		Common: styles.Style{
			"color":     styles.White,
			"textAlign": "center",
		},
		Electron: styles.Style{"whiteSpace": "pre"},
		Mobile: styles.Style{
			"position": "relative",
			"top":      2,
		},
	}.Resolve(p)

	bg := func(c styles.Color) styles.Style {
		return common.Merge(styles.Style{"backgroundColor": c})
	}
	fg := func(c styles.Color) styles.Style {
		return commonLabel.Merge(styles.Style{"color": c})
	}

	th := &theme{
		platform: p,
		container: map[string]styles.Style{
			"Danger":         bg(styles.Red),
			"Primary":        bg(styles.Blue),
			"PrimaryGreen":   bg(styles.Green),
			"PrimaryPrivate": bg(styles.DarkBlue2),
			"PrimaryGreenActive": styles.PlatformStyles{
				Common: common.Merge(styles.Style{
					"backgroundColor": styles.White,
					"borderColor":     styles.Green,
					"borderWidth":     2,
				}),
				Electron: styles.Style{"borderStyle": "solid"},
			}.Resolve(p),
			"Secondary":           bg(styles.LightGrey2),
			"SecondaryOnTerminal": bg(styles.Blue30),
			"Wallet":              bg(styles.Purple2),
		},
		label: map[string]styles.Style{
			"DangerLabel":              commonLabel,
			"PrimaryLabel":             commonLabel,
			"PrimaryGreenLabel":        commonLabel,
			"PrimaryPrivateLabel":      commonLabel,
			"PrimaryGreenActiveLabel":  fg(styles.Green),
			"SecondaryLabel":           fg(styles.Black),
			"SecondaryLabelOnTerminal": fg(styles.White),
			"WalletLabel":              commonLabel,
		},

		fullWidth: styles.Style{
			"alignSelf": styles.Unset,
			"flexGrow":  1,
			"height":    h.FullWidth,
			"width":     styles.Unset,
		},
		small: styles.Style{
			"borderRadius": styles.BorderRadius,
			"height":       h.Small,
			"paddingLeft":  m.XSmall,
			"paddingRight": m.XSmall,
		},
		icon: styles.Style{
			"paddingLeft":  m.XSmall,
			"paddingRight": m.XSmall,
		},
		iconWithLabel: styles.Style{
			"alignSelf":   "center",
			"marginRight": m.Tiny,
		},
		labelContainer:    styles.Style{"height": "100%", "position": "relative"},
		opacity0:          styles.Style{"opacity": 0},
		opacity30:         styles.Style{"opacity": 0.3},
		progressContainer: styles.Collapse(styles.FillAbsolute, styles.FlexBoxCenter),
		progressNormal:    styles.Style{"height": styles.Pick(p, 20, 28)},
		progressSmall:     styles.Style{"height": styles.Pick(p, 16, 24)},
	}

	for _, mode := range ColoredModes() {
		th.container[ContainerKey(PrimaryColoredBackground, mode)] = bg(styles.White)
		th.container[ContainerKey(SecondaryColoredBackground, mode)] = bg(styles.Black20)
		th.label[LabelKey(PrimaryColoredBackground, mode)] = fg(coloredLabelColors[mode])
		th.label[LabelKey(SecondaryColoredBackground, mode)] = fg(styles.White)
	}

	return th
}

// checkCoverage verifies that both tables hold exactly the supported set.
func (th *theme) checkCoverage() error {
	want := Supported()
	for _, v := range want {
		if _, ok := th.container[ContainerKey(v.Type, v.Mode)]; !ok {
			return fmt.Errorf("button: %s theme has no container style %q", th.platform, ContainerKey(v.Type, v.Mode))
		}
		if _, ok := th.label[LabelKey(v.Type, v.Mode)]; !ok {
			return fmt.Errorf("button: %s theme has no label style %q", th.platform, LabelKey(v.Type, v.Mode))
		}
	}
	if len(th.container) != len(want) || len(th.label) != len(want) {
		return fmt.Errorf("button: %s theme has %d container and %d label styles for %d variants",
			th.platform, len(th.container), len(th.label), len(want))
	}
	return nil
}
