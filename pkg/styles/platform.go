package styles

import (
	"fmt"
	"strings"
)

// Platform selects a style branch.
type Platform uint8

const (
	Electron Platform = iota // desktop
	Mobile
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Electron:
		return "electron"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// IsMobile reports whether p is a compact (mobile) form factor.
func (p Platform) IsMobile() bool { return p == Mobile }

// ParsePlatform parses a platform name. "desktop" is accepted as an alias
// for electron.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "electron", "desktop":
		return Electron, nil
	case "mobile", "native":
		return Mobile, nil
	default:
		return 0, fmt.Errorf("unknown platform %q", s)
	}
}

// Platforms lists every platform.
func Platforms() []Platform { return []Platform{Electron, Mobile} }

// PlatformStyles is a style with a shared branch and per-platform branches.
type PlatformStyles struct {
	Common   Style
	Electron Style
	Mobile   Style
}

// Resolve merges the common branch with the branch for p.
func (ps PlatformStyles) Resolve(p Platform) Style {
	if p.IsMobile() {
		return Collapse(ps.Common, ps.Mobile)
	}
	return Collapse(ps.Common, ps.Electron)
}

// Pick returns electron or mobile depending on p.
func Pick[T any](p Platform, electron, mobile T) T {
	if p.IsMobile() {
		return mobile
	}
	return electron
}
