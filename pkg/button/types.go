package button

import (
	"strings"

	"github.com/samber/lo"

	"github.com/vango-dev/commonui/internal/errors"
)

// Type is the base visual variant of a button.
type Type uint8

const (
	Primary Type = iota
	PrimaryPrivate
	Secondary
	Danger
	Wallet
	PrimaryGreen
	PrimaryGreenActive
	PrimaryColoredBackground
	SecondaryColoredBackground
	numTypes
)

var typeNames = [numTypes]string{
	Primary:                    "Primary",
	PrimaryPrivate:             "PrimaryPrivate",
	Secondary:                  "Secondary",
	Danger:                     "Danger",
	Wallet:                     "Wallet",
	PrimaryGreen:               "PrimaryGreen",
	PrimaryGreenActive:         "PrimaryGreenActive",
	PrimaryColoredBackground:   "PrimaryColoredBackground",
	SecondaryColoredBackground: "SecondaryColoredBackground",
}

// String returns the type name used in style table keys.
func (t Type) String() string {
	if t >= numTypes {
		return "Unknown"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool { return t < numTypes }

// Types lists every declared type in declaration order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType parses a type name, case-insensitively.
func ParseType(s string) (Type, error) {
	t, ok := lo.Find(Types(), func(t Type) bool {
		return strings.EqualFold(t.String(), strings.TrimSpace(s))
	})
	if !ok {
		return 0, errors.New(errors.CodeUnknownType).WithDetailf("%q is not a button type", s)
	}
	return t, nil
}

// BackgroundMode describes the surface a button sits on. The zero value is
// Normal.
type BackgroundMode uint8

const (
	Normal BackgroundMode = iota
	Terminal
	Red
	Green
	Blue
	Black
	Purple
	numModes
)

var modeNames = [numModes]string{
	Normal:   "Normal",
	Terminal: "Terminal",
	Red:      "Red",
	Green:    "Green",
	Blue:     "Blue",
	Black:    "Black",
	Purple:   "Purple",
}

// modeSuffixes is appended to table keys.
var modeSuffixes = [numModes]string{
	Normal:   "",
	Terminal: "OnTerminal",
	Red:      "Red",
	Green:    "Green",
	Blue:     "Blue",
	Black:    "Black",
	Purple:   "Purple",
}

// String returns the mode name.
func (m BackgroundMode) String() string {
	if m >= numModes {
		return "Unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m BackgroundMode) Valid() bool { return m < numModes }

// Suffix returns the table key suffix for m.
func (m BackgroundMode) Suffix() string {
	if m >= numModes {
		return ""
	}
	return modeSuffixes[m]
}

// BackgroundModes lists every declared mode in declaration order.
func BackgroundModes() []BackgroundMode {
	out := make([]BackgroundMode, numModes)
	for i := range out {
		out[i] = BackgroundMode(i)
	}
	return out
}

// ParseBackgroundMode parses a mode name, case-insensitively. The empty
// string parses as Normal.
func ParseBackgroundMode(s string) (BackgroundMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Normal, nil
	}
	m, ok := lo.Find(BackgroundModes(), func(m BackgroundMode) bool {
		return strings.EqualFold(m.String(), s)
	})
	if !ok {
		return 0, errors.New(errors.CodeUnknownBackgroundMode).WithDetailf("%q is not a background mode", s)
	}
	return m, nil
}

// ContainerKey returns the container style table key for (t, m).
func ContainerKey(t Type, m BackgroundMode) string {
	return t.String() + m.Suffix()
}

// LabelKey returns the label style table key for (t, m).
func LabelKey(t Type, m BackgroundMode) string {
	return t.String() + "Label" + m.Suffix()
}
