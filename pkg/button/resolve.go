package button

import (
	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/styles"
)

// Sentinels for errors.Is. Errors returned by this package are
// *errors.Error values carrying one of these codes.
var (
	ErrUnknownType           = errors.New(errors.CodeUnknownType)
	ErrUnsupportedVariant    = errors.New(errors.CodeUnsupportedVariant)
	ErrUnknownBackgroundMode = errors.New(errors.CodeUnknownBackgroundMode)
)

// Resolve returns the base container and label styles of (t, m) on p.
// The returned styles are copies and may be modified by the caller.
func Resolve(p styles.Platform, t Type, m BackgroundMode) (container, label styles.Style, err error) {
	if !t.Valid() {
		return nil, nil, errors.New(errors.CodeUnknownType).WithDetailf("type value %d is out of range", t)
	}
	if !m.Valid() {
		return nil, nil, errors.New(errors.CodeUnknownBackgroundMode).WithDetailf("background mode value %d is out of range", m)
	}

	if !IsSupported(t, m) {
		return nil, nil, errors.New(errors.CodeUnsupportedVariant).
			WithDetailf("type %s does not support background mode %s (key %q)", t, m, ContainerKey(t, m))
	}

	th := themeFor(p)
	ck := ContainerKey(t, m)
	c, ok := th.container[ck]
	if !ok {
		return nil, nil, unsupported(t, m, "container", ck)
	}
	lk := LabelKey(t, m)
	l, ok := th.label[lk]
	if !ok {
		return nil, nil, unsupported(t, m, "label", lk)
	}
	return c.Clone(), l.Clone(), nil
}

func unsupported(t Type, m BackgroundMode, table, key string) error {
	return errors.New(errors.CodeUnsupportedVariant).
		WithDetailf("no %s style %q for type %s with background mode %s", table, key, t, m)
}
