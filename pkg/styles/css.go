package styles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// unitless lists numeric properties that take no px suffix.
var unitless = map[string]bool{
	"opacity":    true,
	"flexGrow":   true,
	"flexShrink": true,
	"flex":       true,
	"zIndex":     true,
	"fontWeight": true,
}

// CSS serialises a style as an inline CSS declaration list.
// Properties are emitted in sorted order, names are converted to kebab case
// and numeric dimensions get a px suffix.
func CSS(s Style) string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k, v := range s {
		if v == nil || v == Unset {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kebab(k))
		b.WriteString(": ")
		b.WriteString(cssValue(k, s[k]))
		b.WriteByte(';')
	}
	return b.String()
}

func cssValue(key string, v any) string {
	switch n := v.(type) {
	case int:
		return number(key, float64(n))
	case int64:
		return number(key, float64(n))
	case float32:
		return number(key, float64(n))
	case float64:
		return number(key, n)
	case Color:
		return string(n)
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}

func number(key string, n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if unitless[key] || n == 0 {
		return s
	}
	return s + "px"
}

// kebab converts a camelCase property name to kebab case.
func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
