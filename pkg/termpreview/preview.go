// Package termpreview draws commonui render trees as terminal swatches with
// lipgloss. It is a preview aid, not a host: layout is approximated to
// character cells.
package termpreview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// cellWidth is the number of pixels one terminal column stands for.
const cellWidth = 8

// Glyphs used for nodes the terminal cannot draw.
const (
	IconGlyph    = "◆"
	SpinnerGlyph = "⠋"
)

// Options tune the preview.
type Options struct {
	// Width is the column count used for full-width buttons. Zero means 40.
	Width int

	// Canvas is the color translucent colors are blended over.
	// Defaults to white.
	Canvas styles.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 40
	}
	if o.Canvas == "" {
		o.Canvas = styles.White
	}
	return o
}

// Render draws a button tree rooted at a Clickable or Box node.
func Render(root *vdom.VNode, opts Options) string {
	opts = opts.withDefaults()
	if root == nil {
		return ""
	}

	style := root.Style
	ls := lipgloss.NewStyle()

	if c, ok := blend(style.Color("backgroundColor"), opts.Canvas); ok {
		ls = ls.Background(c)
	}
	if px, ok := style.Number("paddingLeft"); ok {
		ls = ls.PaddingLeft(cells(px))
	}
	if px, ok := style.Number("paddingRight"); ok {
		ls = ls.PaddingRight(cells(px))
	}
	if bw, ok := style.Number("borderWidth"); ok && bw > 0 {
		ls = ls.Border(lipgloss.RoundedBorder())
		if c, ok := blend(style.Color("borderColor"), opts.Canvas); ok {
			ls = ls.BorderForeground(c)
		}
	}
	if op, ok := style.Number("opacity"); ok && op < 1 {
		ls = ls.Faint(true)
	}
	if grow, ok := style.Number("flexGrow"); ok && grow > 0 {
		ls = ls.Width(opts.Width).Align(lipgloss.Center)
	}
	if h, ok := style.Number("height"); ok && h >= 40 {
		ls = ls.Height(3).AlignVertical(lipgloss.Center)
	}

	content, fg := flatten(root, opts)
	if fg != nil {
		ls = ls.Foreground(fg)
	}
	return ls.Render(content)
}

// flatten turns the content row into a single line of text and returns the
// foreground color of the first visible label.
func flatten(root *vdom.VNode, opts Options) (string, lipgloss.TerminalColor) {
	var (
		parts   []string
		fg      lipgloss.TerminalColor
		spinner bool
	)

	vdom.Walk(root, func(n *vdom.VNode, _ int) bool {
		switch n.Kind {
		case vdom.KindText:
			if fg == nil {
				if c, ok := blend(n.Style.Color("color"), opts.Canvas); ok {
					fg = c
				}
			}
			parts = append(parts, visible(n, n.Text))
		case vdom.KindIcon:
			if n.Icon == vdom.IconProgressGreyAnimated || n.Icon == vdom.IconProgressWhiteAnimated {
				spinner = true
				return false
			}
			parts = append(parts, visible(n, IconGlyph))
		}
		return true
	})

	line := strings.Join(parts, " ")
	if spinner {
		line = overlay(line, SpinnerGlyph)
	}
	return line, fg
}

// visible blanks s when the node is fully transparent, keeping its width.
func visible(n *vdom.VNode, s string) string {
	if op, ok := n.Style.Number("opacity"); ok && op == 0 {
		return strings.Repeat(" ", lipgloss.Width(s))
	}
	return s
}

// overlay centers glyph over line.
func overlay(line, glyph string) string {
	runes := []rune(line)
	if len(runes) == 0 {
		return glyph
	}
	mid := (len(runes) - 1) / 2
	runes[mid] = []rune(glyph)[0]
	return string(runes)
}

func cells(px float64) int {
	return int(math.Round(px / cellWidth))
}

// blend converts a token color to a terminal color. rgba colors are
// composited over canvas.
func blend(c, canvas styles.Color) (lipgloss.TerminalColor, bool) {
	if c == "" {
		return nil, false
	}
	s := string(c)
	if strings.HasPrefix(s, "#") {
		return lipgloss.Color(s), true
	}

	var r, g, b int
	var a float64
	if _, err := fmt.Sscanf(s, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
		return nil, false
	}
	cr, cg, cb, ok := hexRGB(string(canvas))
	if !ok {
		cr, cg, cb = 255, 255, 255
	}
	mix := func(fgc, bgc int) int {
		return int(math.Round(float64(fgc)*a + float64(bgc)*(1-a)))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(r, cr), mix(g, cg), mix(b, cb))), true
}

func hexRGB(s string) (r, g, b int, ok bool) {
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}
