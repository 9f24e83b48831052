package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// ClassPrefix is prepended to every generated class name.
	// Defaults to "cu-".
	ClassPrefix string
}

// Renderer renders vdom trees to HTML for the desktop (electron) host.
//
// Interactive regions get a data-hid attribute; their handlers are kept in
// a registry keyed "hid_event" so a host bridge can dispatch DOM events back
// to Go. A Renderer is not safe for concurrent use.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   map[string]vdom.Handler
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.ClassPrefix == "" {
		config.ClassPrefix = "cu-"
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]vdom.Handler),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// Handlers returns the handler registry collected during rendering.
// The map keys are in the format "hid_event" (e.g., "h1_click").
func (r *Renderer) Handlers() map[string]vdom.Handler {
	return r.handlers
}

// Dispatch invokes the handler registered for hid and event. It reports
// whether a handler ran.
func (r *Renderer) Dispatch(hid, event string) bool {
	h, ok := r.handlers[hid+"_"+event]
	if !ok || h == nil {
		return false
	}
	h()
	return true
}

// Reset clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]vdom.Handler)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindBox:
		return r.renderContainer(w, node, depth, []attr{
			{"class", r.class("box")},
			{"style", styles.CSS(node.Style)},
		})
	case vdom.KindClickable:
		return r.renderContainer(w, node, depth, r.clickableAttrs(node))
	case vdom.KindIcon:
		return r.renderLeaf(w, node, depth, []attr{
			{"class", r.class("icon")},
			{"data-icon", string(node.Icon)},
			{"data-size", string(node.IconSize)},
			{"style", styles.CSS(iconStyle(node))},
		}, "")
	case vdom.KindText:
		return r.renderLeaf(w, node, depth, []attr{
			{"class", r.class("text") + " " + r.class("text-"+kebabType(string(node.TextType)))},
			{"style", styles.CSS(node.Style)},
		}, escapeHTML(node.Text))
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

type attr struct {
	key, value string
}

func (r *Renderer) class(name string) string {
	return r.config.ClassPrefix + name
}

func (r *Renderer) clickableAttrs(node *vdom.VNode) []attr {
	attrs := []attr{
		{"class", r.class("clickable")},
		{"role", "button"},
	}

	hid := r.nextHID()
	attrs = append(attrs, attr{"data-hid", hid})

	events := []vdom.Event{vdom.EventClick, vdom.EventMouseEnter, vdom.EventMouseLeave}
	for _, e := range events {
		if !node.Handlers.Wired(e) {
			continue
		}
		attrs = append(attrs, attr{"data-on-" + e.String(), "true"})
		r.handlers[hid+"_"+e.String()] = handlerFor(node.Handlers, e)
	}

	if node.Handlers.Wired(vdom.EventClick) {
		attrs = append(attrs, attr{"tabindex", "0"})
	} else {
		attrs = append(attrs, attr{"aria-disabled", "true"})
	}
	return append(attrs, attr{"style", styles.CSS(node.Style)})
}

func handlerFor(h vdom.Handlers, e vdom.Event) vdom.Handler {
	switch e {
	case vdom.EventClick:
		return h.OnClick
	case vdom.EventMouseEnter:
		return h.OnMouseEnter
	default:
		return h.OnMouseLeave
	}
}

// iconStyle folds the icon color into its style.
func iconStyle(node *vdom.VNode) styles.Style {
	if node.Color == "" {
		return node.Style
	}
	return styles.Collapse(styles.Style{"color": node.Color}, node.Style)
}

func (r *Renderer) renderContainer(w io.Writer, node *vdom.VNode, depth int, attrs []attr) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if err := writeOpen(w, "div", attrs); err != nil {
		return err
	}
	if r.config.Pretty && len(node.Children) > 0 {
		io.WriteString(w, "\n")
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && len(node.Children) > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, "</div>"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderLeaf(w io.Writer, node *vdom.VNode, depth int, attrs []attr, inner string) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if err := writeOpen(w, "span", attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, inner+"</span>"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// writeOpen writes an opening tag, skipping empty attributes.
func writeOpen(w io.Writer, tag string, attrs []attr) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		fmt.Fprintf(&b, ` %s="%s"`, a.key, escapeAttr(a.value))
	}
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}

// kebabType turns "BodySmallSemibold" into "body-small-semibold".
func kebabType(s string) string {
	var b strings.Builder
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			c += 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}
