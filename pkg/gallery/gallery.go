// Package gallery enumerates every supported button variant in every
// display state and renders them for review.
package gallery

import (
	"io"

	"github.com/samber/lo"

	"github.com/vango-dev/commonui/pkg/button"
	"github.com/vango-dev/commonui/pkg/render"
	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// State is a named set of display flags applied on top of a variant.
type State struct {
	Name  string
	Apply func(*button.Props)
}

// DefaultIcon is the icon used by the "icon" state.
const DefaultIcon vdom.IconType = "iconfont-check"

// States lists the display states shown for each variant.
func States() []State {
	return []State{
		{"default", func(*button.Props) {}},
		{"small", func(p *button.Props) { p.Small = true }},
		{"fullWidth", func(p *button.Props) { p.FullWidth = true }},
		{"icon", func(p *button.Props) { p.Icon = DefaultIcon }},
		{"disabled", func(p *button.Props) { p.Disabled = true }},
		{"waiting", func(p *button.Props) { p.Waiting = true }},
	}
}

// Entry is one rendered swatch.
type Entry struct {
	ID      string // "<containerKey>/<state>"
	Variant button.Variant
	State   string
	Props   button.Props
	Node    *vdom.VNode
}

// Entries renders every supported variant in every state on p.
func Entries(p styles.Platform) ([]Entry, error) {
	var out []Entry
	for _, v := range button.Supported() {
		for _, s := range States() {
			props := button.Props{
				Type:           v.Type,
				BackgroundMode: v.Mode,
				Label:          v.Type.String(),
				OnClick:        func() {},
			}
			s.Apply(&props)

			node, err := button.Render(p, props)
			if err != nil {
				return nil, err
			}
			out = append(out, Entry{
				ID:      button.ContainerKey(v.Type, v.Mode) + "/" + s.Name,
				Variant: v,
				State:   s.Name,
				Props:   props,
				Node:    node,
			})
		}
	}
	return out, nil
}

// Page groups entries into one section per variant.
func Page(p styles.Platform, entries []Entry) render.PageData {
	grouped := lo.GroupBy(entries, func(e Entry) button.Variant { return e.Variant })
	order := lo.Uniq(lo.Map(entries, func(e Entry, _ int) button.Variant { return e.Variant }))

	sections := lo.Map(order, func(v button.Variant, _ int) render.Section {
		return render.Section{
			Heading: v.String(),
			Items: lo.Map(grouped[v], func(e Entry, _ int) render.Item {
				return render.Item{ID: e.ID, Caption: e.State, Node: e.Node}
			}),
		}
	})

	return render.PageData{
		Title:    "commonui buttons (" + p.String() + ")",
		Sections: sections,
	}
}

// WriteHTML renders the full gallery for p as an HTML document.
func WriteHTML(w io.Writer, p styles.Platform) error {
	entries, err := Entries(p)
	if err != nil {
		return err
	}
	return render.NewRenderer(render.RendererConfig{}).RenderPage(w, Page(p, entries))
}

// Filter keeps entries whose variant satisfies keep.
func Filter(entries []Entry, keep func(button.Variant) bool) []Entry {
	return lo.Filter(entries, func(e Entry, _ int) bool { return keep(e.Variant) })
}
