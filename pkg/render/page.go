package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/commonui/pkg/vdom"
)

// PageData describes a standalone HTML gallery page.
type PageData struct {
	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Sections are rendered in order.
	Sections []Section
}

// Section is a titled group of swatches.
type Section struct {
	Heading string
	Items   []Item
}

// Item is a single captioned swatch.
type Item struct {
	ID      string
	Caption string
	Node    *vdom.VNode
}

// baseCSS gives the primitives their host behaviour: flex boxes, padding
// inside the border, a pointer cursor on wired regions. Primitive selectors
// are written with the default "cu-" prefix and rewritten by pageCSS.
const baseCSS = `*{box-sizing:border-box}
body{font-family:-apple-system,"Segoe UI",Helvetica,sans-serif;margin:24px;color:#333}
.cu-box{display:flex;box-sizing:border-box}
.cu-clickable{position:relative;user-select:none}
.cu-clickable[tabindex]{cursor:pointer}
.cu-clickable[aria-disabled]{cursor:default}
.cu-icon{display:inline-block;min-width:12px;min-height:12px}
.cu-text-body-semibold{font-size:14px;font-weight:600}
.cu-text-body-small-semibold{font-size:12px;font-weight:600}
.swatches{display:flex;flex-wrap:wrap;gap:16px;margin-bottom:32px}
.swatch{display:flex;flex-direction:column;gap:6px;min-width:160px}
.swatch figcaption{font-size:11px;color:#777;font-family:monospace}`

// pageCSS returns baseCSS with selectors matching the configured prefix.
func (r *Renderer) pageCSS() string {
	return strings.ReplaceAll(baseCSS, ".cu-", "."+r.config.ClassPrefix)
}

// RenderPage renders a complete HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		escapeAttr(lang), escapeHTML(page.Title), r.pageCSS()); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, s := range page.Sections {
		if _, err := fmt.Fprintf(w, "<section>\n<h2>%s</h2>\n<div class=\"swatches\">\n", escapeHTML(s.Heading)); err != nil {
			return err
		}
		for _, item := range s.Items {
			if _, err := fmt.Fprintf(w, "<figure class=\"swatch\" id=\"%s\">\n", escapeAttr(item.ID)); err != nil {
				return err
			}
			if err := r.RenderToWriter(w, item.Node); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "\n<figcaption>%s</figcaption>\n</figure>\n", escapeHTML(item.Caption)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</div>\n</section>\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
