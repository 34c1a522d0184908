package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Layout wraps body in the HTML document shell.
func Layout(opts Options, body ...g.Node) g.Node {
	title := opts.Title
	if title == "" {
		title = "X Growth System"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("zh-CN"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(title)),
				g.If(opts.Description != "", h.Meta(h.Name("description"), h.Content(opts.Description))),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Link(h.Rel("stylesheet"), h.Href(assetURL(opts.AssetBase, "app.css"))),
			),
			h.Body(
				g.If(opts.LiveReload, g.Attr("data-livereload", "/livereload")),
				g.Group(body),
				h.Script(h.Src(assetURL(opts.AssetBase, "app.js")), g.Attr("defer")),
			),
		),
	})
}

// Page renders the whole landing page for the given UI state. Overlays are
// rendered only while open and independently of each other.
func Page(site *content.Site, ui UI, opts Options) g.Node {
	var overlays []g.Node
	if ui.ContactOpen() {
		overlays = append(overlays, ContactOverlay(site, ui, opts.AssetBase))
	}
	if i, ok := ui.ActiveImage(); ok {
		overlays = append(overlays, Lightbox(site, ui, i, opts.AssetBase))
	}

	description := opts.Description
	if description == "" {
		description = site.Brand.Tagline
	}
	opts.Description = description

	return Layout(opts,
		TopBar(site, ui),
		h.Main(
			Hero(site, ui),
			PainPoints(site),
			Overview(site, ui),
			Products(site, ui),
			Testimonials(site),
			FinalCTA(site, ui),
			About(site),
			Gallery(site, ui, opts.AssetBase),
			FAQ(site, ui),
			ContactSection(site, opts.Form),
		),
		PageFooter(site, opts.Year),
		g.Group(overlays),
		keyBindings(ui),
	)
}
