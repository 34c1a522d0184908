package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Overlay renders a modal shell. The backdrop is a link to closeHref placed
// next to the panel rather than around it, so following a link inside the
// panel can never reach the backdrop.
func Overlay(name, label, closeHref string, panel ...g.Node) g.Node {
	return h.Div(
		h.Class("overlay overlay--"+name),
		block("overlay"),
		g.Attr("data-overlay", name),
		h.A(
			h.Class("overlay__backdrop"),
			h.Href(closeHref),
			g.Attr("data-dismiss", "backdrop"),
			g.Attr("aria-label", "关闭"),
			g.Attr("tabindex", "-1"),
		),
		h.Div(
			h.Class("overlay__panel"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("aria-label", label),
			h.A(
				h.Class("overlay__close"),
				h.Href(closeHref),
				g.Attr("data-dismiss", "close"),
				g.Attr("aria-label", "关闭"),
				g.Text("×"),
			),
			g.Group(panel),
		),
	)
}

// ContactOverlay shows the WeChat QR code, the mailbox and the sign-up
// links of every offer.
func ContactOverlay(site *content.Site, ui UI, assetBase string) g.Node {
	c := site.Contact

	links := make([]g.Node, 0, len(site.Nav)+len(site.Offers))
	for _, l := range site.Nav {
		if l.Href == "" {
			continue
		}
		links = append(links, h.Li(h.A(h.Href(l.Href), h.Target("_blank"), h.Rel("noreferrer"), g.Text(l.Label))))
	}
	for _, o := range site.Offers {
		if o.CTA.Href == "" {
			continue
		}
		links = append(links, h.Li(h.A(
			h.Href(o.CTA.Href), h.Target("_blank"), h.Rel("noreferrer"),
			g.Textf("%s: %s", o.Name, o.CTA.Label),
		)))
	}

	return Overlay("contact", "联系我们", ui.CloseContact(),
		h.H3(h.Class("overlay__title"), g.Text("扫码添加微信")),
		g.If(c.QRCode.Src != "", h.Img(
			h.Class("overlay__qr"),
			h.Src(assetURL(assetBase, c.QRCode.Src)),
			h.Alt(c.QRCode.Alt),
		)),
		g.If(c.WeChatNote != "", h.P(h.Class("muted"), g.Text(c.WeChatNote))),
		g.If(c.Email != "", h.P(
			g.Text("或发送邮件至 "),
			h.A(h.Href("mailto:"+c.Email), g.Text(c.Email)),
		)),
		g.If(len(links) > 0, h.Ul(h.Class("overlay__links"), g.Group(links))),
	)
}

// Lightbox shows one gallery image at full size. Previous and next wrap
// around the grid.
func Lightbox(site *content.Site, ui UI, index int, assetBase string) g.Node {
	if index < 0 || index >= len(site.Images) {
		return nil
	}
	img := site.Images[index]
	n := len(site.Images)

	return Overlay("lightbox", img.Alt, ui.CloseImage(),
		g.El("figure",
			h.Class("lightbox"),
			g.Attr("data-index", strconv.Itoa(index)),
			h.Img(h.Class("lightbox__image"), h.Src(assetURL(assetBase, img.Src)), h.Alt(img.Alt)),
			g.El("figcaption", g.Text(img.Alt)),
		),
		g.If(n > 1, h.Div(
			h.Class("lightbox__nav"),
			h.A(h.Class("lightbox__prev"), h.Href(ui.OpenImage((index+n-1)%n)), g.Attr("data-nav", "prev"), g.Text("‹")),
			h.Span(g.Textf("%d / %d", index+1, n)),
			h.A(h.Class("lightbox__next"), h.Href(ui.OpenImage((index+1)%n)), g.Attr("data-nav", "next"), g.Text("›")),
		)),
	)
}

// keyBindings exposes the live key listeners to the browser script. A key
// is only present while some overlay holds a binding for it.
func keyBindings(ui UI) g.Node {
	var nodes []g.Node
	seen := make(map[string]bool)
	for _, b := range ui.KeyBindings() {
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		nodes = append(nodes, h.A(
			h.Href(ui.KeyPress(b.Key)),
			g.Attr("data-key", b.Key),
			g.Attr("data-owner", b.Owner),
			g.Attr("hidden"),
		))
	}
	if len(nodes) == 0 {
		return nil
	}
	return h.Div(h.Class("key-bindings"), g.Group(nodes))
}
