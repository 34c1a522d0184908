package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Variant selects a call-to-action button style.
type Variant int

const (
	Primary Variant = iota
	Secondary
)

// Align and Tone control a section header's layout.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

type Tone int

const (
	ToneDark Tone = iota
	ToneLight
)

func block(name string) g.Node { return g.Attr("data-block", name) }

func reveal() g.Node { return g.Attr("data-reveal", "") }

// Button renders a call-to-action link. Every CTA on the page is a Button
// whose href is the controller's open-contact action.
func Button(label, href string, variant Variant, extra ...g.Node) g.Node {
	class := "btn btn--primary"
	if variant == Secondary {
		class = "btn btn--secondary"
	}
	return h.A(
		h.Class(class),
		h.Href(href),
		block("cta"),
		g.Group(extra),
		h.Span(g.Text(label)),
	)
}

// Section wraps page content in a full-width band.
func Section(id, background string, children ...g.Node) g.Node {
	return h.Section(
		g.If(id != "", h.ID(id)),
		h.Class("section "+background),
		reveal(),
		h.Div(h.Class("section__inner"), g.Group(children)),
	)
}

// SectionHeader renders the eyebrow, title and description of a section.
func SectionHeader(hd content.Header, align Align, tone Tone) g.Node {
	class := "section-header"
	if align == AlignCenter {
		class += " section-header--center"
	}
	if tone == ToneLight {
		class += " section-header--light"
	}
	return h.Div(
		h.Class(class),
		g.If(hd.Eyebrow != "", h.P(h.Class("section-header__eyebrow"), g.Text(hd.Eyebrow))),
		h.H2(h.Class("section-header__title"), g.Text(hd.Title)),
		g.If(hd.Description != "", h.P(h.Class("section-header__description"), g.Text(hd.Description))),
	)
}

// ProductCard renders one offer. onCTA is the action its button invokes.
func ProductCard(offer content.ProductOffer, onCTA string) g.Node {
	return h.Article(
		h.Class("product-card product-card--"+string(offer.Tone)),
		h.ID("offer-"+offer.ID),
		block("product-card"),
		reveal(),
		h.Div(
			h.Class("product-card__intro"),
			h.Span(h.Class("product-card__name"), g.Text(offer.Name)),
			h.H3(h.Class("product-card__headline"), g.Text(offer.Headline)),
			h.P(h.Class("muted"), g.Text(offer.Description)),
		),
		h.Div(
			h.Class("product-card__lists"),
			bulletList("关键价值", "product-card__highlights", offer.Highlights),
			bulletList("课程大纲", "product-card__bullets", offer.Bullets),
		),
		h.Div(
			h.Class("product-card__support"),
			h.P(h.Class("muted"), g.Text(offer.Support)),
			Button(offer.CTA.Label, onCTA, Primary),
		),
	)
}

func bulletList(title, class string, items []string) g.Node {
	return h.Div(
		h.Class(class),
		h.P(h.Class("list-title"), g.Text(title)),
		h.Ul(g.Map(items, func(item string) g.Node {
			return h.Li(h.Class("muted"), g.Text(item))
		})),
	)
}

// RingDiagram draws the three concentric system rings with one callout per
// ring.
func RingDiagram(rings []content.Ring) g.Node {
	const size = 360
	radii := []int{180, 130, 90}

	circles := make([]g.Node, 0, len(radii))
	for i, r := range radii {
		circles = append(circles, g.El("circle",
			g.Attr("cx", strconv.Itoa(size/2)),
			g.Attr("cy", strconv.Itoa(size/2)),
			g.Attr("r", strconv.Itoa(r-2)),
			g.Attr("class", "ring ring--"+strconv.Itoa(i+1)),
		))
	}

	callouts := make([]g.Node, 0, len(rings))
	for i, ring := range rings {
		callouts = append(callouts, h.Div(
			h.Class("ring-callout ring-callout--"+strconv.Itoa(i+1)),
			block("ring-callout"),
			h.P(h.Class("ring-callout__title"), g.Text(ring.Title)),
			h.P(h.Class("ring-callout__subtitle"), g.Text(ring.Subtitle)),
		))
	}

	return h.Div(
		h.Class("ring-diagram"),
		g.Attr("aria-hidden", "true"),
		g.El("svg",
			g.Attr("viewBox", "0 0 360 360"),
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Group(circles),
		),
		g.Group(callouts),
	)
}
