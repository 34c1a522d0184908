package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// TopBar renders the sticky header with the navigation CTAs.
func TopBar(site *content.Site, ui UI) g.Node {
	buttons := make([]g.Node, 0, len(site.Nav))
	for i, link := range site.Nav {
		variant := Primary
		if i > 0 {
			variant = Secondary
		}
		buttons = append(buttons, Button(link.Label, ui.OpenContact(), variant))
	}

	return g.El("header",
		h.Class("topbar"),
		h.Div(
			h.Class("topbar__inner"),
			h.Div(
				h.Class("brand"),
				h.Span(h.Class("brand__mark"), g.Text(site.Brand.Mark)),
				h.Div(
					h.P(h.Class("brand__name"), g.Text(site.Brand.Name)),
					h.P(h.Class("brand__tagline"), g.Text(site.Brand.Tagline)),
				),
			),
			h.Nav(h.Class("topbar__actions"), g.Group(buttons)),
		),
	)
}

// Hero renders the opening section, the growth path and the metrics row.
func Hero(site *content.Site, ui UI) g.Node {
	hero := site.Hero

	steps := make([]g.Node, 0, len(hero.Path))
	for i, step := range hero.Path {
		steps = append(steps, h.Li(
			h.Class("path-step"),
			h.Span(h.Class("path-step__index"), g.Text(strconv.Itoa(i+1))),
			h.Div(
				h.P(h.Class("path-step__title"), g.Text(step.Title)),
				h.P(g.Text(step.Body)),
			),
		))
	}

	return h.Section(
		h.Class("hero"),
		h.ID("top"),
		reveal(),
		h.Div(
			h.Class("hero__inner"),
			h.Div(
				h.Class("hero__copy"),
				h.Span(h.Class("hero__eyebrow"), g.Text(hero.Eyebrow)),
				h.H1(g.Text(hero.Title)),
				h.P(h.Class("hero__lead"), g.Text(hero.Lead)),
				h.Div(
					h.Class("hero__actions"),
					Button(hero.Primary, ui.OpenContact(), Primary),
					Button(hero.Secondary, ui.OpenContact(), Secondary),
				),
				h.P(h.Class("hero__note"), g.Text(hero.Note)),
			),
			g.If(len(steps) > 0, h.Div(
				h.Class("hero__path"),
				h.Ol(g.Group(steps)),
			)),
		),
		Metrics(site.Metrics),
	)
}

// Metrics renders the decorative metric row.
func Metrics(metrics []content.Metric) g.Node {
	return h.Div(
		h.Class("metrics"),
		g.Map(metrics, func(m content.Metric) g.Node {
			return h.Div(
				h.Class("metric"),
				block("metric"),
				h.P(h.Class("metric__value"), g.Text(m.Value)),
				h.P(h.Class("metric__label"), g.Text(m.Label)),
			)
		}),
	)
}

// PainPoints renders the problem statement cards.
func PainPoints(site *content.Site) g.Node {
	return Section("pain-points", "bg-slate",
		h.Div(
			h.Class("split"),
			SectionHeader(site.Sections.PainPoints, AlignLeft, ToneDark),
			h.Div(
				h.Class("stack"),
				g.Map(site.PainPoints, func(p content.PainPoint) g.Node {
					return h.Div(
						h.Class("pain-point"),
						block("pain-point"),
						reveal(),
						h.H3(g.Text(p.Title)),
						h.P(g.Text(p.Description)),
					)
				}),
			),
		),
	)
}

// Overview renders the three-ring system, the ring steps and the 90-day
// plan.
func Overview(site *content.Site, ui UI) g.Node {
	return Section("overview", "bg-light",
		SectionHeader(site.Sections.Overview, AlignCenter, ToneLight),
		RingDiagram(site.Rings),
		h.Div(
			h.Class("grid grid--3"),
			g.Map(site.Rings, func(r content.Ring) g.Node {
				return h.Div(
					h.Class("ring-step"),
					block("ring-step"),
					h.H3(g.Text(r.Title)),
					h.P(h.Class("ring-step__subtitle"), g.Text(r.Subtitle)),
					h.P(g.Text(r.Detail)),
				)
			}),
		),
		g.If(len(site.Phases) > 0, h.Div(
			h.Class("plan"),
			h.Div(
				h.Class("plan__head"),
				h.H3(g.Text("90 天启动你的 X 增长飞轮")),
				Button("获取 90 天执行手册", ui.OpenContact(), Primary),
			),
			h.Div(
				h.Class("grid grid--3"),
				g.Map(site.Phases, func(p content.Phase) g.Node {
					return h.Div(
						h.Class("phase"),
						block("phase"),
						h.H4(g.Text(p.Title)),
						h.P(g.Text(p.Body)),
					)
				}),
			),
		)),
	)
}

// Products renders one card per offer, all wired to the same action.
func Products(site *content.Site, ui UI) g.Node {
	return Section("products", "bg-deep",
		SectionHeader(site.Sections.Products, AlignCenter, ToneDark),
		h.Div(
			h.Class("stack stack--wide"),
			g.Map(site.Offers, func(o content.ProductOffer) g.Node {
				return ProductCard(o, ui.OpenContact())
			}),
		),
	)
}

// Testimonials renders the quotes and the manifesto.
func Testimonials(site *content.Site) g.Node {
	return Section("testimonials", "bg-dark",
		SectionHeader(site.Sections.Testimonials, AlignCenter, ToneDark),
		h.Div(
			h.Class("grid grid--3"),
			g.Map(site.Testimonials, func(t content.Testimonial) g.Node {
				return g.El("blockquote",
					h.Class("testimonial"),
					block("testimonial"),
					reveal(),
					h.P(g.Textf("“%s”", t.Quote)),
					g.El("footer", g.Textf("%s - %s", t.Name, t.Role)),
				)
			}),
		),
		g.If(site.Manifesto != "", h.Div(
			h.Class("manifesto"),
			h.P(g.Textf("“%s”", site.Manifesto)),
		)),
	)
}

// FinalCTA renders the closing call to action.
func FinalCTA(site *content.Site, ui UI) g.Node {
	cta := site.FinalCTA
	return Section("join", "bg-accent",
		h.Div(
			h.Class("final-cta"),
			h.Div(
				h.Class("final-cta__copy"),
				h.H2(g.Text(cta.Title)),
				h.P(g.Text(cta.Body)),
				h.Ul(
					h.Class("checklist"),
					g.Map(cta.Checklist, func(item string) g.Node {
						return h.Li(g.Text(item))
					}),
				),
			),
			h.Div(
				h.Class("final-cta__actions"),
				Button(cta.Primary, ui.OpenContact(), Primary),
				Button(cta.Secondary, ui.OpenContact(), Secondary),
			),
		),
	)
}

// About renders the markdown narrative.
func About(site *content.Site) g.Node {
	if site.AboutHTML() == "" {
		return nil
	}
	return Section("about", "bg-dark",
		SectionHeader(site.Sections.About, AlignLeft, ToneDark),
		h.Div(h.Class("prose"), block("about"), g.Raw(site.AboutHTML())),
	)
}

// Gallery renders the thumbnail grid. Each thumbnail opens the lightbox at
// its own index.
func Gallery(site *content.Site, ui UI, assetBase string) g.Node {
	if len(site.Images) == 0 {
		return nil
	}
	thumbs := make([]g.Node, 0, len(site.Images))
	for i, img := range site.Images {
		thumbs = append(thumbs, h.A(
			h.Class("gallery__item"),
			h.Href(ui.OpenImage(i)),
			block("gallery-image"),
			g.Attr("data-index", strconv.Itoa(i)),
			h.Img(h.Src(assetURL(assetBase, img.Src)), h.Alt(img.Alt), g.Attr("loading", "lazy")),
		))
	}
	return Section("gallery", "bg-deep",
		SectionHeader(site.Sections.Gallery, AlignCenter, ToneDark),
		h.Div(h.Class("gallery"), g.Group(thumbs)),
	)
}

// FAQ renders one disclosure row per entry. Rows open and close
// independently; the model decides which start expanded.
func FAQ(site *content.Site, ui UI) g.Node {
	rows := make([]g.Node, 0, len(site.FAQs))
	for i, f := range site.FAQs {
		rows = append(rows, g.El("details",
			h.Class("faq-row"),
			block("faq-row"),
			g.Attr("data-index", strconv.Itoa(i)),
			g.If(ui.FAQExpanded(i), g.Attr("open")),
			g.El("summary",
				h.Class("faq-row__question"),
				g.Text(f.Question),
				h.Span(h.Class("faq-row__icon"), g.Attr("aria-hidden", "true"), g.Text("+")),
			),
			h.Div(h.Class("faq-row__answer"), g.Text(f.Answer)),
		))
	}
	return Section("faq", "bg-light",
		SectionHeader(site.Sections.FAQ, AlignCenter, ToneLight),
		h.Div(h.Class("faq"), g.Group(rows)),
	)
}

// ContactSection renders the contact details and the form.
func ContactSection(site *content.Site, form Form) g.Node {
	c := site.Contact
	return Section("contact", "bg-dark",
		h.Div(
			h.Class("split"),
			h.Div(
				h.Class("stack"),
				SectionHeader(site.Sections.Contact, AlignLeft, ToneDark),
				h.Div(
					h.Class("grid grid--2"),
					g.If(c.Email != "", h.Div(
						h.Class("contact-card"),
						h.P(h.Class("contact-card__title"), g.Text("邮箱")),
						h.A(h.Href("mailto:"+c.Email), g.Text(c.Email)),
					)),
					h.Div(
						h.Class("contact-card"),
						h.P(h.Class("contact-card__title"), g.Text("微信")),
						h.P(g.Text(c.WeChatNote)),
					),
				),
			),
			ContactForm(c, form),
		),
	)
}

// PageFooter renders the copyright line and footer links.
func PageFooter(site *content.Site, year int) g.Node {
	return g.El("footer",
		h.Class("page-footer"),
		h.P(g.Textf("© %d %s. 保留所有权利。", year, site.Brand.Name)),
		h.Div(
			h.Class("page-footer__links"),
			g.Map(site.Footer, func(l content.Link) g.Node {
				return h.A(h.Href(l.Href), g.Text(l.Label))
			}),
		),
	)
}
