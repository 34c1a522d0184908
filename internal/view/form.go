package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Contact form field names, shared with the contact handler.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldStage   = "stage"
	FieldMessage = "message"

	// FieldForm carries errors that belong to the form as a whole.
	FieldForm = "form"
)

// ContactForm renders the sign-up form. When the form is not enabled it has
// no action and submits nowhere.
func ContactForm(c content.Contact, form Form) g.Node {
	return g.El("form",
		h.Class("contact-form"),
		block("contact-form"),
		g.If(form.Enabled, g.Group([]g.Node{
			g.Attr("method", "post"),
			g.Attr("action", form.Action),
		})),
		g.If(form.Sent, h.P(h.Class("contact-form__notice"), g.Attr("role", "status"), g.Text("已收到，我们会尽快与你联系。"))),
		g.If(form.err(FieldForm) != "", h.P(h.Class("contact-form__alert"), g.Attr("role", "alert"), g.Attr("data-error", FieldForm), g.Text(form.err(FieldForm)))),
		field(FieldName, "称呼", form,
			h.Input(h.Type("text"), h.Name(FieldName), h.ID("contact-"+FieldName), h.Value(form.value(FieldName)), h.Placeholder("怎么称呼你")),
		),
		field(FieldEmail, "邮箱", form,
			h.Input(h.Type("email"), h.Name(FieldEmail), h.ID("contact-"+FieldEmail), h.Value(form.value(FieldEmail)), h.Placeholder("you@example.com")),
		),
		field(FieldStage, "当前阶段", form,
			h.Select(
				h.Name(FieldStage),
				h.ID("contact-"+FieldStage),
				g.Map(c.Stages, func(s content.StageOption) g.Node {
					return h.Option(
						h.Value(s.Value),
						g.If(form.value(FieldStage) == s.Value, g.Attr("selected")),
						g.Text(s.Label),
					)
				}),
			),
		),
		field(FieldMessage, "想解决的问题", form,
			h.Textarea(h.Name(FieldMessage), h.ID("contact-"+FieldMessage), g.Attr("rows", "4"), g.Text(form.value(FieldMessage))),
		),
		h.Button(h.Type("submit"), h.Class("btn btn--primary"), g.Text(submitLabel(c))),
		g.If(c.Consent != "", h.P(h.Class("contact-form__consent muted"), g.Text(c.Consent))),
	)
}

func field(name, label string, form Form, control g.Node) g.Node {
	msg := form.err(name)
	class := "field"
	if msg != "" {
		class += " field--invalid"
	}
	return h.Div(
		h.Class(class),
		g.El("label", g.Attr("for", "contact-"+name), g.Text(label)),
		control,
		g.If(msg != "", h.P(h.Class("field__error"), g.Attr("data-error", name), g.Text(msg))),
	)
}

func submitLabel(c content.Contact) string {
	if c.Submit != "" {
		return c.Submit
	}
	return "提交"
}
