package content

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a content document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid content: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid content (%d problems):\n  %s", len(e.Problems), strings.Join(e.Problems, "\n  "))
}

type checker struct {
	problems []string
}

func (c *checker) required(path, value string) {
	if strings.TrimSpace(value) == "" {
		c.problems = append(c.problems, path+" is required")
	}
}

func (c *checker) addf(format string, args ...any) {
	c.problems = append(c.problems, fmt.Sprintf(format, args...))
}

// Validate checks the construction-time invariants of the document. It
// returns a *ValidationError when anything is wrong.
func (s *Site) Validate() error {
	c := &checker{}

	c.required("brand.name", s.Brand.Name)

	for i, l := range s.Nav {
		c.required(fmt.Sprintf("nav[%d].label", i), l.Label)
	}

	for i, m := range s.Metrics {
		c.required(fmt.Sprintf("metrics[%d].label", i), m.Label)
		c.required(fmt.Sprintf("metrics[%d].value", i), m.Value)
	}

	for i, p := range s.PainPoints {
		c.required(fmt.Sprintf("pain_points[%d].title", i), p.Title)
	}

	seen := make(map[string]int, len(s.Offers))
	for i, o := range s.Offers {
		path := fmt.Sprintf("offers[%d]", i)
		c.required(path+".id", o.ID)
		c.required(path+".name", o.Name)
		c.required(path+".cta.label", o.CTA.Label)
		if o.ID != "" {
			if prev, dup := seen[o.ID]; dup {
				c.addf("%s.id: duplicate id %q (also offers[%d])", path, o.ID, prev)
			} else {
				seen[o.ID] = i
			}
		}
		if !o.Tone.Valid() {
			c.addf("%s.tone: invalid tone %q: must be one of light, dark, mesh", path, o.Tone)
		}
	}

	for i, t := range s.Testimonials {
		c.required(fmt.Sprintf("testimonials[%d].quote", i), t.Quote)
		c.required(fmt.Sprintf("testimonials[%d].name", i), t.Name)
	}

	for i, f := range s.FAQs {
		c.required(fmt.Sprintf("faqs[%d].question", i), f.Question)
		c.required(fmt.Sprintf("faqs[%d].answer", i), f.Answer)
	}

	for i, img := range s.Images {
		c.required(fmt.Sprintf("images[%d].src", i), img.Src)
		c.required(fmt.Sprintf("images[%d].alt", i), img.Alt)
	}

	stages := make(map[string]bool, len(s.Contact.Stages))
	for i, st := range s.Contact.Stages {
		path := fmt.Sprintf("contact.stages[%d]", i)
		c.required(path+".value", st.Value)
		c.required(path+".label", st.Label)
		if stages[st.Value] && st.Value != "" {
			c.addf("%s.value: duplicate stage %q", path, st.Value)
		}
		stages[st.Value] = true
	}

	if len(c.problems) > 0 {
		return &ValidationError{Problems: c.problems}
	}
	return nil
}

// Warnings returns non-fatal findings worth logging at load.
func (s *Site) Warnings() []string {
	var warnings []string

	names := make(map[string]bool, len(s.Testimonials))
	for i, t := range s.Testimonials {
		if names[t.Name] {
			warnings = append(warnings, fmt.Sprintf("testimonials[%d].name: %q appears more than once", i, t.Name))
		}
		names[t.Name] = true
	}

	for i, o := range s.Offers {
		if len(o.Highlights) == 0 {
			warnings = append(warnings, fmt.Sprintf("offers[%d] (%s) has no highlights", i, o.ID))
		}
		if o.CTA.Href == "" {
			warnings = append(warnings, fmt.Sprintf("offers[%d] (%s) has no sign-up link", i, o.ID))
		}
	}

	if s.Contact.Email == "" {
		warnings = append(warnings, "contact.email is empty; the mailto link is hidden")
	}

	return warnings
}
