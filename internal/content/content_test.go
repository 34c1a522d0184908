package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalDoc = `
brand:
  name: Test Brand
offers:
  - id: a
    name: Offer A
    cta: {label: Buy A, href: "https://example.com/a"}
    highlights: [one]
    tone: light
  - id: b
    name: Offer B
    cta: {label: Buy B, href: "https://example.com/b"}
    highlights: [two]
    tone: mesh
faqs:
  - {question: Q1, answer: A1}
images:
  - {src: img/1.svg, alt: first}
contact:
  email: hi@example.com
  stages:
    - {value: starter, label: Starter}
about: "Hello **world**"
`

func TestDefault(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	counts := site.Counts()
	want := map[string]int{
		"metrics":      4,
		"pain_points":  3,
		"offers":       3,
		"testimonials": 3,
		"faqs":         4,
		"images":       4,
	}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("Counts()[%q] = %d, want %d", k, counts[k], v)
		}
	}

	if !strings.Contains(site.AboutHTML(), "<strong>X (Twitter) 增长</strong>") {
		t.Errorf("about narrative not rendered: %q", site.AboutHTML())
	}
	if w := site.Warnings(); len(w) != 0 {
		t.Errorf("default content should have no warnings, got %v", w)
	}
}

func TestLoadMinimal(t *testing.T) {
	site, err := Load(strings.NewReader(minimalDoc))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(site.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(site.Offers))
	}
	if site.Offers[1].Tone != ToneMesh {
		t.Errorf("offers[1].tone = %q, want %q", site.Offers[1].Tone, ToneMesh)
	}
	if got := site.AboutHTML(); got != "<p>Hello <strong>world</strong></p>\n" {
		t.Errorf("AboutHTML() = %q", got)
	}
	if _, ok := site.Offer("b"); !ok {
		t.Error("Offer(\"b\") not found")
	}
	if _, ok := site.Offer("missing"); ok {
		t.Error("Offer(\"missing\") should not be found")
	}
	if !site.Contact.HasStage("starter") || site.Contact.HasStage("scaler") {
		t.Error("HasStage mismatch")
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	doc := minimalDoc + "\nbanner: surprise\n"
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Site)
		problem string
	}{
		{
			name:    "duplicate offer id",
			mutate:  func(s *Site) { s.Offers[1].ID = "a" },
			problem: `offers[1].id: duplicate id "a" (also offers[0])`,
		},
		{
			name:    "invalid tone",
			mutate:  func(s *Site) { s.Offers[0].Tone = "neon" },
			problem: `offers[0].tone: invalid tone "neon"`,
		},
		{
			name:    "empty tone",
			mutate:  func(s *Site) { s.Offers[0].Tone = "" },
			problem: `offers[0].tone: invalid tone ""`,
		},
		{
			name:    "image without src",
			mutate:  func(s *Site) { s.Images[0].Src = "" },
			problem: "images[0].src is required",
		},
		{
			name:    "image without alt",
			mutate:  func(s *Site) { s.Images[0].Alt = "  " },
			problem: "images[0].alt is required",
		},
		{
			name:    "faq without answer",
			mutate:  func(s *Site) { s.FAQs[0].Answer = "" },
			problem: "faqs[0].answer is required",
		},
		{
			name:    "duplicate stage",
			mutate:  func(s *Site) { s.Contact.Stages = append(s.Contact.Stages, StageOption{Value: "starter", Label: "again"}) },
			problem: `contact.stages[1].value: duplicate stage "starter"`,
		},
		{
			name:    "missing brand",
			mutate:  func(s *Site) { s.Brand.Name = "" },
			problem: "brand.name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := Load(strings.NewReader(minimalDoc))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.mutate(site)

			err = site.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			found := false
			for _, p := range verr.Problems {
				if strings.HasPrefix(p, tt.problem) {
					found = true
				}
			}
			if !found {
				t.Errorf("problems %v do not include %q", verr.Problems, tt.problem)
			}
		})
	}
}

func TestValidationErrorAggregates(t *testing.T) {
	doc := strings.Replace(minimalDoc, "tone: mesh", "tone: neon", 1)
	doc = strings.Replace(doc, "{src: img/1.svg, alt: first}", "{src: \"\", alt: first}", 1)

	_, err := Load(strings.NewReader(doc))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("expected 2 problems, got %d: %v", len(verr.Problems), verr.Problems)
	}
	if !strings.Contains(err.Error(), "2 problems") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWarnings(t *testing.T) {
	site, err := Load(strings.NewReader(minimalDoc))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	site.Testimonials = []Testimonial{
		{Quote: "one", Name: "Sam"},
		{Quote: "two", Name: "Sam"},
	}
	site.Offers[0].Highlights = nil

	warnings := site.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if site.Brand.Name != "Test Brand" {
		t.Errorf("brand = %q", site.Brand.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToneValid(t *testing.T) {
	for _, tone := range []Tone{ToneLight, ToneDark, ToneMesh} {
		if !tone.Valid() {
			t.Errorf("%q should be valid", tone)
		}
	}
	if Tone("LIGHT").Valid() {
		t.Error("tones are case sensitive")
	}
}
