package content

// Tone selects the visual treatment of a product card.
type Tone string

const (
	ToneLight Tone = "light"
	ToneDark  Tone = "dark"
	ToneMesh  Tone = "mesh"
)

// validTones is the set of recognized tone values.
var validTones = map[Tone]bool{
	ToneLight: true,
	ToneDark:  true,
	ToneMesh:  true,
}

// Valid reports whether t is one of the enumerated tones.
func (t Tone) Valid() bool { return validTones[t] }

// Link is a labelled outbound target. Href is opaque to the site.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// ProductOffer is one product card.
type ProductOffer struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Headline    string   `yaml:"headline"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
	Bullets     []string `yaml:"bullets"`
	CTA         Link     `yaml:"cta"`
	Support     string   `yaml:"support"`
	Tone        Tone     `yaml:"tone"`
}

type Testimonial struct {
	Quote string `yaml:"quote"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Metric is decorative; Value is already formatted for display.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type PainPoint struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Image is shared by the gallery grid and the lightbox. The grid index is
// the only relationship between a thumbnail and its enlarged view.
type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Mark    string `yaml:"mark"`
}

// Step is a titled entry in the hero growth path.
type Step struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Hero struct {
	Eyebrow   string `yaml:"eyebrow"`
	Title     string `yaml:"title"`
	Lead      string `yaml:"lead"`
	Note      string `yaml:"note"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Path      []Step `yaml:"path"`
}

// Ring is one step of the three-ring system overview.
type Ring struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Detail   string `yaml:"detail"`
}

// Phase is one stage of the 90-day plan.
type Phase struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Header is the eyebrow/title/description triple shown above a section.
type Header struct {
	Eyebrow     string `yaml:"eyebrow"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type FinalCTA struct {
	Title     string   `yaml:"title"`
	Body      string   `yaml:"body"`
	Checklist []string `yaml:"checklist"`
	Primary   string   `yaml:"primary"`
	Secondary string   `yaml:"secondary"`
}

// StageOption is one choice of the contact form's growth-stage select.
type StageOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Contact struct {
	Email      string        `yaml:"email"`
	WeChatNote string        `yaml:"wechat_note"`
	QRCode     Image         `yaml:"qr_code"`
	Stages     []StageOption `yaml:"stages"`
	Submit     string        `yaml:"submit"`
	Consent    string        `yaml:"consent"`
}

// HasStage reports whether value is one of the configured stage options.
func (c Contact) HasStage(value string) bool {
	for _, s := range c.Stages {
		if s.Value == value {
			return true
		}
	}
	return false
}

// Sections groups the per-section headers so the copy stays in content.
type Sections struct {
	PainPoints   Header `yaml:"pain_points"`
	Overview     Header `yaml:"overview"`
	Products     Header `yaml:"products"`
	Testimonials Header `yaml:"testimonials"`
	About        Header `yaml:"about"`
	Gallery      Header `yaml:"gallery"`
	FAQ          Header `yaml:"faq"`
	Contact      Header `yaml:"contact"`
}

// Site is the whole content document. It is built once by Load and never
// mutated afterwards.
type Site struct {
	Brand        Brand          `yaml:"brand"`
	Nav          []Link         `yaml:"nav"`
	Hero         Hero           `yaml:"hero"`
	Sections     Sections       `yaml:"sections"`
	Metrics      []Metric       `yaml:"metrics"`
	PainPoints   []PainPoint    `yaml:"pain_points"`
	Rings        []Ring         `yaml:"rings"`
	Phases       []Phase        `yaml:"phases"`
	Offers       []ProductOffer `yaml:"offers"`
	Testimonials []Testimonial  `yaml:"testimonials"`
	Manifesto    string         `yaml:"manifesto"`
	FinalCTA     FinalCTA       `yaml:"final_cta"`
	FAQs         []FAQ          `yaml:"faqs"`
	Images       []Image        `yaml:"images"`
	About        string         `yaml:"about"`
	Contact      Contact        `yaml:"contact"`
	Footer       []Link         `yaml:"footer"`

	aboutHTML string
}

// AboutHTML returns the about narrative rendered from markdown at load time.
func (s *Site) AboutHTML() string { return s.aboutHTML }

// Counts returns the number of records in each content list.
func (s *Site) Counts() map[string]int {
	return map[string]int{
		"metrics":      len(s.Metrics),
		"pain_points":  len(s.PainPoints),
		"offers":       len(s.Offers),
		"testimonials": len(s.Testimonials),
		"faqs":         len(s.FAQs),
		"images":       len(s.Images),
	}
}

// Offer looks up an offer by id.
func (s *Site) Offer(id string) (ProductOffer, bool) {
	for _, o := range s.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return ProductOffer{}, false
}
