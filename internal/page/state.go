package page

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Query parameter names carrying UI state.
const (
	ParamContact = "contact"
	ParamImage   = "image"
	ParamFAQ     = "faq"
)

// State is the ephemeral UI state of one page instance. The zero value is
// the initial state.
type State struct {
	ContactOpen bool
	Image       *int
	FAQ         []int
}

// Encoder turns a State into the link that reaches it.
type Encoder interface {
	Encode(State) string
}

// QueryEncoder encodes state in the query string of Path, e.g.
// "/?contact=1&image=2&faq=0,3". The initial state encodes to Path alone.
type QueryEncoder struct {
	Path string
}

func (e QueryEncoder) Encode(s State) string {
	path := e.Path
	if path == "" {
		path = "/"
	}

	var parts []string
	if s.ContactOpen {
		parts = append(parts, ParamContact+"=1")
	}
	if s.Image != nil {
		parts = append(parts, ParamImage+"="+strconv.Itoa(*s.Image))
	}
	if len(s.FAQ) > 0 {
		idx := make([]string, len(s.FAQ))
		for i, v := range s.FAQ {
			idx[i] = strconv.Itoa(v)
		}
		parts = append(parts, ParamFAQ+"="+strings.Join(idx, ","))
	}
	if len(parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(parts, "&")
}

// PathEncoder maps state to the file names of a static export. Static pages
// cannot stack overlays, so the contact overlay wins over the lightbox and
// FAQ state is left to the browser.
type PathEncoder struct {
	// Prefix is prepended to every file name, e.g. "./".
	Prefix string
}

func (e PathEncoder) Encode(s State) string {
	return e.Prefix + FileName(s)
}

// FileName returns the export file that renders s.
func FileName(s State) string {
	switch {
	case s.ContactOpen:
		return "contact.html"
	case s.Image != nil:
		return "gallery-" + strconv.Itoa(*s.Image) + ".html"
	default:
		return "index.html"
	}
}

// ExportStates lists every state a static export renders: the initial
// page, the contact overlay and one lightbox page per image.
func ExportStates(site *content.Site) []State {
	states := []State{{}, {ContactOpen: true}}
	for i := range site.Images {
		states = append(states, State{Image: &i})
	}
	return states
}

// Decode reads state from query parameters. Values that are malformed or
// out of range for site are dropped.
func Decode(q url.Values, site *content.Site) State {
	var s State

	switch q.Get(ParamContact) {
	case "1", "true", "yes":
		s.ContactOpen = true
	}

	if raw := q.Get(ParamImage); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < len(site.Images) {
			s.Image = &i
		}
	}

	if raw := q.Get(ParamFAQ); raw != "" {
		seen := make(map[int]bool)
		for _, part := range strings.Split(raw, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || i < 0 || i >= len(site.FAQs) || seen[i] {
				continue
			}
			seen[i] = true
			s.FAQ = append(s.FAQ, i)
		}
		sort.Ints(s.FAQ)
	}

	return s
}
