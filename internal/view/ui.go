// Package view renders the landing page as gomponents nodes. Every function
// here is a pure mapping from content records and read-only UI state to
// markup; interaction targets come from the UI passed in and are used
// verbatim.
package view

import (
	"strings"

	"github.com/mrbear1024/xgrowth/internal/keys"
)

// Actions are the interaction handles the page controller hands down. Each
// returns the link that performs the transition.
type Actions interface {
	OpenContact() string
	CloseContact() string
	OpenImage(index int) string
	CloseImage() string
	// KeyPress returns the link for the state reached by pressing key.
	KeyPress(key string) string
}

// UI is the read-only state plus actions a page is rendered from.
type UI interface {
	Actions
	ContactOpen() bool
	ActiveImage() (int, bool)
	FAQExpanded(index int) bool
	KeyBindings() []keys.Binding
}

// Form is the render state of the contact form.
type Form struct {
	// Enabled wires the form to Action; otherwise it keeps the browser's
	// default submit behaviour.
	Enabled bool
	Action  string
	Values  map[string]string
	Errors  map[string]string
	Sent    bool
}

func (f Form) value(field string) string {
	if f.Values == nil {
		return ""
	}
	return f.Values[field]
}

func (f Form) err(field string) string {
	if f.Errors == nil {
		return ""
	}
	return f.Errors[field]
}

// Options carries page-level settings that are not content.
type Options struct {
	Title       string
	Description string
	// AssetBase prefixes relative asset paths, e.g. "/static/" or "static/".
	AssetBase  string
	LiveReload bool
	Year       int
	Form       Form
}

// assetURL resolves a content asset path against base. Absolute paths and
// URLs are returned unchanged.
func assetURL(base, src string) string {
	if strings.HasPrefix(src, "/") || strings.Contains(src, "://") || strings.HasPrefix(src, "data:") {
		return src
	}
	return base + src
}
