// Package page holds the page-level interaction controller. It owns every
// piece of UI state on the landing page and hands the view read-only state
// plus links that perform each transition.
package page

import (
	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/disclosure"
	"github.com/mrbear1024/xgrowth/internal/keys"
	"github.com/mrbear1024/xgrowth/internal/overlay"
	"github.com/mrbear1024/xgrowth/internal/view"
)

// Owner names of the page's overlays.
const (
	ContactOwner  = "contact"
	LightboxOwner = "lightbox"
)

// Controller is the single owner of the contact overlay flag, the active
// lightbox image and the FAQ accordion. It is not safe for concurrent use;
// build one per request.
type Controller struct {
	site *content.Site
	enc  Encoder
	keys *keys.Registry

	contact  *overlay.Overlay[struct{}]
	lightbox *overlay.Overlay[int]
	faq      *disclosure.Accordion
}

var _ view.UI = (*Controller)(nil)

// New returns a controller in the initial state: both overlays closed and
// every FAQ entry collapsed.
func New(site *content.Site, enc Encoder) *Controller {
	reg := keys.NewRegistry()
	return &Controller{
		site:     site,
		enc:      enc,
		keys:     reg,
		contact:  overlay.New[struct{}](ContactOwner, reg),
		lightbox: overlay.New[int](LightboxOwner, reg),
		faq:      disclosure.New(len(site.FAQs)),
	}
}

// Keys returns the controller's key registry.
func (c *Controller) Keys() *keys.Registry { return c.keys }

// OpenContactOverlay shows the contact overlay. Opening it again keeps the
// single instance and its single Escape binding.
func (c *Controller) OpenContactOverlay() { c.contact.Open() }

// CloseContactOverlay hides the contact overlay.
func (c *Controller) CloseContactOverlay() { c.contact.Close() }

// OpenImageOverlay shows image index in the lightbox. index must come from
// the rendered image list.
func (c *Controller) OpenImageOverlay(index int) { c.lightbox.OpenWith(index) }

// CloseImageOverlay clears the active image.
func (c *Controller) CloseImageOverlay() { c.lightbox.Close() }

// ToggleFAQ flips FAQ entry i.
func (c *Controller) ToggleFAQ(i int) { c.faq.Toggle(i) }

// ClickContact and ClickLightbox route a click on part of an open overlay.
func (c *Controller) ClickContact(t overlay.Target) bool  { return c.contact.HandleClick(t) }
func (c *Controller) ClickLightbox(t overlay.Target) bool { return c.lightbox.HandleClick(t) }

// Press dispatches a key to the live bindings and returns how many ran.
func (c *Controller) Press(key string) int { return c.keys.Dispatch(key) }

// Teardown releases every key listener the controller holds.
func (c *Controller) Teardown() {
	c.contact.Teardown()
	c.lightbox.Teardown()
}

// State snapshots the current UI state.
func (c *Controller) State() State {
	s := State{ContactOpen: c.contact.IsOpen(), FAQ: c.faq.Expanded()}
	if i, ok := c.lightbox.Payload(); ok {
		s.Image = &i
	}
	return s
}

// Restore replaces the current UI state with s.
func (c *Controller) Restore(s State) {
	if s.ContactOpen {
		c.contact.Open()
	} else {
		c.contact.Close()
	}
	if s.Image != nil {
		c.lightbox.OpenWith(*s.Image)
	} else {
		c.lightbox.Close()
	}
	c.faq = disclosure.New(len(c.site.FAQs))
	for _, i := range s.FAQ {
		c.faq.Toggle(i)
	}
}

// ContactOpen reports whether the contact overlay is open.
func (c *Controller) ContactOpen() bool { return c.contact.IsOpen() }

// ActiveImage returns the lightbox image index, if any.
func (c *Controller) ActiveImage() (int, bool) { return c.lightbox.Payload() }

// FAQExpanded reports whether FAQ entry i is expanded.
func (c *Controller) FAQExpanded(i int) bool { return c.faq.IsExpanded(i) }

// KeyBindings lists the live key listeners.
func (c *Controller) KeyBindings() []keys.Binding { return c.keys.Active() }

func (c *Controller) OpenContact() string {
	return c.link(func(s *Controller) { s.OpenContactOverlay() })
}

func (c *Controller) CloseContact() string {
	return c.link(func(s *Controller) { s.CloseContactOverlay() })
}

func (c *Controller) OpenImage(index int) string {
	return c.link(func(s *Controller) { s.OpenImageOverlay(index) })
}

func (c *Controller) CloseImage() string {
	return c.link(func(s *Controller) { s.CloseImageOverlay() })
}

func (c *Controller) KeyPress(key string) string {
	return c.link(func(s *Controller) { s.Press(key) })
}

// link applies fn to a scratch copy of the controller and encodes the state
// it ends in. The receiver is left untouched. FAQ rows are left out: once
// rendered, the browser toggles them and the server's copy goes stale.
func (c *Controller) link(fn func(*Controller)) string {
	scratch := New(c.site, c.enc)
	defer scratch.Teardown()
	scratch.Restore(c.State())
	fn(scratch)

	next := scratch.State()
	next.FAQ = nil
	return c.enc.Encode(next)
}
