package overlay

import (
	"testing"

	"github.com/mrbear1024/xgrowth/internal/keys"
)

func TestInitialState(t *testing.T) {
	o := New[struct{}]("contact", keys.NewRegistry())
	if o.IsOpen() {
		t.Fatal("new overlay should be closed")
	}
	if o.HandleClick(TargetBackdrop) {
		t.Error("clicking a closed overlay should not report a transition")
	}
}

func TestCloseTriggersAllYieldClosed(t *testing.T) {
	triggers := []struct {
		name  string
		close func(o *Overlay[struct{}], r *keys.Registry)
	}{
		{"backdrop", func(o *Overlay[struct{}], _ *keys.Registry) { o.HandleClick(TargetBackdrop) }},
		{"close control", func(o *Overlay[struct{}], _ *keys.Registry) { o.HandleClick(TargetCloseControl) }},
		{"escape", func(_ *Overlay[struct{}], r *keys.Registry) { r.Dispatch(keys.Escape) }},
		{"explicit", func(o *Overlay[struct{}], _ *keys.Registry) { o.Close() }},
	}

	for _, tt := range triggers {
		t.Run(tt.name, func(t *testing.T) {
			r := keys.NewRegistry()
			o := New[struct{}]("contact", r)
			o.Open()
			if r.Len() != 1 {
				t.Fatalf("open overlay should hold one binding, got %d", r.Len())
			}

			tt.close(o, r)

			if o.IsOpen() {
				t.Error("overlay should be closed")
			}
			if r.Len() != 0 {
				t.Errorf("closed overlay leaked %d bindings", r.Len())
			}
		})
	}
}

func TestPanelClickDoesNotClose(t *testing.T) {
	o := New[struct{}]("contact", keys.NewRegistry())
	o.Open()
	if o.HandleClick(TargetPanel) {
		t.Error("panel click reported a transition")
	}
	if !o.IsOpen() {
		t.Error("panel click closed the overlay")
	}
}

func TestRepeatedOpenKeepsOneListener(t *testing.T) {
	r := keys.NewRegistry()
	o := New[struct{}]("contact", r)
	for i := 0; i < 5; i++ {
		o.Open()
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if n := r.Dispatch(keys.Escape); n != 1 {
		t.Errorf("Escape ran %d handlers, want 1", n)
	}
	if o.IsOpen() {
		t.Error("overlay should be closed after Escape")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r := keys.NewRegistry()
	o := New[struct{}]("contact", r)
	o.Close()
	o.Open()
	o.Close()
	o.Close()
	if o.IsOpen() || r.Len() != 0 {
		t.Errorf("IsOpen=%v Len=%d after repeated close", o.IsOpen(), r.Len())
	}
}

func TestPayload(t *testing.T) {
	r := keys.NewRegistry()
	o := New[int]("lightbox", r)

	if _, ok := o.Payload(); ok {
		t.Error("closed overlay should report no payload")
	}

	o.OpenWith(2)
	if p, ok := o.Payload(); !ok || p != 2 {
		t.Errorf("Payload() = %d, %v; want 2, true", p, ok)
	}

	o.OpenWith(3)
	if p, _ := o.Payload(); p != 3 {
		t.Errorf("Payload() = %d, want 3", p)
	}
	if r.Len() != 1 {
		t.Errorf("re-open with new payload should keep one binding, got %d", r.Len())
	}

	o.Close()
	if p, ok := o.Payload(); ok || p != 0 {
		t.Errorf("Payload() after close = %d, %v; want 0, false", p, ok)
	}
}

func TestTeardownReleasesListener(t *testing.T) {
	r := keys.NewRegistry()
	o := New[int]("lightbox", r)
	o.OpenWith(1)
	o.Teardown()
	if r.Len() != 0 {
		t.Errorf("Teardown leaked %d bindings", r.Len())
	}
}

func TestIndependentOverlays(t *testing.T) {
	r := keys.NewRegistry()
	a := New[struct{}]("contact", r)
	b := New[int]("lightbox", r)

	a.Open()
	b.OpenWith(0)
	a.HandleClick(TargetBackdrop)

	if a.IsOpen() {
		t.Error("contact should be closed")
	}
	if !b.IsOpen() {
		t.Error("closing contact must not affect the lightbox")
	}
	if active := r.Active(); len(active) != 1 || active[0].Owner != "lightbox" {
		t.Errorf("Active() = %+v, want only the lightbox binding", active)
	}
}

func TestNilRegistry(t *testing.T) {
	o := New[struct{}]("contact", nil)
	o.Open()
	o.Close()
	if o.IsOpen() {
		t.Error("overlay without registry should still close")
	}
}

func TestTargetString(t *testing.T) {
	if TargetPanel.String() != "panel" || Target(9).String() != "unknown" {
		t.Error("unexpected Target names")
	}
}
