package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/mrbear1024/xgrowth/internal/assets"
	"github.com/mrbear1024/xgrowth/internal/contact"
	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/db"
)

func defaultSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return site
}

func newContactServer(t *testing.T) (*Server, *contact.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := contact.NewStore(database)
	srv := New(Config{Port: 0}, defaultSite(t), Deps{
		Static:  assets.FS(),
		Store:   store,
		Limiter: contact.NewLimiter(0),
	})
	return srv, store
}

func get(srv *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	w := get(srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, Dev: true}, defaultSite(t), Deps{})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageClosedByDefault(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	w := get(srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if strings.Contains(body, `role="dialog"`) {
		t.Error("no overlay should be open without query state")
	}
	if !strings.Contains(body, `href="/?contact=1"`) {
		t.Error("expected call-to-action links that open the contact overlay")
	}
}

func TestPageRestoresQueryState(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	body := get(srv, "/?contact=1").Body.String()
	if strings.Count(body, `data-overlay="contact"`) != 1 {
		t.Error("expected exactly one contact overlay")
	}
	if !strings.Contains(body, `data-key="Escape"`) {
		t.Error("expected an Escape binding while the overlay is open")
	}

	body = get(srv, "/?image=1").Body.String()
	if !strings.Contains(body, `data-overlay="lightbox"`) {
		t.Error("expected the lightbox for image=1")
	}
}

func TestPageIgnoresOutOfRangeState(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	w := get(srv, "/?image=99&faq=42")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `role="dialog"`) {
		t.Error("out-of-range image must not open the lightbox")
	}
}

func TestStaticAssets(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{Static: assets.FS()})

	w := get(srv, "/static/app.css")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q", ct)
	}

	if w := get(srv, "/static/missing.css"); w.Code != http.StatusNotFound {
		t.Errorf("missing asset: expected 404, got %d", w.Code)
	}
}

func TestContactDisabled(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	req := httptest.NewRequest("POST", "/contact", strings.NewReader("name=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a store, got %d", w.Code)
	}
	if strings.Contains(get(srv, "/").Body.String(), `action="/contact"`) {
		t.Error("form must not post anywhere when contact is disabled")
	}
}

func TestContactSubmit(t *testing.T) {
	srv, store := newContactServer(t)

	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"stage":   {"builder"},
		"message": {"想了解孵化营"},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != contact.SentURL {
		t.Errorf("Location = %q, want %q", loc, contact.SentURL)
	}

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("stored %d submissions, want 1", n)
	}
}

func TestContactValidationRendersPage(t *testing.T) {
	srv, store := newContactServer(t)

	form := url.Values{"name": {"Ada"}, "email": {"not-an-email"}, "stage": {"builder"}}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-error="email"`) {
		t.Error("expected the email error in the re-rendered page")
	}
	if !strings.Contains(body, `value="Ada"`) {
		t.Error("expected entered values to be kept")
	}

	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("stored %d submissions, want 0", n)
	}
}

func TestSentNotice(t *testing.T) {
	srv, _ := newContactServer(t)

	body := get(srv, "/?sent=1").Body.String()
	if !strings.Contains(body, `action="/contact"`) {
		t.Error("expected an enabled form")
	}
	if !strings.Contains(body, `contact-form__notice`) {
		t.Error("expected the sent notice")
	}
}

func TestSetSiteSwapsSnapshot(t *testing.T) {
	site := defaultSite(t)
	srv := New(Config{Port: 0}, site, Deps{})

	next := *site
	next.Brand.Name = "Swapped Brand"
	srv.SetSite(&next)

	if srv.Site() != &next {
		t.Fatal("Site() should return the swapped snapshot")
	}
	if !strings.Contains(get(srv, "/").Body.String(), "Swapped Brand") {
		t.Error("page should render the swapped content")
	}
}

func newLimitedServer(t *testing.T, trustProxy bool) (*Server, *contact.Store, *contact.Limiter) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := contact.NewStore(database)
	limiter := contact.NewLimiter(1)
	srv := New(Config{Port: 0, TrustProxy: trustProxy}, defaultSite(t), Deps{
		Store:   store,
		Limiter: limiter,
	})
	return srv, store, limiter
}

func postFrom(srv *Server, forwardedFor string) *httptest.ResponseRecorder {
	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "stage": {"builder"}}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = "203.0.113.7:4321"
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestContactRateLimitIgnoresForwardedFor(t *testing.T) {
	srv, store, limiter := newLimitedServer(t, false)

	accepted := 0
	for i := 0; i < 20; i++ {
		w := postFrom(srv, "198.51.100."+strconv.Itoa(i))
		switch w.Code {
		case http.StatusSeeOther:
			accepted++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("request %d: unexpected status %d", i, w.Code)
		}
	}

	if accepted != 1 {
		t.Errorf("accepted %d submissions from one peer, want 1", accepted)
	}
	if n, _ := store.Count(context.Background()); n != 1 {
		t.Errorf("stored %d submissions, want 1", n)
	}
	if limiter.Len() != 1 {
		t.Errorf("limiter tracks %d clients, want 1", limiter.Len())
	}
}

func TestContactRateLimitBehindTrustedProxy(t *testing.T) {
	srv, _, limiter := newLimitedServer(t, true)

	if w := postFrom(srv, "198.51.100.1"); w.Code != http.StatusSeeOther {
		t.Fatalf("first client: expected 303, got %d", w.Code)
	}
	if w := postFrom(srv, "198.51.100.2"); w.Code != http.StatusSeeOther {
		t.Fatalf("second client: expected 303, got %d", w.Code)
	}
	if w := postFrom(srv, "198.51.100.1"); w.Code != http.StatusTooManyRequests {
		t.Errorf("repeat client: expected 429, got %d", w.Code)
	}
	if limiter.Len() != 2 {
		t.Errorf("limiter tracks %d clients, want 2", limiter.Len())
	}
}

func TestFAQDeepLinkNotCarriedByLinks(t *testing.T) {
	srv := New(Config{Port: 0}, defaultSite(t), Deps{})

	body := get(srv, "/?faq=1").Body.String()
	if !strings.Contains(body, `data-index="1" open>`) {
		t.Error("the deep-linked FAQ row should render open")
	}
	if strings.Contains(body, "faq=") {
		t.Error("action links must not carry FAQ state")
	}
	if !strings.Contains(body, `href="/?contact=1"`) {
		t.Error("contact links should encode only the overlay state")
	}
}
