package contact

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/view"
)

// SentURL is where a browser lands after a successful submission.
const SentURL = "/?sent=1#contact"

// FormError is the FieldErrors key for problems not tied to one field.
const FormError = view.FieldForm

const maxBody = 64 << 10

// RenderFunc re-renders the page with the given form state and status.
type RenderFunc func(w http.ResponseWriter, r *http.Request, form view.Form, status int)

// Handler serves POST /contact.
type Handler struct {
	store   *Store
	limiter *Limiter
	site    func() *content.Site
	render  RenderFunc
	logger  *zap.Logger
}

// NewHandler wires a submission handler. site returns the live content
// snapshot; render draws the page when the browser must see errors.
func NewHandler(store *Store, limiter *Limiter, site func() *content.Site, render RenderFunc, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:   store,
		limiter: limiter,
		site:    site,
		render:  render,
		logger:  logger.Named("contact"),
	}
}

// RegisterRoutes mounts the contact endpoint.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, Submission{}, FieldErrors{FormError: "提交内容无法解析"}, http.StatusBadRequest)
		return
	}

	sub := Normalize(Submission{
		Name:       r.PostForm.Get(view.FieldName),
		Email:      r.PostForm.Get(view.FieldEmail),
		Stage:      r.PostForm.Get(view.FieldStage),
		Message:    r.PostForm.Get(view.FieldMessage),
		RemoteAddr: clientAddr(r),
		UserAgent:  r.UserAgent(),
	})

	if !h.limiter.Allow(sub.RemoteAddr) {
		h.logger.Warn("submission rate limited", zap.String("client", sub.RemoteAddr))
		h.fail(w, r, sub, FieldErrors{FormError: "提交过于频繁，请稍后再试"}, http.StatusTooManyRequests)
		return
	}

	if err := Validate(sub, h.site().Contact); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			fe = FieldErrors{FormError: err.Error()}
		}
		h.fail(w, r, sub, fe, http.StatusUnprocessableEntity)
		return
	}

	created, err := h.store.Create(r.Context(), sub)
	if err != nil {
		h.logger.Error("storing submission", zap.Error(err))
		h.fail(w, r, sub, FieldErrors{FormError: "提交失败，请稍后再试"}, http.StatusInternalServerError)
		return
	}
	h.logger.Info("submission stored", zap.String("id", created.ID), zap.String("stage", created.Stage))

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
		return
	}
	http.Redirect(w, r, SentURL, http.StatusSeeOther)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, sub Submission, errs FieldErrors, status int) {
	if wantsJSON(r) || h.render == nil {
		writeJSON(w, status, map[string]interface{}{"errors": errs})
		return
	}
	h.render(w, r, view.Form{
		Enabled: true,
		Action:  "/contact",
		Values:  sub.Values(),
		Errors:  errs,
	}, status)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// clientAddr strips the port from the remote address set by the RealIP
// middleware.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
