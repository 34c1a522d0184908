// Package contact accepts, validates and stores contact form submissions.
package contact

import (
	"sort"
	"strings"
	"time"
)

// Submission is one contact form entry.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Stage      string    `json:"stage"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
	UserAgent  string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Values returns the user-entered fields keyed by form field name.
func (s Submission) Values() map[string]string {
	return map[string]string{
		"name":    s.Name,
		"email":   s.Email,
		"stage":   s.Stage,
		"message": s.Message,
	}
}

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid submission: " + strings.Join(fields, ", ")
}
