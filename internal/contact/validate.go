package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/mrbear1024/xgrowth/internal/content"
)

const (
	maxName    = 80
	maxEmail   = 254
	maxMessage = 2000
)

// Normalize trims surrounding whitespace from every user-entered field.
func Normalize(s Submission) Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Stage = strings.TrimSpace(s.Stage)
	s.Message = strings.TrimSpace(s.Message)
	return s
}

// Validate checks a normalized submission against the site's contact
// settings. It returns nil when the submission is acceptable.
func Validate(s Submission, c content.Contact) error {
	errs := FieldErrors{}

	switch {
	case s.Name == "":
		errs["name"] = "请填写称呼"
	case utf8.RuneCountInString(s.Name) > maxName:
		errs["name"] = "称呼过长"
	}

	switch {
	case s.Email == "":
		errs["email"] = "请填写邮箱"
	case len(s.Email) > maxEmail:
		errs["email"] = "邮箱过长"
	default:
		addr, err := mail.ParseAddress(s.Email)
		if err != nil || addr.Address != s.Email {
			errs["email"] = "请填写有效邮箱"
		}
	}

	if len(c.Stages) > 0 && !c.HasStage(s.Stage) {
		errs["stage"] = "请选择当前阶段"
	}

	if utf8.RuneCountInString(s.Message) > maxMessage {
		errs["message"] = "内容过长"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
