// Package validate rejects malformed mutation input before it reaches the
// store and sanitizes free-text fields. Rules are checked fail-fast: the first
// violation wins and is returned as a domain.InvalidInput error with a
// user-facing message.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"eventmanager/internal/domain"
)

// go-playground/validator suggests using a single instance of the validator
// since it caches struct metadata.
var v = validator.New()

// emailRegex is a deliberately simple syntactic check: local part, @, and a
// domain containing a dot. It is not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var sanitizeReplacer = strings.NewReplacer("<", "", ">", "")

// dateLayouts are the accepted event date formats, tried in order. RFC 3339
// covers the ISO strings the web client sends; the shorter layouts accept
// datetime-local and plain date form values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Sanitize trims surrounding whitespace and strips angle brackets from a
// free-text field. This is a minimal defense against markup injection, not a
// substitute for output encoding at render time.
func Sanitize(s string) string {
	return sanitizeReplacer.Replace(strings.TrimSpace(s))
}

// Event sanitizes and validates input for the createEvent mutation, mutating
// the input in place so the sanitized values are what get stored.
func Event(in *domain.CreateEventInput) error {
	in.Title = Sanitize(in.Title)
	in.Date = strings.TrimSpace(in.Date)

	if err := v.Struct(in); err != nil {
		return firstViolation(err)
	}

	t, ok := parseDate(in.Date)
	if !ok {
		return domain.InvalidInput("Date must be a valid date")
	}
	if t.Before(time.Now()) {
		return domain.InvalidInput("Date cannot be in the past")
	}
	return nil
}

// Attendee sanitizes and validates input for the createAttendee mutation. The
// referential checks (event existence, per-event email uniqueness) need the
// store and live in the resolver layer.
func Attendee(in *domain.CreateAttendeeInput) error {
	in.Name = Sanitize(in.Name)
	if in.Email != nil {
		email := Sanitize(*in.Email)
		if email == "" {
			in.Email = nil
		} else {
			in.Email = &email
		}
	}

	if err := v.Struct(in); err != nil {
		return firstViolation(err)
	}

	if in.Email != nil && !emailRegex.MatchString(*in.Email) {
		return domain.InvalidInput("Email must be a valid email address")
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// firstViolation converts the first field error reported by the validator
// into a user-facing message.
func firstViolation(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.InvalidInput("Invalid input")
	}
	fe := verrs[0]
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.InvalidInput(fmt.Sprintf("%s is required", field))
	case "min":
		return domain.InvalidInput(fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "max":
		return domain.InvalidInput(fmt.Sprintf("%s must be %s characters or fewer", field, fe.Param()))
	default:
		return domain.InvalidInput(fmt.Sprintf("%s is invalid", field))
	}
}

func fieldLabel(name string) string {
	if name == "EventID" {
		return "Event ID"
	}
	return name
}
