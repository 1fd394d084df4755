package validate

import (
	"errors"
	"strings"
	"testing"

	"eventmanager/internal/domain"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Launch Party  ", "Launch Party"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"a < b > c", "a  b  c"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvent(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.CreateEventInput
		wantErr string
	}{
		{
			name:  "valid",
			input: domain.CreateEventInput{Title: "Launch Party", Date: "2100-01-01T00:00:00Z"},
		},
		{
			name:  "valid date-only layout",
			input: domain.CreateEventInput{Title: "Launch Party", Date: "2100-01-01"},
		},
		{
			name:    "title missing",
			input:   domain.CreateEventInput{Title: "   ", Date: "2100-01-01T00:00:00Z"},
			wantErr: "Title is required",
		},
		{
			name:    "title too short",
			input:   domain.CreateEventInput{Title: "Hi", Date: "2100-01-01T00:00:00Z"},
			wantErr: "Title must be at least 3 characters",
		},
		{
			name:    "title too long",
			input:   domain.CreateEventInput{Title: strings.Repeat("x", 201), Date: "2100-01-01T00:00:00Z"},
			wantErr: "Title must be 200 characters or fewer",
		},
		{
			name:    "date missing",
			input:   domain.CreateEventInput{Title: "Launch Party"},
			wantErr: "Date is required",
		},
		{
			name:    "date unparseable",
			input:   domain.CreateEventInput{Title: "Launch Party", Date: "next tuesday"},
			wantErr: "Date must be a valid date",
		},
		{
			name:    "date in the past",
			input:   domain.CreateEventInput{Title: "Launch Party", Date: "2000-01-01T00:00:00Z"},
			wantErr: "Date cannot be in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Event(&tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected error to match domain.ErrInvalidInput")
			}
		})
	}
}

func TestEventSanitizesTitle(t *testing.T) {
	in := domain.CreateEventInput{Title: "  <b>Launch</b> Party  ", Date: "2100-01-01T00:00:00Z"}
	if err := Event(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Title != "bLaunch/b Party" {
		t.Errorf("title not sanitized, got %q", in.Title)
	}
}

func TestAttendee(t *testing.T) {
	email := func(s string) *string { return &s }

	tests := []struct {
		name    string
		input   domain.CreateAttendeeInput
		wantErr string
	}{
		{
			name:  "valid with email",
			input: domain.CreateAttendeeInput{Name: "Al Smith", Email: email("al@example.com"), EventID: "1"},
		},
		{
			name:  "valid without email",
			input: domain.CreateAttendeeInput{Name: "Al Smith", EventID: "1"},
		},
		{
			name:    "name missing",
			input:   domain.CreateAttendeeInput{Name: "", EventID: "1"},
			wantErr: "Name is required",
		},
		{
			name:    "name too short",
			input:   domain.CreateAttendeeInput{Name: "A", EventID: "1"},
			wantErr: "Name must be at least 2 characters",
		},
		{
			name:    "name too long",
			input:   domain.CreateAttendeeInput{Name: strings.Repeat("x", 101), EventID: "1"},
			wantErr: "Name must be 100 characters or fewer",
		},
		{
			name:    "event id missing",
			input:   domain.CreateAttendeeInput{Name: "Al Smith"},
			wantErr: "Event ID is required",
		},
		{
			name:    "email malformed",
			input:   domain.CreateAttendeeInput{Name: "Al Smith", Email: email("not-an-email"), EventID: "1"},
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "email missing dot in domain",
			input:   domain.CreateAttendeeInput{Name: "Al Smith", Email: email("al@example"), EventID: "1"},
			wantErr: "Email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Attendee(&tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestAttendeeEmptyEmailBecomesAbsent(t *testing.T) {
	empty := "   "
	in := domain.CreateAttendeeInput{Name: "Al Smith", Email: &empty, EventID: "1"}
	if err := Attendee(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Email != nil {
		t.Errorf("expected blank email to be treated as absent, got %q", *in.Email)
	}
}

func TestAttendeeSanitizesNameAndEmail(t *testing.T) {
	email := " <AL@Example.com> "
	in := domain.CreateAttendeeInput{Name: " <i>Al</i> Smith ", Email: &email, EventID: "1"}
	if err := Attendee(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "iAl/i Smith" {
		t.Errorf("name not sanitized, got %q", in.Name)
	}
	if in.Email == nil || *in.Email != "AL@Example.com" {
		t.Errorf("email not sanitized, got %v", in.Email)
	}
}
