package domain

// Attendee represents a person registered to a single event. Email is
// optional; when present it must be unique (case-insensitively) among the
// attendees of the same event only.
type Attendee struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	EventID   string  `json:"eventId"`
	CreatedAt string  `json:"createdAt"`
}

// CreateAttendeeInput is the wire input for the createAttendee mutation.
type CreateAttendeeInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   *string `json:"email"`
	EventID string  `json:"eventId" validate:"required"`
}
