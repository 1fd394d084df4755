package domain

// Event represents a scheduled occurrence owning zero or more attendees.
// Date, CreatedAt and UpdatedAt are ISO-8601 timestamp strings. UpdatedAt is
// set once at creation; no update mutation exists, so it always equals
// CreatedAt. AttendeeCount is derived from the live attendee collection and is
// maintained by the store, never by callers.
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	AttendeeCount int    `json:"attendeeCount"`
}

// CreateEventInput is the wire input for the createEvent mutation. The bounds
// are the server-side rules; client-side forms may advertise stricter ones.
type CreateEventInput struct {
	Title string `json:"title" validate:"required,min=3,max=200"`
	Date  string `json:"date" validate:"required"`
}
