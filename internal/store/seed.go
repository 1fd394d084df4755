package store

import "eventmanager/internal/domain"

func strptr(s string) *string { return &s }

// Seed populates the store with a couple of sample events and attendees for
// local development. It replaces any existing contents and advances the id
// counters past the seeded records.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowISO()
	s.events = []domain.Event{
		{
			ID:        "1",
			Title:     "Team Standup",
			Date:      "2024-01-15T10:00:00.000Z",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Title:     "Product Launch",
			Date:      "2024-02-01T14:00:00.000Z",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	s.nextEventID = 3

	s.attendees = []domain.Attendee{
		{ID: "1", Name: "John Doe", Email: strptr("john@example.com"), EventID: "1", CreatedAt: now},
		{ID: "2", Name: "Jane Smith", Email: strptr("jane@example.com"), EventID: "1", CreatedAt: now},
		{ID: "3", Name: "Bob Wilson", EventID: "2", CreatedAt: now},
	}
	s.nextAttendeeID = 4

	s.recountLocked("1")
	s.recountLocked("2")
}
