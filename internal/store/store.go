// Package store holds the volatile in-memory event and attendee collections.
// It is the sole writer of identifiers and derived attendee counts. All state
// is lost on process restart.
package store

import (
	"strconv"
	"sync"
	"time"

	"eventmanager/internal/domain"
)

// isoMillis matches JavaScript's Date.toISOString: UTC with millisecond
// precision and a literal Z suffix.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Store is the authoritative in-memory holder of events and attendees.
// Construct it with New and pass it to the resolver layer; there is no global
// instance. The mutex covers both collections so that every multi-step
// operation (create/delete attendee plus recount, event delete plus cascade)
// is a single critical section and attendee counts never drift.
type Store struct {
	mu             sync.RWMutex
	events         []domain.Event
	attendees      []domain.Attendee
	nextEventID    int
	nextAttendeeID int

	now func() time.Time // test hook
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		nextEventID:    1,
		nextAttendeeID: 1,
		now:            time.Now,
	}
}

func (s *Store) nowISO() string {
	return s.now().UTC().Format(isoMillis)
}

// ListEvents returns a snapshot copy of all events in insertion order.
func (s *Store) ListEvents() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// GetEvent returns the event with the given id. The second return value
// reports whether it was found; absence is not an error.
func (s *Store) GetEvent(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getEventLocked(id)
}

func (s *Store) getEventLocked(id string) (domain.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// CreateEvent appends a new event with the next identifier and fresh
// timestamps. Input is assumed to be validated and sanitized by the caller.
func (s *Store) CreateEvent(title, date string) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowISO()
	e := domain.Event{
		ID:        strconv.Itoa(s.nextEventID),
		Title:     title,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextEventID++
	s.events = append(s.events, e)
	return e
}

// DeleteEvent removes the event and every attendee registered to it in one
// atomic step. It reports whether an event was found; not found is a boolean
// outcome, not an error.
func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.events {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)

	kept := s.attendees[:0]
	for _, a := range s.attendees {
		if a.EventID != id {
			kept = append(kept, a)
		}
	}
	s.attendees = kept
	return true
}

// ListAttendeesForEvent returns the attendees of the given event in insertion
// order. An unknown eventID yields an empty slice.
func (s *Store) ListAttendeesForEvent(eventID string) []domain.Attendee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Attendee, 0)
	for _, a := range s.attendees {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out
}

// GetAttendee returns the attendee with the given id and whether it was found.
func (s *Store) GetAttendee(id string) (domain.Attendee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.attendees {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Attendee{}, false
}

// CreateAttendee appends a new attendee and recomputes the owning event's
// attendee count. It does not check that eventID refers to an existing event;
// that referential check is the caller's responsibility.
func (s *Store) CreateAttendee(name string, email *string, eventID string) domain.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Attendee{
		ID:        strconv.Itoa(s.nextAttendeeID),
		Name:      name,
		Email:     email,
		EventID:   eventID,
		CreatedAt: s.nowISO(),
	}
	s.nextAttendeeID++
	s.attendees = append(s.attendees, a)
	s.recountLocked(eventID)
	return a
}

// DeleteAttendee removes the attendee if present and recomputes the owning
// event's attendee count. It reports whether an attendee was found.
func (s *Store) DeleteAttendee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.attendees {
		if a.ID == id {
			s.attendees = append(s.attendees[:i], s.attendees[i+1:]...)
			s.recountLocked(a.EventID)
			return true
		}
	}
	return false
}

// AttendeeCount returns the live number of attendees registered to the event.
func (s *Store) AttendeeCount(eventID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked(eventID)
}

func (s *Store) countLocked(eventID string) int {
	n := 0
	for _, a := range s.attendees {
		if a.EventID == eventID {
			n++
		}
	}
	return n
}

// recountLocked refreshes the derived count on the owning event. The count is
// always recomputed from the attendee collection, never adjusted
// incrementally.
func (s *Store) recountLocked(eventID string) {
	for i := range s.events {
		if s.events[i].ID == eventID {
			s.events[i].AttendeeCount = s.countLocked(eventID)
			return
		}
	}
}
