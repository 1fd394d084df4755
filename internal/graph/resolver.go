// Package graph implements the GraphQL resolvers: the stable API contract
// that composes the validator and the store. Queries read the store directly;
// mutations validate first, then write. Rule violations come back as errors
// whose messages are surfaced verbatim in the GraphQL error payload.
package graph

import (
	"context"
	"log/slog"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"

	"eventmanager/internal/domain"
	"eventmanager/internal/store"
	"eventmanager/internal/validate"
)

// Resolver is the root query and mutation resolver.
type Resolver struct {
	log   *slog.Logger
	store *store.Store
}

func NewResolver(logger *slog.Logger, st *store.Store) *Resolver {
	return &Resolver{
		log:   logger,
		store: st,
	}
}

func (r *Resolver) Events(ctx context.Context) []*EventResolver {
	events := r.store.ListEvents()
	out := make([]*EventResolver, 0, len(events))
	for _, e := range events {
		out = append(out, &EventResolver{event: e, store: r.store})
	}
	return out
}

func (r *Resolver) Event(ctx context.Context, args struct{ ID graphql.ID }) *EventResolver {
	e, ok := r.store.GetEvent(string(args.ID))
	if !ok {
		return nil
	}
	return &EventResolver{event: e, store: r.store}
}

func (r *Resolver) Attendees(ctx context.Context, args struct{ EventID graphql.ID }) []*AttendeeResolver {
	attendees := r.store.ListAttendeesForEvent(string(args.EventID))
	out := make([]*AttendeeResolver, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, &AttendeeResolver{attendee: a})
	}
	return out
}

func (r *Resolver) CreateEvent(ctx context.Context, args struct{ Input domain.CreateEventInput }) (*EventResolver, error) {
	input := args.Input
	if err := validate.Event(&input); err != nil {
		return nil, err
	}

	e := r.store.CreateEvent(input.Title, input.Date)
	r.log.InfoContext(ctx, "event created", "id", e.ID, "title", e.Title)
	return &EventResolver{event: e, store: r.store}, nil
}

func (r *Resolver) DeleteEvent(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id := string(args.ID)
	if _, ok := r.store.GetEvent(id); !ok {
		return false, domain.NotFound("Event not found")
	}

	deleted := r.store.DeleteEvent(id)
	if deleted {
		r.log.InfoContext(ctx, "event deleted", "id", id)
	}
	return deleted, nil
}

func (r *Resolver) CreateAttendee(ctx context.Context, args struct{ Input domain.CreateAttendeeInput }) (*AttendeeResolver, error) {
	input := args.Input
	if err := validate.Attendee(&input); err != nil {
		return nil, err
	}

	if _, ok := r.store.GetEvent(input.EventID); !ok {
		return nil, domain.NotFound("Event not found")
	}

	if input.Email != nil {
		for _, a := range r.store.ListAttendeesForEvent(input.EventID) {
			if a.Email != nil && strings.EqualFold(*a.Email, *input.Email) {
				return nil, domain.InvalidInput("An attendee with this email is already registered for this event")
			}
		}
	}

	a := r.store.CreateAttendee(input.Name, input.Email, input.EventID)
	r.log.InfoContext(ctx, "attendee created", "id", a.ID, "event_id", a.EventID)
	return &AttendeeResolver{attendee: a}, nil
}

func (r *Resolver) DeleteAttendee(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id := string(args.ID)
	if _, ok := r.store.GetAttendee(id); !ok {
		return false, domain.NotFound("Attendee not found")
	}

	deleted := r.store.DeleteAttendee(id)
	if deleted {
		r.log.InfoContext(ctx, "attendee deleted", "id", id)
	}
	return deleted, nil
}

// EventResolver resolves the fields of the Event type. The attendees and
// attendeeCount fields read the store on every resolution so they are never
// stale relative to the live attendee collection.
type EventResolver struct {
	event domain.Event
	store *store.Store
}

func (r *EventResolver) ID() graphql.ID    { return graphql.ID(r.event.ID) }
func (r *EventResolver) Title() string     { return r.event.Title }
func (r *EventResolver) Date() string      { return r.event.Date }
func (r *EventResolver) CreatedAt() string { return r.event.CreatedAt }
func (r *EventResolver) UpdatedAt() string { return r.event.UpdatedAt }

func (r *EventResolver) Attendees() []*AttendeeResolver {
	attendees := r.store.ListAttendeesForEvent(r.event.ID)
	out := make([]*AttendeeResolver, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, &AttendeeResolver{attendee: a})
	}
	return out
}

func (r *EventResolver) AttendeeCount() int32 {
	return int32(r.store.AttendeeCount(r.event.ID))
}

// AttendeeResolver resolves the fields of the Attendee type.
type AttendeeResolver struct {
	attendee domain.Attendee
}

func (r *AttendeeResolver) ID() graphql.ID    { return graphql.ID(r.attendee.ID) }
func (r *AttendeeResolver) Name() string      { return r.attendee.Name }
func (r *AttendeeResolver) Email() *string    { return r.attendee.Email }
func (r *AttendeeResolver) EventID() string   { return r.attendee.EventID }
func (r *AttendeeResolver) CreatedAt() string { return r.attendee.CreatedAt }
