package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the GraphQL contract served at /graphql. It is the authoritative
// API surface; clients depend on this shape, not on internal types.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Event {
		id: ID!
		title: String!
		date: String!
		createdAt: String!
		updatedAt: String!
		attendees: [Attendee!]!
		attendeeCount: Int!
	}

	type Attendee {
		id: ID!
		name: String!
		email: String
		eventId: String!
		createdAt: String!
	}

	input CreateEventInput {
		title: String!
		date: String!
	}

	input CreateAttendeeInput {
		name: String!
		email: String
		eventId: String!
	}

	type Query {
		events: [Event!]!
		event(id: ID!): Event
		attendees(eventId: ID!): [Attendee!]!
	}

	type Mutation {
		createEvent(input: CreateEventInput!): Event!
		deleteEvent(id: ID!): Boolean!
		createAttendee(input: CreateAttendeeInput!): Attendee!
		deleteAttendee(id: ID!): Boolean!
	}
`

// MustSchema parses Schema against the resolver, panicking on any mismatch
// between the SDL and the resolver methods.
func MustSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
