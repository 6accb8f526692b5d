package domain

import "time"

// EventKind classifies a domain event.
type EventKind string

const (
	EventUserRegistered    EventKind = "user_registered"
	EventLoginFailed       EventKind = "login_failed"
	EventCourseCreated     EventKind = "course_created"
	EventCourseUpdated     EventKind = "course_updated"
	EventCourseDeleted     EventKind = "course_deleted"
	EventCollectionCreated EventKind = "collection_created"
	EventCollectionUpdated EventKind = "collection_updated"
	EventCollectionDeleted EventKind = "collection_deleted"
)

// Event records a completed state change for asynchronous observers
// (metrics, cache invalidation). Events are emitted after the mutation has
// been persisted, never before.
type Event struct {
	Kind       EventKind
	ResourceID string
	ActorID    string
	Timestamp  time.Time
}
