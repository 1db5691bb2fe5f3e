package enrollment

import "time"

// EventKind labels a roster or class change produced by a save.
type EventKind string

const (
	EventClassCreated   EventKind = "class.created"
	EventClassUpdated   EventKind = "class.updated"
	EventClassDeleted   EventKind = "class.deleted"
	EventStudentAdded   EventKind = "roster.student_added"
	EventStudentRemoved EventKind = "roster.student_removed"
)

// Event is the explicit, typed record of a committed change. Callers that
// care about changes receive these through a Sink they registered; there is
// no process-wide bus to subscribe to.
type Event struct {
	Kind      EventKind `json:"kind"`
	ClassID   int       `json:"class_id"`
	SubjectID int       `json:"subject_id,omitempty"`
	StudentID int       `json:"student_id,omitempty"`
	ActorID   int       `json:"actor_id,omitempty"`
	At        time.Time `json:"at"`
}

// Sink receives committed-change events. Implementations must not block;
// slow consumers buffer or drop on their side.
type Sink interface {
	Publish(Event)
}
