package websocket

import (
	"time"

	"github.com/classpoint/sis-backend/internal/enrollment"
)

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventClassCreated   Event = "class.created"
	EventClassUpdated   Event = "class.updated"
	EventClassDeleted   Event = "class.deleted"
	EventStudentAdded   Event = "roster.student_added"
	EventStudentRemoved Event = "roster.student_removed"
	EventError          Event = "error"
)

// ClassEventPayload is pushed to connected console sessions whenever a class
// or roster change commits.
type ClassEventPayload struct {
	Event     Event     `json:"event"`
	ClassID   int       `json:"class_id"`
	SubjectID int       `json:"subject_id,omitempty"`
	StudentID int       `json:"student_id,omitempty"`
	ActorID   int       `json:"actor_id"`
	At        time.Time `json:"at"`
}

// ErrorResponse is sent before closing a connection that cannot be served.
type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// PayloadFor converts a committed domain event into its wire form.
func PayloadFor(e enrollment.Event) ClassEventPayload {
	return ClassEventPayload{
		Event:     Event(e.Kind),
		ClassID:   e.ClassID,
		SubjectID: e.SubjectID,
		StudentID: e.StudentID,
		ActorID:   e.ActorID,
		At:        e.At,
	}
}
