package model

import (
	"time"

	"github.com/classpoint/sis-backend/internal/schedule"
)

// Class represents a scheduled teaching offering: one subject taught by one
// teacher to one section, with a weekly schedule and an enrolled roster.
// The subject, section, and teacher must all belong to the class's
// department for the class to be well-formed.
type Class struct {
	ID             int              `json:"id"`
	DepartmentID   int              `json:"department_id"`
	SubjectID      int              `json:"subject_id"`
	SectionID      int              `json:"section_id"`
	TeacherID      int              `json:"teacher_id"`
	DepartmentName string           `json:"department_name,omitempty"`
	SubjectName    string           `json:"subject_name,omitempty"`
	SectionName    string           `json:"section_name,omitempty"`
	TeacherName    string           `json:"teacher_name,omitempty"`
	Schedules      []schedule.Entry `json:"schedules"`
	StudentIDs     []int            `json:"student_ids"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ClassSummary is one row of the paginated class list.
type ClassSummary struct {
	ID             int       `json:"id"`
	DepartmentName string    `json:"department_name"`
	SubjectName    string    `json:"subject_name"`
	SectionName    string    `json:"section_name"`
	TeacherName    string    `json:"teacher_name"`
	ScheduleCount  int       `json:"schedule_count"`
	StudentCount   int       `json:"student_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClassDraft is the payload for creating a class or fully replacing one on
// edit. Schedules always arrive as candidate rows and the whole list is
// replaced on save, never patched entry by entry. day_of_week is a
// string-encoded integer 1-7 and times are "HH:MM" 24-hour strings.
type ClassDraft struct {
	DepartmentID int                  `json:"department_id" binding:"required"`
	SubjectID    int                  `json:"subject_id" binding:"required"`
	SectionID    int                  `json:"section_id" binding:"required"`
	TeacherID    int                  `json:"teacher_id" binding:"required"`
	Schedules    []schedule.Candidate `json:"schedules" binding:"required"`
	StudentIDs   []int                `json:"student_ids"`
}

// RosterPatch is the flattened add/remove delta of one roster edit session,
// sent once on explicit save.
type RosterPatch struct {
	Add    []int `json:"add"`
	Remove []int `json:"remove"`
}

// ClassUpdateRequest carries a full class draft plus the roster delta.
type ClassUpdateRequest struct {
	ClassDraft
	Roster RosterPatch `json:"roster"`
}

// RosterCheckRequest asks whether a student may be added to a class.
// PendingAdds/PendingRemoves describe the caller's open edit session so the
// server evaluates the same overlay the UI is showing.
type RosterCheckRequest struct {
	StudentID      int   `json:"student_id" binding:"required"`
	PendingAdds    []int `json:"pending_adds"`
	PendingRemoves []int `json:"pending_removes"`
}
