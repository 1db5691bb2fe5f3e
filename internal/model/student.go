package model

import "time"

// Student represents an enrollable student. The set of subjects a student
// takes is never stored on the student; it is derived from the class rosters
// the student appears in.
type Student struct {
	ID        int       `json:"id"`
	StudentNo string    `json:"student_no"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SectionID *int      `json:"section_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for creating a new student.
type CreateStudentRequest struct {
	StudentNo string `json:"student_no" binding:"required,min=4,max=20"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	SectionID *int   `json:"section_id" binding:"omitempty"`
}

// UpdateStudentRequest is the payload for updating an existing student.
type UpdateStudentRequest struct {
	StudentNo string `json:"student_no" binding:"required,min=4,max=20"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	SectionID *int   `json:"section_id" binding:"omitempty"`
}
