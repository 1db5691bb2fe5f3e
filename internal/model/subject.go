package model

import "time"

// Subject represents an academic course offered by a department.
type Subject struct {
	ID           int       `json:"id"`
	DepartmentID int       `json:"department_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSubjectRequest is the payload for creating or updating a subject.
type CreateSubjectRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Code         string `json:"code" binding:"required,min=2,max=20"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
}
