package model

import "time"

// Section represents a student cohort within a department.
type Section struct {
	ID           int       `json:"id"`
	DepartmentID int       `json:"department_id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSectionRequest is the payload for creating or updating a section.
type CreateSectionRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required,min=1,max=50"`
	Capacity     int    `json:"capacity" binding:"required,min=1,max=500"`
}
