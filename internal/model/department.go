package model

import "time"

// Department represents an academic department that owns subjects,
// sections, and teachers.
type Department struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateDepartmentRequest is the payload for creating or updating a department.
type CreateDepartmentRequest struct {
	Code string `json:"code" binding:"required,min=2,max=20"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}
