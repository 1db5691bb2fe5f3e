package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
)

// TeacherService handles teacher business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	catalog     *CatalogService
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository, catalog *CatalogService) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, catalog: catalog}
}

// GetByID retrieves a teacher.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// List retrieves teachers, optionally scoped to a department.
func (s *TeacherService) List(ctx context.Context, departmentID *int) ([]model.Teacher, error) {
	return s.teacherRepo.List(ctx, departmentID)
}

// Create inserts a new teacher and drops the department's cached catalog.
func (s *TeacherService) Create(ctx context.Context, teacher *model.Teacher) error {
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, teacher.DepartmentID)
	return nil
}

// Update modifies a teacher, invalidating old and new department catalogs.
func (s *TeacherService) Update(ctx context.Context, teacher *model.Teacher) error {
	existing, err := s.teacherRepo.GetByID(ctx, teacher.ID)
	if err != nil {
		return err
	}
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, teacher.DepartmentID)
	if existing.DepartmentID != teacher.DepartmentID {
		s.catalog.Invalidate(ctx, existing.DepartmentID)
	}
	return nil
}

// Delete removes a teacher and drops the department's cached catalog.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	existing, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, existing.DepartmentID)
	return nil
}
