package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
)

// SubjectService handles subject business logic.
type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	catalog     *CatalogService
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo *repository.SubjectRepository, catalog *CatalogService) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo, catalog: catalog}
}

// GetByID retrieves a subject.
func (s *SubjectService) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// List retrieves subjects, optionally scoped to a department.
func (s *SubjectService) List(ctx context.Context, departmentID *int) ([]model.Subject, error) {
	return s.subjectRepo.List(ctx, departmentID)
}

// Create inserts a new subject and drops the department's cached catalog.
func (s *SubjectService) Create(ctx context.Context, subject *model.Subject) error {
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, subject.DepartmentID)
	return nil
}

// Update modifies a subject. Both the old and new department catalogs are
// invalidated in case the subject moved between departments.
func (s *SubjectService) Update(ctx context.Context, subject *model.Subject) error {
	existing, err := s.subjectRepo.GetByID(ctx, subject.ID)
	if err != nil {
		return err
	}
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, subject.DepartmentID)
	if existing.DepartmentID != subject.DepartmentID {
		s.catalog.Invalidate(ctx, existing.DepartmentID)
	}
	return nil
}

// Delete removes a subject and drops the department's cached catalog.
func (s *SubjectService) Delete(ctx context.Context, id int) error {
	existing, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, existing.DepartmentID)
	return nil
}
