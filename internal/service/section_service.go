package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
)

// SectionService handles section business logic.
type SectionService struct {
	sectionRepo *repository.SectionRepository
	catalog     *CatalogService
}

// NewSectionService creates a new SectionService.
func NewSectionService(sectionRepo *repository.SectionRepository, catalog *CatalogService) *SectionService {
	return &SectionService{sectionRepo: sectionRepo, catalog: catalog}
}

// GetByID retrieves a section.
func (s *SectionService) GetByID(ctx context.Context, id int) (*model.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// List retrieves sections, optionally scoped to a department.
func (s *SectionService) List(ctx context.Context, departmentID *int) ([]model.Section, error) {
	return s.sectionRepo.List(ctx, departmentID)
}

// Create inserts a new section and drops the department's cached catalog.
func (s *SectionService) Create(ctx context.Context, section *model.Section) error {
	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, section.DepartmentID)
	return nil
}

// Update modifies a section, invalidating old and new department catalogs.
func (s *SectionService) Update(ctx context.Context, section *model.Section) error {
	existing, err := s.sectionRepo.GetByID(ctx, section.ID)
	if err != nil {
		return err
	}
	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, section.DepartmentID)
	if existing.DepartmentID != section.DepartmentID {
		s.catalog.Invalidate(ctx, existing.DepartmentID)
	}
	return nil
}

// Delete removes a section and drops the department's cached catalog.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	existing, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, existing.DepartmentID)
	return nil
}
