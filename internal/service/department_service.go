package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
)

// DepartmentService handles department business logic.
type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	catalog        *CatalogService
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo *repository.DepartmentRepository, catalog *CatalogService) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, catalog: catalog}
}

// GetByID retrieves a department.
func (s *DepartmentService) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// List retrieves all departments.
func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.departmentRepo.List(ctx)
}

// Create inserts a new department.
func (s *DepartmentService) Create(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Create(ctx, d)
}

// Update modifies a department.
func (s *DepartmentService) Update(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Update(ctx, d)
}

// Delete removes a department and drops its cached catalog.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx, id)
	return nil
}
