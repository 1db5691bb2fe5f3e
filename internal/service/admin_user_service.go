package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
)

// AdminUserService manages the console user accounts themselves.
type AdminUserService struct {
	adminRepo *repository.AdminRepository
	roleRepo  *repository.RoleRepository
	auth      *AuthService
}

// NewAdminUserService creates a new AdminUserService.
func NewAdminUserService(adminRepo *repository.AdminRepository, roleRepo *repository.RoleRepository, auth *AuthService) *AdminUserService {
	return &AdminUserService{adminRepo: adminRepo, roleRepo: roleRepo, auth: auth}
}

// GetByID retrieves a console user.
func (s *AdminUserService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// ListPaginated retrieves console users with pagination and optional search.
func (s *AdminUserService) ListPaginated(ctx context.Context, search string, page, perPage int) ([]model.Admin, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.adminRepo.ListPaginated(ctx, search, perPage, (page-1)*perPage)
}

// ListRoles retrieves the assignable roles.
func (s *AdminUserService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roleRepo.ListRoles(ctx)
}

// Create adds a console user with a hashed password.
func (s *AdminUserService) Create(ctx context.Context, admin *model.Admin, password string) error {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.adminRepo.Create(ctx, admin)
}

// Update modifies a console user. An empty password keeps the current one.
// A role or password change invalidates the user's active session so stale
// permissions cannot outlive the edit.
func (s *AdminUserService) Update(ctx context.Context, admin *model.Admin, password string) error {
	existing, err := s.adminRepo.GetByID(ctx, admin.ID)
	if err != nil {
		return err
	}

	admin.PasswordHash = ""
	if password != "" {
		hash, err := s.auth.HashPassword(password)
		if err != nil {
			return err
		}
		admin.PasswordHash = hash
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return err
	}

	if password != "" || existing.RoleID != admin.RoleID {
		if err := s.auth.ResetAdminSession(ctx, admin.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a console user and their active session.
func (s *AdminUserService) Delete(ctx context.Context, id int) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.auth.ResetAdminSession(ctx, id)
}
