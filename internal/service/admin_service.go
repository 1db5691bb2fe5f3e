package service

import (
	"context"
	"errors"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AdminService handles console login and the authenticated admin's own
// profile.
type AdminService struct {
	adminRepo *repository.AdminRepository
	roleRepo  *repository.RoleRepository
	auth      *AuthService
	log       zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, roleRepo *repository.RoleRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		roleRepo:  roleRepo,
		auth:      auth,
		log:       log.With().Str("component", "admin_service").Logger(),
	}
}

// Login authenticates an admin by email and password and issues a session
// token. A successful login replaces any existing session for that admin.
func (s *AdminService) Login(ctx context.Context, req model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	permissions, err := s.roleRepo.GetPermissionsByRoleID(ctx, admin.RoleID)
	if err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateAdminToken(ctx, admin.ID, admin.RoleID, permissions)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("admin_id", admin.ID).Msg("Admin logged in")
	return &model.AdminLoginResponse{Token: token, Admin: *admin, Permissions: permissions}, nil
}

// Logout invalidates the admin's active session.
func (s *AdminService) Logout(ctx context.Context, adminID int) error {
	return s.auth.ResetAdminSession(ctx, adminID)
}

// GetProfile retrieves the authenticated admin with their permissions.
func (s *AdminService) GetProfile(ctx context.Context, adminID int) (*model.Admin, []string, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, nil, err
	}
	permissions, err := s.roleRepo.GetPermissionsByRoleID(ctx, admin.RoleID)
	if err != nil {
		return nil, nil, err
	}
	return admin, permissions, nil
}
