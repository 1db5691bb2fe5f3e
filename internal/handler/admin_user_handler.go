package handler

import (
	"errors"
	"net/http"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type AdminUserHandler struct {
	adminUserService *service.AdminUserService
}

func NewAdminUserHandler(adminUserService *service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{adminUserService: adminUserService}
}

// CreateAdminUserRequest is the create payload.
type CreateAdminUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// UpdateAdminUserRequest is the update payload. An empty password keeps the
// current one.
type UpdateAdminUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"omitempty,min=6,max=128"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// GetAll godoc
// GET /api/v1/admin/users?search=&page=&per_page=
func (h *AdminUserHandler) GetAll(c *gin.Context) {
	page, perPage := pageParams(c)

	admins, total, err := h.adminUserService.ListPaginated(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if admins == nil {
		admins = []model.Admin{}
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": admins}, buildPagination(page, perPage, total))
}

// GetRoles godoc
// GET /api/v1/admin/users/roles
func (h *AdminUserHandler) GetRoles(c *gin.Context) {
	roles, err := h.adminUserService.ListRoles(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if roles == nil {
		roles = []model.Role{}
	}
	response.Success(c, http.StatusOK, gin.H{"roles": roles})
}

// GetByID godoc
// GET /api/v1/admin/users/:id
func (h *AdminUserHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	admin, err := h.adminUserService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": admin})
}

// Create godoc
// POST /api/v1/admin/users
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req CreateAdminUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin := &model.Admin{Email: req.Email, Name: req.Name, RoleID: req.RoleID}
	if err := h.adminUserService.Create(c.Request.Context(), admin, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": admin})
}

// Update godoc
// PUT /api/v1/admin/users/:id
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateAdminUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin := &model.Admin{ID: id, Email: req.Email, Name: req.Name, RoleID: req.RoleID}
	if err := h.adminUserService.Update(c.Request.Context(), admin, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": admin})
}

// Delete godoc
// DELETE /api/v1/admin/users/:id
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.adminUserService.Delete(c.Request.Context(), id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted successfully"})
}
