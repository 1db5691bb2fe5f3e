package handler

import (
	"errors"
	"net/http"

	"github.com/classpoint/sis-backend/internal/middleware"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	adminService *service.AdminService
}

func NewAuthHandler(adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// Login godoc
// POST /api/v1/auth/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.adminService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout godoc
// POST /api/v1/auth/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	if err := h.adminService.Logout(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Profile godoc
// GET /api/v1/auth/admin/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	admin, permissions, err := h.adminService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		failDBError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin, "permissions": permissions})
}
