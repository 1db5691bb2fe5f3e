package handler

import (
	"net/http"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
	catalogService    *service.CatalogService
}

func NewDepartmentHandler(departmentService *service.DepartmentService, catalogService *service.CatalogService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService, catalogService: catalogService}
}

// DepartmentRequest is the create/update payload.
type DepartmentRequest struct {
	Code string `json:"code" binding:"required,max=16"`
	Name string `json:"name" binding:"required,max=255"`
}

// GetAll godoc
// GET /api/v1/admin/departments
func (h *DepartmentHandler) GetAll(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if departments == nil {
		departments = []model.Department{}
	}
	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

// GetByID godoc
// GET /api/v1/admin/departments/:id
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// GetCatalog godoc
// GET /api/v1/admin/departments/:id/catalog
// Returns the subjects, sections, and teachers the class form may offer for
// this department.
func (h *DepartmentHandler) GetCatalog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	opts, err := h.catalogService.OptionsForDepartment(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

// Create godoc
// POST /api/v1/admin/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req DepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{Code: req.Code, Name: req.Name}
	if err := h.departmentService.Create(c.Request.Context(), department); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"department": department})
}

// Update godoc
// PUT /api/v1/admin/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req DepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{ID: id, Code: req.Code, Name: req.Name}
	if err := h.departmentService.Update(c.Request.Context(), department); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// Delete godoc
// DELETE /api/v1/admin/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "department deleted successfully"})
}
