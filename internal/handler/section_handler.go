package handler

import (
	"net/http"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	sectionService *service.SectionService
}

func NewSectionHandler(sectionService *service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// SectionRequest is the create/update payload.
type SectionRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=255"`
	Capacity     int    `json:"capacity" binding:"required,min=1,max=500"`
}

// GetAll godoc
// GET /api/v1/admin/sections?department_id=
func (h *SectionHandler) GetAll(c *gin.Context) {
	departmentID, ok := departmentFilter(c)
	if !ok {
		return
	}

	sections, err := h.sectionService.List(c.Request.Context(), departmentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if sections == nil {
		sections = []model.Section{}
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// GetByID godoc
// GET /api/v1/admin/sections/:id
func (h *SectionHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	section, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// Create godoc
// POST /api/v1/admin/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req SectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{DepartmentID: req.DepartmentID, Name: req.Name, Capacity: req.Capacity}
	if err := h.sectionService.Create(c.Request.Context(), section); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"section": section})
}

// Update godoc
// PUT /api/v1/admin/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{ID: id, DepartmentID: req.DepartmentID, Name: req.Name, Capacity: req.Capacity}
	if err := h.sectionService.Update(c.Request.Context(), section); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// Delete godoc
// DELETE /api/v1/admin/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "section deleted successfully"})
}
