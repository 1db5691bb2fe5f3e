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

type TeacherHandler struct {
	teacherService *service.TeacherService
}

func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// TeacherRequest is the create/update payload.
type TeacherRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email,max=255"`
}

// GetAll godoc
// GET /api/v1/admin/teachers?department_id=
func (h *TeacherHandler) GetAll(c *gin.Context) {
	departmentID, ok := departmentFilter(c)
	if !ok {
		return
	}

	teachers, err := h.teacherService.List(c.Request.Context(), departmentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if teachers == nil {
		teachers = []model.Teacher{}
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// GetByID godoc
// GET /api/v1/admin/teachers/:id
func (h *TeacherHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	teacher, err := h.teacherService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Create godoc
// POST /api/v1/admin/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req TeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{DepartmentID: req.DepartmentID, Name: req.Name, Email: req.Email}
	if err := h.teacherService.Create(c.Request.Context(), teacher); err != nil {
		if errors.Is(err, repository.ErrDuplicateTeacherEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// Update godoc
// PUT /api/v1/admin/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req TeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{ID: id, DepartmentID: req.DepartmentID, Name: req.Name, Email: req.Email}
	if err := h.teacherService.Update(c.Request.Context(), teacher); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Delete godoc
// DELETE /api/v1/admin/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.teacherService.Delete(c.Request.Context(), id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}
