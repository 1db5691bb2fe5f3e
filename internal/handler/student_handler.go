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

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// StudentRequest is the create/update payload. SectionID is optional; a
// student may exist before being placed in a homeroom section.
type StudentRequest struct {
	StudentNo string `json:"student_no" binding:"required,max=32"`
	Name      string `json:"name" binding:"required,max=255"`
	Email     string `json:"email" binding:"required,email,max=255"`
	SectionID *int   `json:"section_id"`
}

// GetAll godoc
// GET /api/v1/admin/students?search=&page=&per_page=
func (h *StudentHandler) GetAll(c *gin.Context) {
	page, perPage := pageParams(c)

	students, total, err := h.studentService.ListPaginated(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if students == nil {
		students = []model.Student{}
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, buildPagination(page, perPage, total))
}

// GetByID godoc
// GET /api/v1/admin/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Create godoc
// POST /api/v1/admin/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req StudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{StudentNo: req.StudentNo, Name: req.Name, Email: req.Email, SectionID: req.SectionID}
	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentNo) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// Update godoc
// PUT /api/v1/admin/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req StudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{ID: id, StudentNo: req.StudentNo, Name: req.Name, Email: req.Email, SectionID: req.SectionID}
	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentNo) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Delete godoc
// DELETE /api/v1/admin/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
