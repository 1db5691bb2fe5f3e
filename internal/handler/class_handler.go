package handler

import (
	"errors"
	"net/http"

	"github.com/classpoint/sis-backend/internal/middleware"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/schedule"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classService *service.ClassService
}

func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// scheduleErrCode maps a schedule validation failure onto its API error code.
func scheduleErrCode(kind schedule.ErrorKind) response.ErrCode {
	switch kind {
	case schedule.KindIncompleteEntry:
		return response.ErrIncompleteEntry
	case schedule.KindNoCompleteSchedule:
		return response.ErrNoCompleteSchedule
	case schedule.KindInvalidDayOfWeek:
		return response.ErrInvalidDayOfWeek
	case schedule.KindInvalidTimeRange:
		return response.ErrInvalidTimeRange
	case schedule.KindDuplicateEntry:
		return response.ErrDuplicateEntry
	case schedule.KindOverlappingEntry:
		return response.ErrOverlappingEntry
	default:
		return response.ErrValidation
	}
}

// failSaveError maps the class workflow's failure modes: schedule problems
// and referential problems are 422, enrollment conflicts 409, and the rest
// fall through to the common database mapping.
func failSaveError(c *gin.Context, err error) {
	var ve *schedule.ValidationError
	if errors.As(err, &ve) {
		response.FailWithMessage(c, http.StatusUnprocessableEntity, scheduleErrCode(ve.Kind), ve.Detail)
		return
	}

	var ce *service.ConflictError
	if errors.As(err, &ce) {
		response.FailWithMessage(c, http.StatusConflict, response.ErrDuplicateSubjectEnrollment, ce.Decision.Reason)
		return
	}

	if errors.Is(err, service.ErrSelectionOutsideDepartment) {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrSelectionOutsideDepartment)
		return
	}

	failDBError(c, err)
}

// GetAll godoc
// GET /api/v1/admin/classes?search=&page=&per_page=
func (h *ClassHandler) GetAll(c *gin.Context) {
	page, perPage := pageParams(c)

	classes, total, err := h.classService.ListPaginated(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if classes == nil {
		classes = []model.ClassSummary{}
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"classes": classes}, buildPagination(page, perPage, total))
}

// GetByID godoc
// GET /api/v1/admin/classes/:id
func (h *ClassHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// ValidateSchedule godoc
// POST /api/v1/admin/classes/validate-schedule
// Runs the schedule checks without touching any class, for inline feedback
// in the editor.
func (h *ClassHandler) ValidateSchedule(c *gin.Context) {
	var req struct {
		Schedules []schedule.Candidate `json:"schedules" binding:"required"`
	}
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entries, err := h.classService.ValidateSchedule(req.Schedules)
	if err != nil {
		failSaveError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedules": entries})
}

// CheckRoster godoc
// POST /api/v1/admin/classes/:id/roster/check
// Answers whether one student can be added given the caller's pending edits.
// A negative answer is still a 200; the decision body carries the reason.
func (h *ClassHandler) CheckRoster(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req model.RosterCheckRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDBError(c, err)
		return
	}

	decision, err := h.classService.CheckEnrollment(c.Request.Context(), id, class.SubjectID, req)
	if err != nil {
		failSaveError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"decision": decision})
}

// Create godoc
// POST /api/v1/admin/classes
func (h *ClassHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	var req model.ClassDraft
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.classService.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		failSaveError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// Update godoc
// PUT /api/v1/admin/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req model.ClassUpdateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.classService.Update(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		failSaveError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// Delete godoc
// DELETE /api/v1/admin/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.classService.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		failDBError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "class deleted successfully"})
}
