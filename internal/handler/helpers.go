package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/sis-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// failDBError maps common data-layer failures onto the response envelope:
// missing rows become 404, unique violations 409, and foreign key violations
// a 409 explaining the dependency. Everything else is a 500.
func failDBError(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		case "23503":
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
	}

	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// idParam parses the :id path segment. Responds with 400 and returns false
// when the segment is not an integer.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// pageParams reads ?page= and ?per_page= with the list defaults.
func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}
	return page, perPage
}

// departmentFilter reads the optional ?department_id= query filter.
func departmentFilter(c *gin.Context) (*int, bool) {
	raw := c.Query("department_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return nil, false
	}
	return &id, true
}

// buildPagination assembles the envelope's pagination block.
func buildPagination(page, perPage, totalItems int) *response.Pagination {
	totalPages := totalItems / perPage
	if totalItems%perPage != 0 {
		totalPages++
	}
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
