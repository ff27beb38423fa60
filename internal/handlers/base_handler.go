package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// BaseHandler carries the logging helpers shared by all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string) {
	utils.FromContext(c, h.logger).Debug(msg, "method", c.Request.Method, "path", c.Request.URL.Path)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.FromContext(c, h.logger).Error(msg, "error", err, "path", c.Request.URL.Path)
}

// handleServiceError maps domain errors onto HTTP statuses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdminNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateCourseName),
		errors.Is(err, services.ErrDuplicateCourseCode),
		errors.Is(err, services.ErrDuplicateAttendance):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "duplicate",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, auth.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Could not validate credentials",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error",
		})
	}
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(parsed), true
}

// pageQuery reads skip/limit query parameters; the service layer does
// the clamping.
func pageQuery(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultPageLimit)))
	return skip, limit
}

// courseIDQuery reads the optional course_id filter.
func courseIDQuery(c *gin.Context) *uint {
	raw := c.Query("course_id")
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}
