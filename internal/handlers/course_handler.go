package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

type CourseHandler struct {
	BaseHandler
	courses services.CourseService
}

func NewCourseHandler(courses services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: NewBaseHandler(logger),
		courses:     courses,
	}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req services.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) List(c *gin.Context) {
	skip, limit := pageQuery(c)
	resp, err := h.courses.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req services.CourseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	course, err := h.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.courses.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: services.ErrCourseNotFound.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
