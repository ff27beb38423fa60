package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

type StudentHandler struct {
	BaseHandler
	students services.StudentService
}

func NewStudentHandler(students services.StudentService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		students:    students,
	}
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req services.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// List supports skip/limit paging and a free-text search over name and
// email.
func (h *StudentHandler) List(c *gin.Context) {
	skip, limit := pageQuery(c)
	resp, err := h.students.List(c.Request.Context(), skip, limit, c.Query("search"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req services.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	student, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.students.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: services.ErrStudentNotFound.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// Enroll adds the student to a course. Re-enrolling an already enrolled
// student is reported, not treated as an error.
func (h *StudentHandler) Enroll(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	courseID, ok := uintParam(c, "course_id")
	if !ok {
		return
	}

	enrolled, err := h.students.Enroll(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !enrolled {
		c.JSON(http.StatusOK, gin.H{"message": "Student already enrolled in this course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student enrolled successfully"})
}

func (h *StudentHandler) Unenroll(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	courseID, ok := uintParam(c, "course_id")
	if !ok {
		return
	}

	removed, err := h.students.Unenroll(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"message": "Student is not enrolled in this course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student unenrolled successfully"})
}
