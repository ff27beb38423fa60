package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

const dateLayout = "2006-01-02"

type AttendanceHandler struct {
	BaseHandler
	attendance services.AttendanceService
	export     services.ExportService
}

func NewAttendanceHandler(attendance services.AttendanceService, export services.ExportService, logger utils.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler: NewBaseHandler(logger),
		attendance:  attendance,
		export:      export,
	}
}

// Mark records attendance for a student in a course. Only one record
// per student, course and calendar day is accepted.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req services.AttendanceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	record, err := h.attendance.Mark(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	record, err := h.attendance.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ByStudent lists a student's attendance, optionally filtered by
// course via ?course_id=.
func (h *AttendanceHandler) ByStudent(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	records, err := h.attendance.ByStudent(c.Request.Context(), studentID, courseIDQuery(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ByDate lists all attendance marked on a calendar day (YYYY-MM-DD).
func (h *AttendanceHandler) ByDate(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "invalid date, expected YYYY-MM-DD",
		})
		return
	}
	records, err := h.attendance.ByDate(c.Request.Context(), day, courseIDQuery(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Report(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := uintParam(c, "course_id")
	if !ok {
		return
	}
	report, err := h.attendance.Report(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportReport streams the pair report as an xlsx download.
func (h *AttendanceHandler) ExportReport(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := uintParam(c, "course_id")
	if !ok {
		return
	}
	data, err := h.export.AttendanceReportXLSX(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%d_%d.xlsx", studentID, courseID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req services.AttendanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	record, err := h.attendance.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.attendance.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: services.ErrAttendanceNotFound.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted successfully"})
}
