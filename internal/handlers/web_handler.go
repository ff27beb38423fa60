package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

// WebHandler serves the server-rendered admin pages. Page auth rides on
// the cookie session only; API clients use bearer tokens instead.
type WebHandler struct {
	BaseHandler
	resolver   *auth.Resolver
	admins     services.AdminService
	students   services.StudentService
	courses    services.CourseService
	attendance services.AttendanceService
}

func NewWebHandler(
	resolver *auth.Resolver,
	admins services.AdminService,
	students services.StudentService,
	courses services.CourseService,
	attendance services.AttendanceService,
	logger utils.Logger,
) *WebHandler {
	return &WebHandler{
		BaseHandler: NewBaseHandler(logger),
		resolver:    resolver,
		admins:      admins,
		students:    students,
		courses:     courses,
		attendance:  attendance,
	}
}

// sessionAdmin resolves the session cookie into an admin. A broken or
// stale session yields nil rather than an error.
func (h *WebHandler) sessionAdmin(c *gin.Context) *models.Admin {
	return h.resolver.ResolveSession(c.Request.Context(), sessionAdminID(c))
}

// RequirePageAuth redirects anonymous visitors to the login page.
func (h *WebHandler) RequirePageAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := h.sessionAdmin(c)
		if admin == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("admin", admin)
		c.Next()
	}
}

// Home is reachable with or without a session; the template adapts.
func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"admin": h.sessionAdmin(c),
	})
}

func (h *WebHandler) LoginPage(c *gin.Context) {
	if h.sessionAdmin(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *WebHandler) LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := h.admins.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		h.LogError(c, err, "Login form authentication failed")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"error": "Something went wrong, please try again",
		})
		return
	}
	if admin == nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, strconv.FormatUint(uint64(admin.ID), 10))
	if err := session.Save(); err != nil {
		h.LogError(c, err, "Failed to save session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"error": "Something went wrong, please try again",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *WebHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.LogError(c, err, "Failed to clear session")
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *WebHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *WebHandler) RegisterSubmit(c *gin.Context) {
	req := services.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if _, err := h.admins.Register(c.Request.Context(), req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"error":    err.Error(),
			"username": req.Username,
			"email":    req.Email,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *WebHandler) Dashboard(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), 0, 1, "")
	if err != nil {
		h.LogError(c, err, "Failed to count students")
	}
	courses, err := h.courses.List(c.Request.Context(), 0, 1)
	if err != nil {
		h.LogError(c, err, "Failed to count courses")
	}

	data := gin.H{"admin": currentAdmin(c)}
	if students != nil {
		data["student_count"] = students.Total
	}
	if courses != nil {
		data["course_count"] = courses.Total
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *WebHandler) StudentsPage(c *gin.Context) {
	skip, limit := pageQuery(c)
	resp, err := h.students.List(c.Request.Context(), skip, limit, c.Query("search"))
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "students.html", gin.H{
		"admin":    currentAdmin(c),
		"students": resp.Students,
		"total":    resp.Total,
		"skip":     resp.Skip,
		"limit":    resp.Limit,
		"search":   c.Query("search"),
	})
}

func (h *WebHandler) AddStudentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_student.html", gin.H{
		"admin": currentAdmin(c),
	})
}

func (h *WebHandler) AddStudentSubmit(c *gin.Context) {
	req := services.StudentCreateRequest{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
		Phone:     optionalForm(c, "phone"),
		Address:   optionalForm(c, "address"),
	}

	if _, err := h.students.Create(c.Request.Context(), req); err != nil {
		c.HTML(http.StatusBadRequest, "add_student.html", gin.H{
			"admin": currentAdmin(c),
			"error": err.Error(),
			"form":  req,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/students-page")
}

func (h *WebHandler) EditStudentPage(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_student.html", gin.H{
		"admin":   currentAdmin(c),
		"student": student,
	})
}

func (h *WebHandler) EditStudentSubmit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	req := services.StudentUpdateRequest{
		FirstName: optionalForm(c, "first_name"),
		LastName:  optionalForm(c, "last_name"),
		Email:     optionalForm(c, "email"),
		Phone:     optionalForm(c, "phone"),
		Address:   optionalForm(c, "address"),
	}

	if _, err := h.students.Update(c.Request.Context(), id, req); err != nil {
		student, getErr := h.students.Get(c.Request.Context(), id)
		if getErr != nil {
			h.handlePageError(c, getErr)
			return
		}
		c.HTML(http.StatusBadRequest, "edit_student.html", gin.H{
			"admin":   currentAdmin(c),
			"error":   err.Error(),
			"student": student,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/students-page")
}

func (h *WebHandler) CoursesPage(c *gin.Context) {
	skip, limit := pageQuery(c)
	resp, err := h.courses.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "courses.html", gin.H{
		"admin":   currentAdmin(c),
		"courses": resp.Courses,
		"total":   resp.Total,
		"skip":    resp.Skip,
		"limit":   resp.Limit,
	})
}

// AttendancePage renders the marking form with current students and
// courses preloaded; the form itself posts to the JSON API.
func (h *WebHandler) AttendancePage(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), 0, services.MaxPageLimit, "")
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	courses, err := h.courses.List(c.Request.Context(), 0, services.MaxPageLimit)
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "attendance.html", gin.H{
		"admin":    currentAdmin(c),
		"students": students.Students,
		"courses":  courses.Courses,
	})
}

func (h *WebHandler) handlePageError(c *gin.Context, err error) {
	h.LogError(c, err, "Page rendering failed")
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"error": err.Error(),
	})
}

// optionalForm returns nil when the form field was left blank.
func optionalForm(c *gin.Context, name string) *string {
	value := c.PostForm(name)
	if value == "" {
		return nil
	}
	return &value
}
