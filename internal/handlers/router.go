package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

// HandlerManager owns every HTTP handler and knows how to mount them.
type HandlerManager struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Course     *CourseHandler
	Attendance *AttendanceHandler
	Web        *WebHandler

	resolver *auth.Resolver
	logger   utils.Logger
}

func NewHandlerManager(sm services.ServiceManager, tokens *auth.TokenManager, resolver *auth.Resolver, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		Auth:       NewAuthHandler(sm.Admin(), tokens, logger),
		Student:    NewStudentHandler(sm.Student(), logger),
		Course:     NewCourseHandler(sm.Course(), logger),
		Attendance: NewAttendanceHandler(sm.Attendance(), sm.Export(), logger),
		Web:        NewWebHandler(resolver, sm.Admin(), sm.Student(), sm.Course(), sm.Attendance(), logger),
		resolver:   resolver,
		logger:     logger,
	}
}

// SetupRoutes mounts the JSON API under /api and the HTML pages at the
// root.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static("/static", "./web/static")

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", hm.Auth.Register)
			authGroup.POST("/login", hm.Auth.Login)
			authGroup.GET("/me", RequireAuth(hm.resolver), hm.Auth.Me)
			authGroup.PUT("/me", RequireAuth(hm.resolver), hm.Auth.UpdateMe)
		}

		protected := api.Group("")
		protected.Use(RequireAuth(hm.resolver))
		{
			students := protected.Group("/students")
			{
				students.POST("", hm.Student.Create)
				students.GET("", hm.Student.List)
				students.GET("/:id", hm.Student.Get)
				students.PUT("/:id", hm.Student.Update)
				students.DELETE("/:id", hm.Student.Delete)
				students.POST("/:id/courses/:course_id", hm.Student.Enroll)
				students.DELETE("/:id/courses/:course_id", hm.Student.Unenroll)
			}

			courses := protected.Group("/courses")
			{
				courses.POST("", hm.Course.Create)
				courses.GET("", hm.Course.List)
				courses.GET("/:id", hm.Course.Get)
				courses.PUT("/:id", hm.Course.Update)
				courses.DELETE("/:id", hm.Course.Delete)
			}

			attendance := protected.Group("/attendance")
			{
				attendance.POST("", hm.Attendance.Mark)
				attendance.GET("/:id", hm.Attendance.Get)
				attendance.PUT("/:id", hm.Attendance.Update)
				attendance.DELETE("/:id", hm.Attendance.Delete)
				attendance.GET("/student/:id", hm.Attendance.ByStudent)
				attendance.GET("/date/:date", hm.Attendance.ByDate)
				attendance.GET("/report/:student_id/:course_id", hm.Attendance.Report)
				attendance.GET("/report/:student_id/:course_id/export", hm.Attendance.ExportReport)
			}
		}
	}

	// HTML pages.
	router.GET("/", hm.Web.Home)
	router.GET("/home", hm.Web.Home)
	router.GET("/login", hm.Web.LoginPage)
	router.POST("/login", hm.Web.LoginSubmit)
	router.GET("/logout", hm.Web.Logout)
	router.GET("/register", hm.Web.RegisterPage)
	router.POST("/register", hm.Web.RegisterSubmit)

	pages := router.Group("")
	pages.Use(hm.Web.RequirePageAuth())
	{
		pages.GET("/dashboard", hm.Web.Dashboard)
		pages.GET("/students-page", hm.Web.StudentsPage)
		pages.GET("/add-student", hm.Web.AddStudentPage)
		pages.POST("/add-student", hm.Web.AddStudentSubmit)
		pages.GET("/edit-student/:id", hm.Web.EditStudentPage)
		pages.POST("/edit-student/:id", hm.Web.EditStudentSubmit)
		pages.GET("/courses-page", hm.Web.CoursesPage)
		pages.GET("/attendance-page", hm.Web.AttendancePage)
	}
}
