package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
	"github.com/sumanth-0707/Student-Management-System/internal/models"
)

const sessionAdminKey = "admin_id"

// bearerFromHeader extracts the token from an Authorization header.
// Returns "" when the header is missing or not a bearer scheme.
func bearerFromHeader(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func sessionAdminID(c *gin.Context) string {
	session := sessions.Default(c)
	value := session.Get(sessionAdminKey)
	if value == nil {
		return ""
	}
	id, ok := value.(string)
	if !ok {
		return ""
	}
	return id
}

// RequireAuth guards the JSON API. It accepts either a bearer token or
// an active session and responds with a uniform 401 otherwise.
func RequireAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := resolver.Resolve(c.Request.Context(), bearerFromHeader(c), sessionAdminID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "Could not validate credentials",
			})
			return
		}
		c.Set("admin", admin)
		c.Set("admin_id", admin.ID)
		c.Next()
	}
}

// currentAdmin returns the admin stored by RequireAuth, or nil.
func currentAdmin(c *gin.Context) *models.Admin {
	value, ok := c.Get("admin")
	if !ok {
		return nil
	}
	admin, ok := value.(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}
