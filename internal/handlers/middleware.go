package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sumanth-0707/Student-Management-System/internal/config"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

// SetupMiddleware installs the shared middleware chain.
func SetupMiddleware(router *gin.Engine, cfg *config.Config, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg))
	router.Use(SessionMiddleware(cfg))
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	allowAll := len(cfg.AllowedOrigins) == 0
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsConfig)
}

// SessionMiddleware backs page logins with a signed cookie store.
func SessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	return sessions.Sessions(cfg.SessionName, store)
}

func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}
