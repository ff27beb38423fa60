package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/utils"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthHandler struct {
	BaseHandler
	admins services.AdminService
	tokens *auth.TokenManager
}

func NewAuthHandler(admins services.AdminService, tokens *auth.TokenManager, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		admins:      admins,
		tokens:      tokens,
	}
}

// Register creates a new admin account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	admin, err := h.admins.Register(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// Login exchanges a username and password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	admin, err := h.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if admin == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid username or password",
		})
		return
	}

	token, _, err := h.tokens.Issue(admin.ID)
	if err != nil {
		h.LogError(c, err, "Failed to issue token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.tokens.TTL().Seconds()),
	})
}

// Me returns the authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	admin := currentAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Could not validate credentials",
		})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// UpdateMe applies a partial update to the authenticated admin's own
// account. A password, when present, is re-hashed before storage.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	admin := currentAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Could not validate credentials",
		})
		return
	}

	var req services.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	updated, err := h.admins.Update(c.Request.Context(), admin.ID, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
