package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"inventory_manager/internal/middleware"
	"inventory_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	service    service.AuthService
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: s, sessionTTL: sessionTTL}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": service.ErrInvalidCredentials.Error()})
			return
		}
		log.Printf("Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to login"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTooShort), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		default:
			log.Printf("Error during registration: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user_id": user.ID, "username": user.Username})
}

// Logout destroys the session server-side and clears the cookie. Works for
// both browser navigation (redirect) and API callers (JSON).
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		h.service.DestroySession(token)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/register", h.Register)
	rg.GET("/logout", h.Logout)
	rg.POST("/logout", h.Logout)
}
