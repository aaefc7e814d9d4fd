package handler

import (
	"net/http"
	"path/filepath"

	"inventory_manager/internal/middleware"
	"inventory_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the browser-facing pages. All data access happens
// through the JSON API; these pages are static shells.
type PageHandler struct {
	auth      service.AuthService
	staticDir string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(auth service.AuthService, staticDir string) *PageHandler {
	return &PageHandler{auth: auth, staticDir: staticDir}
}

func (h *PageHandler) loggedIn(c *gin.Context) bool {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil {
		return false
	}
	_, err = h.auth.ValidateSession(token)
	return err == nil
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	if h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File(filepath.Join(h.staticDir, "login.html"))
}

func (h *PageHandler) RegisterPage(c *gin.Context) {
	if h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File(filepath.Join(h.staticDir, "register.html"))
}

func (h *PageHandler) IndexPage(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}

// RegisterPageRoutes registers the page routes; the index sits behind the
// auth middleware so unauthenticated navigation redirects to /login.
func (h *PageHandler) RegisterPageRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.GET("/login", h.LoginPage)
	r.GET("/register", h.RegisterPage)
	r.GET("/", authMW, h.IndexPage)
	r.Static("/static", h.staticDir)
}
