package middleware

import (
	"net/http"
	"strings"

	"inventory_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey       = "authUser"
	SessionCookieName = "inventory_session"
)

// SessionAuthMiddleware rejects requests without a valid session before any
// handler runs. API callers get a 401 JSON body; browser navigation gets a
// redirect to the login page.
func SessionAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		userID, err := auth.ValidateSession(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(AuthUserKey, userID)
		c.Next()
	}
}

// ExtractToken prefers an Authorization bearer header (script-driven
// clients) and falls back to the session cookie (browsers). Logout uses the
// same lookup so every way of presenting a session can also revoke it.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthenticated(c *gin.Context) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// WantsJSON reports whether the caller is an API/XHR client rather than a
// full-page browser navigation.
func WantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
