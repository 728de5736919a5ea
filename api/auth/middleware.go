package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/api/notice"
)

// RequireAuth requires a live session binding. Without one the request is
// redirected to the entry page with a warning notice. On success the
// authenticated user is materialized into the request context so handlers
// never touch the raw session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionKeyUserID)
		if userID == nil {
			notice.Add(c, notice.LevelWarning, "Please login to access this page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		id, ok := userID.(uint)
		role := models.Role(getSessionString(session, sessionKeyRole))
		if !ok || !role.Valid() {
			// Stale or tampered binding: drop it and start over.
			log.Warn("invalid session binding, clearing session")
			session.Clear()
			if err := session.Save(); err != nil {
				log.Error("failed to clear session", "error", err)
			}
			notice.Add(c, notice.LevelWarning, "Please login to access this page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		user := &models.User{
			ID:    id,
			Email: getSessionString(session, sessionKeyEmail),
			Role:  role,
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireRole requires the session's role to equal the expected one. It must
// run after RequireAuth. A mismatch redirects to the entry page with a
// denial notice rather than a 403, since these routes target browser
// navigation.
func RequireRole(expected models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("user").(*models.User)
		if !ok || user.Role != expected {
			notice.Add(c, notice.LevelDanger, "Access denied. Insufficient permissions.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

func getSessionString(session sessions.Session, key string) string {
	if v, ok := session.Get(key).(string); ok {
		return v
	}
	return ""
}
