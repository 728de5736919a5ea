// Package auth verifies credentials against the users table and manages the
// session binding that the route guards check.
package auth

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/api/notice"
	"github.com/unilease/unilease/database"
)

// Session keys for the authenticated identity.
const (
	sessionKeyUserID = "user_id"
	sessionKeyEmail  = "user_email"
	sessionKeyRole   = "user_role"
)

// Provider authenticates users with local credentials.
type Provider struct {
	db database.Store
}

func New(db database.Store) *Provider {
	return &Provider{db: db}
}

// Login returns the POST handler for the login form of the given role. The
// form template is re-rendered with a notice on any failure; the failure
// message never distinguishes an unknown email from a wrong password.
func (p *Provider) Login(role models.Role, tmpl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		if email == "" || password == "" {
			renderLoginError(c, tmpl, "Please provide both email and password.")
			return
		}

		user, err := p.db.GetUserByEmailAndRole(c.Request.Context(), email, role)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error("login lookup failed", "error", err)
			}
			renderLoginError(c, tmpl, "Invalid email or password.")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			renderLoginError(c, tmpl, "Invalid email or password.")
			return
		}

		session := sessions.Default(c)
		session.Set(sessionKeyUserID, user.ID)
		session.Set(sessionKeyEmail, user.Email)
		session.Set(sessionKeyRole, string(user.Role))
		session.AddFlash(notice.Notice{Level: notice.LevelSuccess, Message: "Login successful!"})
		if err := session.Save(); err != nil {
			log.Error("failed to save session", "error", err)
			renderLoginError(c, tmpl, "Something went wrong, please try again.")
			return
		}

		c.Redirect(http.StatusFound, role.DashboardPath())
	}
}

// Logout tears down the session binding.
func (p *Provider) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	notice.Add(c, notice.LevelInfo, "You have been logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}

func renderLoginError(c *gin.Context, tmpl, message string) {
	c.HTML(http.StatusOK, tmpl, gin.H{
		"Notices": []notice.Notice{{Level: notice.LevelDanger, Message: message}},
	})
}
