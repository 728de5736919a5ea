// Package api wires the gin engine: session middleware, guard pipeline and
// routes.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/unilease/unilease/api/auth"
	"github.com/unilease/unilease/api/handler"
	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/config"
	"github.com/unilease/unilease/database"
	"github.com/unilease/unilease/web"
)

type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	db           database.Store
	authProvider *auth.Provider
}

func New(cfg *config.Config, db database.Store, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		db:           db,
		authProvider: auth.New(db),
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("unilease_session", store))
}

func (s *Server) setupRoutes() error {
	s.setupSession()

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	s.ginEngine.SetHTMLTemplate(tmpl)

	static, err := web.Static()
	if err != nil {
		return err
	}
	s.ginEngine.StaticFS("/static", http.FS(static))

	h := handler.New(s.db)

	// Public surface: entry page, login forms, logout, JSON catalog.
	s.ginEngine.GET("/", h.Index)
	s.ginEngine.GET("/login_student", h.LoginStudentForm)
	s.ginEngine.POST("/login_student", s.authProvider.Login(models.RoleStudent, "login_student.html"))
	s.ginEngine.GET("/login_staff", h.LoginStaffForm)
	s.ginEngine.POST("/login_staff", s.authProvider.Login(models.RoleStaff, "login_staff.html"))
	s.ginEngine.GET("/logout", s.authProvider.Logout)
	s.ginEngine.GET("/api/cars", h.CarsJSON)

	// Any authenticated session.
	protected := s.ginEngine.Group("/")
	protected.Use(auth.RequireAuth())
	protected.GET("/cars", h.Cars)
	protected.GET("/car/:id", h.CarDetail)
	protected.GET("/profile", h.Profile)
	protected.GET("/payments", h.Payments)

	// Student-only operations. Guards compose: authentication always runs
	// before the role check.
	student := protected.Group("/")
	student.Use(auth.RequireRole(models.RoleStudent))
	student.GET("/dashboard_student", h.StudentDashboard)
	student.GET("/apply/:id", h.ApplyForm)
	student.POST("/apply/:id", h.Apply)

	// Staff-only operations.
	staff := protected.Group("/")
	staff.Use(auth.RequireRole(models.RoleStaff))
	staff.GET("/dashboard_staff", h.StaffDashboard)

	return nil
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
