// Package handler implements the domain operations behind the HTTP routes.
// Every handler runs after the guard pipeline, performs a single read or a
// single write and hands the result to a template or the JSON encoder.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/unilease/unilease/api/auth"
	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/api/notice"
	"github.com/unilease/unilease/database"
)

type Handler struct {
	db database.Store
}

func New(db database.Store) *Handler {
	return &Handler{db: db}
}

// Index renders the entry page with links to both login forms.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Notices": notice.Take(c),
	})
}

// LoginStudentForm renders the student login form.
func (h *Handler) LoginStudentForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login_student.html", gin.H{
		"Notices": notice.Take(c),
	})
}

// LoginStaffForm renders the staff login form.
func (h *Handler) LoginStaffForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login_staff.html", gin.H{
		"Notices": notice.Take(c),
	})
}

// StudentDashboard shows the catalog plus the student's own applications,
// most recent first.
func (h *Handler) StudentDashboard(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	cars, err := h.db.ListCars(ctx)
	if err != nil {
		h.renderError(c, "failed to load cars")
		return
	}

	applications, err := h.db.ApplicationsForUser(ctx, user.ID)
	if err != nil {
		h.renderError(c, "failed to load applications")
		return
	}

	c.HTML(http.StatusOK, "dashboard_student.html", gin.H{
		"User":         user,
		"Cars":         cars,
		"Applications": applications,
		"Notices":      notice.Take(c),
	})
}

// StaffDashboard shows the catalog plus every application across all
// students, with the applicant's email, most recent first.
func (h *Handler) StaffDashboard(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	cars, err := h.db.ListCars(ctx)
	if err != nil {
		h.renderError(c, "failed to load cars")
		return
	}

	applications, err := h.db.AllApplications(ctx)
	if err != nil {
		h.renderError(c, "failed to load applications")
		return
	}

	c.HTML(http.StatusOK, "dashboard_staff.html", gin.H{
		"User":         user,
		"Cars":         cars,
		"Applications": applications,
		"Notices":      notice.Take(c),
	})
}

// Cars renders the full catalog.
func (h *Handler) Cars(c *gin.Context) {
	cars, err := h.db.ListCars(c.Request.Context())
	if err != nil {
		h.renderError(c, "failed to load cars")
		return
	}

	c.HTML(http.StatusOK, "cars.html", gin.H{
		"User":    auth.CurrentUser(c),
		"Cars":    cars,
		"Notices": notice.Take(c),
	})
}

// CarDetail renders a single car. A missing car degrades to a redirect back
// to the catalog with a notice.
func (h *Handler) CarDetail(c *gin.Context) {
	car, ok := h.lookupCar(c, "/cars")
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "car_detail.html", gin.H{
		"User":    auth.CurrentUser(c),
		"Car":     car,
		"Notices": notice.Take(c),
	})
}

// ApplyForm renders the lease application form for a car.
func (h *Handler) ApplyForm(c *gin.Context) {
	car, ok := h.lookupCar(c, "/cars")
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "apply.html", gin.H{
		"User":    auth.CurrentUser(c),
		"Car":     car,
		"Notices": notice.Take(c),
	})
}

// Apply inserts one application binding the session's user to the target
// car, stamped with the server's wall clock. No duplicate or capacity check.
func (h *Handler) Apply(c *gin.Context) {
	car, ok := h.lookupCar(c, "/cars")
	if !ok {
		return
	}

	user := auth.CurrentUser(c)
	date := time.Now().Format(database.DateLayout)

	if _, err := h.db.CreateApplication(c.Request.Context(), user.ID, car.ID, date); err != nil {
		h.renderError(c, "failed to submit application")
		return
	}

	notice.Add(c, notice.LevelSuccess, fmt.Sprintf("Application submitted successfully for %s!", car.Model))
	c.Redirect(http.StatusFound, models.RoleStudent.DashboardPath())
}

// Profile displays the session identity.
func (h *Handler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":    auth.CurrentUser(c),
		"Notices": notice.Take(c),
	})
}

// CarsJSON serves the catalog as a flat JSON array. This is the only
// machine-readable surface and requires no session.
func (h *Handler) CarsJSON(c *gin.Context) {
	cars, err := h.db.ListCars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cars"})
		return
	}

	records := lo.Map(cars, func(car database.Car, _ int) models.CarRecord {
		return models.CarRecord{
			ID:          car.ID,
			Model:       car.Model,
			Price:       car.Price,
			Description: car.Description,
			Image:       car.Image,
		}
	})
	c.JSON(http.StatusOK, records)
}

// lookupCar resolves the :id route parameter to a car. On a malformed id or
// a missing row it queues a notice, redirects to fallback and reports false.
func (h *Handler) lookupCar(c *gin.Context, fallback string) (*database.Car, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err == nil {
		car, dbErr := h.db.GetCar(c.Request.Context(), uint(id))
		if dbErr == nil {
			return car, true
		}
		if !errors.Is(dbErr, gorm.ErrRecordNotFound) {
			h.renderError(c, "failed to load car")
			return nil, false
		}
	}

	notice.Add(c, notice.LevelDanger, "Car not found.")
	c.Redirect(http.StatusFound, fallback)
	return nil, false
}

// renderError degrades an internal failure to a redirect with a notice; raw
// errors never reach the browser.
func (h *Handler) renderError(c *gin.Context, msg string) {
	log.Error(msg)
	notice.Add(c, notice.LevelDanger, "Something went wrong, please try again.")
	c.Redirect(http.StatusFound, "/")
}
