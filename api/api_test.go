package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/config"
	"github.com/unilease/unilease/database"
)

type ServerTestSuite struct {
	suite.Suite
	server *Server
	db     *database.Client
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := database.New(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.Require().NoError(db.Seed(s.T().Context()))
	s.db = db

	cfg := &config.Config{
		Listen:        "127.0.0.1:0",
		Database:      &config.DatabaseConfig{Path: "unused"},
		SessionKey:    "test-secret",
		SessionMaxAge: 3600,
	}

	server, err := New(cfg, db, true)
	s.Require().NoError(err)
	s.server = server
}

func (s *ServerTestSuite) request(method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(w, req)
	return w
}

// login runs the full login flow and returns the session cookies.
func (s *ServerTestSuite) login(path, email, password string) []*http.Cookie {
	form := url.Values{"email": {email}, "password": {password}}
	w := s.request(http.MethodPost, path, form, nil)
	s.Require().Equal(http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)
	return cookies
}

func (s *ServerTestSuite) loginStudent() []*http.Cookie {
	return s.login("/login_student", "student@example.com", "student123")
}

func (s *ServerTestSuite) loginStaff() []*http.Cookie {
	return s.login("/login_staff", "staff@example.com", "staff123")
}

func (s *ServerTestSuite) TestUnauthenticatedAccessRedirectsToEntryPage() {
	for _, path := range []string{"/cars", "/car/1", "/profile", "/payments", "/dashboard_student", "/dashboard_staff", "/apply/1"} {
		w := s.request(http.MethodGet, path, nil, nil)
		s.Equal(http.StatusFound, w.Code, path)
		s.Equal("/", w.Header().Get("Location"), path)
	}
}

func (s *ServerTestSuite) TestStudentDashboard() {
	cookies := s.loginStudent()

	w := s.request(http.MethodGet, "/dashboard_student", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Student Dashboard")
	// Login success notice surfaces on the first page after the redirect.
	s.Contains(w.Body.String(), "Login successful!")
}

func (s *ServerTestSuite) TestCrossRoleAccessDenied() {
	student := s.loginStudent()
	staff := s.loginStaff()

	for path, cookies := range map[string][]*http.Cookie{
		"/dashboard_staff":   student,
		"/dashboard_student": staff,
		"/apply/1":           staff,
	} {
		w := s.request(http.MethodGet, path, nil, cookies)
		s.Equal(http.StatusFound, w.Code, path)
		s.Equal("/", w.Header().Get("Location"), path)
	}
}

func (s *ServerTestSuite) TestCarCatalogAndDetail() {
	cookies := s.loginStudent()

	w := s.request(http.MethodGet, "/cars", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Toyota Camry 2024")
	s.Contains(w.Body.String(), "Nissan Altima 2024")

	w = s.request(http.MethodGet, "/car/3", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Ford Mustang 2024")
}

func (s *ServerTestSuite) TestCarDetailNotFoundRedirects() {
	cookies := s.loginStudent()

	w := s.request(http.MethodGet, "/car/999", nil, cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/cars", w.Header().Get("Location"))
}

func (s *ServerTestSuite) TestApplyCreatesExactlyOneApplication() {
	cookies := s.loginStudent()

	w := s.request(http.MethodPost, "/apply/1", nil, cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/dashboard_student", w.Header().Get("Location"))

	apps, err := s.db.AllApplications(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(apps, 1)
	s.Equal(uint(1), apps[0].UserID)
	s.Equal(uint(1), apps[0].CarID)

	// The success notice travels in the cookie set on the apply response.
	dash := s.request(http.MethodGet, "/dashboard_student", nil, w.Result().Cookies())
	s.Equal(http.StatusOK, dash.Code)
	s.Contains(dash.Body.String(), "Application submitted successfully for Toyota Camry 2024!")
	s.Contains(dash.Body.String(), "Toyota Camry 2024")
}

func (s *ServerTestSuite) TestApplyMissingCarCreatesNothing() {
	cookies := s.loginStudent()

	w := s.request(http.MethodPost, "/apply/999", nil, cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/cars", w.Header().Get("Location"))

	apps, err := s.db.AllApplications(s.T().Context())
	s.Require().NoError(err)
	s.Empty(apps)
}

func (s *ServerTestSuite) TestApplyTwiceCreatesTwoRows() {
	// Duplicate applications are permitted; the gap is deliberate and this
	// pins the permissive behavior.
	cookies := s.loginStudent()

	s.request(http.MethodPost, "/apply/2", nil, cookies)
	s.request(http.MethodPost, "/apply/2", nil, cookies)

	apps, err := s.db.AllApplications(s.T().Context())
	s.Require().NoError(err)
	s.Len(apps, 2)
}

func (s *ServerTestSuite) TestStaffDashboardSeesAllApplications() {
	ctx := s.T().Context()
	_, err := s.db.CreateApplication(ctx, 1, 1, "2024-05-01 09:00:00")
	s.Require().NoError(err)
	_, err = s.db.CreateApplication(ctx, 1, 4, "2024-05-02 09:00:00")
	s.Require().NoError(err)

	cookies := s.loginStaff()
	w := s.request(http.MethodGet, "/dashboard_staff", nil, cookies)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "student@example.com")
	s.Contains(w.Body.String(), "Tesla Model 3")
	s.Contains(w.Body.String(), "Toyota Camry 2024")
}

func (s *ServerTestSuite) TestProfileShowsSessionIdentity() {
	cookies := s.loginStaff()

	w := s.request(http.MethodGet, "/profile", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "staff@example.com")
	s.Contains(w.Body.String(), "staff")
}

func (s *ServerTestSuite) TestPaymentsShowsFixture() {
	cookies := s.loginStudent()

	w := s.request(http.MethodGet, "/payments", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Ford Mustang 2024")
	s.Contains(w.Body.String(), "Pending")
}

func (s *ServerTestSuite) TestCarsJSONIsPublicAndComplete() {
	w := s.request(http.MethodGet, "/api/cars", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var records []models.CarRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &records))
	s.Require().Len(records, 6)
	for _, r := range records {
		s.NotZero(r.ID)
		s.NotEmpty(r.Model)
		s.NotZero(r.Price)
		s.NotEmpty(r.Description)
		s.NotEmpty(r.Image)
	}
	s.Equal("Toyota Camry 2024", records[0].Model)
}

func (s *ServerTestSuite) TestLogoutInvalidatesSession() {
	cookies := s.loginStudent()

	w := s.request(http.MethodGet, "/logout", nil, cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/", w.Header().Get("Location"))

	after := s.request(http.MethodGet, "/cars", nil, w.Result().Cookies())
	s.Equal(http.StatusFound, after.Code)
	s.Equal("/", after.Header().Get("Location"))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
