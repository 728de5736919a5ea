package models

// Role identifies which class of user a session belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// DashboardPath returns the home route for a role.
func (r Role) DashboardPath() string {
	switch r {
	case RoleStaff:
		return "/dashboard_staff"
	default:
		return "/dashboard_student"
	}
}

// User represents the authenticated identity bound to a session.
// It is built by the auth middleware from session data and handed to
// handlers through the request context.
type User struct {
	ID    uint
	Email string
	Role  Role
}

// IsStudent reports whether the session belongs to a student.
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsStaff reports whether the session belongs to a staff member.
func (u *User) IsStaff() bool { return u.Role == RoleStaff }

// CarRecord is the flat JSON shape served by the catalog API.
type CarRecord struct {
	ID          uint    `json:"id"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Payment is a single row of the static payments fixture.
type Payment struct {
	ID     int
	Car    string
	Amount float64
	Date   string
	Status string
}
