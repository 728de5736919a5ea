package database

import (
	"context"

	"github.com/unilease/unilease/api/models"
)

// Store is the persistence interface the HTTP layer depends on.
type Store interface {
	// GetUserByEmailAndRole returns the unique user with the given email and role.
	GetUserByEmailAndRole(ctx context.Context, email string, role models.Role) (*User, error)

	// ListCars returns the full catalog, ordered by identifier ascending.
	ListCars(ctx context.Context) ([]Car, error)
	// GetCar returns a single car by identifier.
	GetCar(ctx context.Context, id uint) (*Car, error)

	// CreateApplication appends one lease application.
	CreateApplication(ctx context.Context, userID, carID uint, date string) (*Application, error)
	// ApplicationsForUser returns one user's applications joined with car
	// details, most recent first.
	ApplicationsForUser(ctx context.Context, userID uint) ([]ApplicationDetail, error)
	// AllApplications returns every application joined with car details and
	// the applicant's email, most recent first.
	AllApplications(ctx context.Context) ([]ApplicationDetail, error)

	// Seed destructively reloads the sample users and cars.
	Seed(ctx context.Context) error
}
