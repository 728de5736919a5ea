package database

import (
	"context"

	"github.com/charmbracelet/log"
)

// CreateApplication appends one lease application. There is deliberately no
// duplicate check: the same user may apply for the same car multiple times.
func (c *Client) CreateApplication(ctx context.Context, userID, carID uint, date string) (*Application, error) {
	app := Application{
		UserID: userID,
		CarID:  carID,
		Date:   date,
	}
	if err := c.db.WithContext(ctx).Create(&app).Error; err != nil {
		log.Error("failed to create application", "error", err)
		return nil, err
	}
	return &app, nil
}

// ApplicationsForUser returns one user's applications joined with car
// details, most recent first.
func (c *Client) ApplicationsForUser(ctx context.Context, userID uint) ([]ApplicationDetail, error) {
	var details []ApplicationDetail
	err := c.db.WithContext(ctx).
		Table("applications").
		Select("applications.id, applications.user_id, applications.car_id, applications.date, cars.model, cars.price, cars.image").
		Joins("JOIN cars ON cars.id = applications.car_id").
		Where("applications.user_id = ?", userID).
		Order("applications.date DESC").
		Scan(&details).Error
	if err != nil {
		log.Error("failed to get applications for user", "error", err, "user_id", userID)
		return nil, err
	}
	return details, nil
}

// AllApplications returns every application joined with car details and the
// applicant's email, most recent first. No ownership filter: staff has
// global visibility.
func (c *Client) AllApplications(ctx context.Context) ([]ApplicationDetail, error) {
	var details []ApplicationDetail
	err := c.db.WithContext(ctx).
		Table("applications").
		Select("applications.id, applications.user_id, applications.car_id, applications.date, cars.model, cars.price, cars.image, users.email AS user_email").
		Joins("JOIN cars ON cars.id = applications.car_id").
		Joins("JOIN users ON users.id = applications.user_id").
		Order("applications.date DESC").
		Scan(&details).Error
	if err != nil {
		log.Error("failed to get all applications", "error", err)
		return nil, err
	}
	return details, nil
}
