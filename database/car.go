package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// ListCars returns the full catalog, ordered by identifier ascending.
func (c *Client) ListCars(ctx context.Context) ([]Car, error) {
	var cars []Car
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&cars).Error; err != nil {
		log.Error("failed to list cars", "error", err)
		return nil, err
	}
	return cars, nil
}

// GetCar returns a single car by identifier. Returns gorm.ErrRecordNotFound
// when no such car exists.
func (c *Client) GetCar(ctx context.Context, id uint) (*Car, error) {
	var car Car
	if err := c.db.WithContext(ctx).First(&car, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get car by ID", "error", err)
		}
		return nil, err
	}
	return &car, nil
}
