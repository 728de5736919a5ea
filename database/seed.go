package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/unilease/unilease/api/models"
)

type seedUser struct {
	id       uint
	email    string
	password string
	role     models.Role
}

var seedUsers = []seedUser{
	{1, "student@example.com", "student123", models.RoleStudent},
	{2, "staff@example.com", "staff123", models.RoleStaff},
}

var seedCars = []Car{
	{ID: 1, Model: "Toyota Camry 2024", Price: 299.99, Description: "Reliable sedan perfect for daily commuting. Features modern safety technology and excellent fuel economy.", Image: "static/img/camry.jpg"},
	{ID: 2, Model: "Honda Civic 2024", Price: 279.99, Description: "Compact and efficient, ideal for city driving. Great value with advanced features.", Image: "static/img/civic.jpg"},
	{ID: 3, Model: "Ford Mustang 2024", Price: 499.99, Description: "Sporty and powerful muscle car. Perfect for those who love performance and style.", Image: "static/img/mustang.jpg"},
	{ID: 4, Model: "Tesla Model 3", Price: 599.99, Description: "Electric vehicle with cutting-edge technology. Zero emissions and autopilot features.", Image: "static/img/tesla.jpg"},
	{ID: 5, Model: "BMW 3 Series", Price: 549.99, Description: "Luxury sedan with premium features. Comfortable ride with excellent handling.", Image: "static/img/bmw.jpg"},
	{ID: 6, Model: "Nissan Altima 2024", Price: 269.99, Description: "Spacious and comfortable mid-size sedan. Great for long trips and family use.", Image: "static/img/altima.jpg"},
}

// Seed destructively reloads the sample data: all three tables are wiped and
// exactly two users and six cars are inserted. Running it twice in a row
// yields the same state. Seeding is the only way users and cars come into
// existence.
func (c *Client) Seed(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Applications first, they reference the other two tables.
		for _, table := range []string{"applications", "cars", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}

		for _, su := range seedUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", su.email, err)
			}
			user := User{
				ID:       su.id,
				Email:    su.email,
				Password: string(hash),
				Role:     su.role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", su.email, err)
			}
		}

		cars := make([]Car, len(seedCars))
		copy(cars, seedCars)
		if err := tx.Create(&cars).Error; err != nil {
			return fmt.Errorf("failed to seed cars: %w", err)
		}

		log.Info("database seeded", "users", len(seedUsers), "cars", len(seedCars))
		return nil
	})
}
