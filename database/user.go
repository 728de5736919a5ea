package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/unilease/unilease/api/models"
)

// GetUserByEmailAndRole returns the unique user with the given email and role.
// Login queries by both so a student credential can never open a staff
// session, even with a matching password.
func (c *Client) GetUserByEmailAndRole(ctx context.Context, email string, role models.Role) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("email = ? AND role = ?", email, role).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by email and role", "error", err)
		}
		return nil, err
	}
	return &user, nil
}
