package database

import "github.com/unilease/unilease/api/models"

// DateLayout is the sortable wall-clock format stored in the applications
// date column. Lexicographic order matches chronological order.
const DateLayout = "2006-01-02 15:04:05"

// User is an identity record. Users are created only by seeding; there is no
// self-registration. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       uint        `gorm:"primaryKey"`
	Email    string      `gorm:"uniqueIndex;not null"`
	Password string      `gorm:"not null"`
	Role     models.Role `gorm:"not null"`
}

// Car is a leasable vehicle listing. Read-only after seeding.
type Car struct {
	ID          uint    `gorm:"primaryKey"`
	Model       string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Description string
	Image       string
}

// Application is a lease request binding one user to one car. Append-only:
// never updated or deleted. The same user may apply for the same car more
// than once.
type Application struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null"`
	User   User   `gorm:"foreignKey:UserID"`
	CarID  uint   `gorm:"not null"`
	Car    Car    `gorm:"foreignKey:CarID"`
	Date   string `gorm:"not null"`
}

// ApplicationDetail is an application row joined with the car it targets.
// UserEmail is only populated by the staff-wide query.
type ApplicationDetail struct {
	ID        uint
	UserID    uint
	CarID     uint
	Date      string
	Model     string
	Price     float64
	Image     string
	UserEmail string
}
