package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "user" or "admin"

	GroceryItems []*GroceryItem `gorm:"foreignKey:UserID"`
	Timestamp
}
