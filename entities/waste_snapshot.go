package entities

import (
	"github.com/google/uuid"
	"time"
)

// WasteSnapshot is one user's waste cost for a single week, written by the
// weekly scheduler and read back for the waste charts.
type WasteSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	WeekStart    time.Time `gorm:"index" json:"week_start"`
	ExpiredWaste float64   `json:"expired_waste"`
	PortionWaste float64   `json:"portion_waste"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
