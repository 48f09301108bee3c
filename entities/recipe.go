package entities

import (
	"github.com/google/uuid"
)

// Recipe is a global catalog entry, not owned by any user. Ingredients holds
// a JSON array of {ingredient_name, quantity} objects.
type Recipe struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                string    `json:"name"`
	Ingredients         string    `json:"ingredients" gorm:"type:text"`
	CookingTimeMinutes  int       `json:"cooking_time_minutes"`
	SustainabilityNotes string    `json:"sustainability_notes" gorm:"type:text"`

	Timestamp
}
