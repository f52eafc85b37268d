package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile represents a user profile. The primary key is the account id
// issued by the Authorizer instance, so one account owns at most one
// profile per tier.
type Profile struct {
	ID           string                      `gorm:"type:char(36);primaryKey" json:"id"`
	Environment  string                      `gorm:"size:8;not null;index:idx_profiles_environment" json:"environment"`
	Email        string                      `gorm:"size:255;not null" json:"email"`
	DisplayName  string                      `gorm:"size:255;not null" json:"displayName"`
	Birthdate    *time.Time                  `json:"birthdate,omitempty"`
	HeightCm     float64                     `json:"heightCm"`
	WeightKg     float64                     `json:"weightKg"`
	FitnessLevel string                      `gorm:"size:32" json:"fitnessLevel"`
	Goals        datatypes.JSONSlice[string] `json:"goals"`
	// Free-form physical attributes (body measurements etc.) the UI
	// collects but the service does not interpret.
	Attributes JSON      `json:"attributes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
