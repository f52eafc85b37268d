package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exercise represents a single exercise definition in the library.
type Exercise struct {
	ID           string                      `gorm:"type:char(36);primaryKey" json:"id"`
	Environment  string                      `gorm:"size:8;not null;index:idx_exercises_environment" json:"environment"`
	Name         string                      `gorm:"size:255;not null" json:"name"`
	Description  string                      `gorm:"type:text" json:"description,omitempty"`
	MuscleGroups datatypes.JSONSlice[string] `json:"muscleGroups"`
	Equipment    string                      `gorm:"size:255" json:"equipment,omitempty"`
	Difficulty   string                      `gorm:"size:32" json:"difficulty,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}
