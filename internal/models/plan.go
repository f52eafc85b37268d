package models

import (
	"time"
)

// WorkoutPlan represents a recurring workout program owned by a profile.
type WorkoutPlan struct {
	ID               string    `gorm:"type:char(36);primaryKey" json:"id"`
	Environment      string    `gorm:"size:8;not null;index:idx_workout_plans_environment" json:"environment"`
	ProfileID        string    `gorm:"type:char(36);not null;index" json:"profileId"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	FrequencyPerWeek int       `json:"frequencyPerWeek"`
	DurationWeeks    int       `json:"durationWeeks"`
	Active           bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// WorkoutPlanExercise is one exercise slot within a plan: which
// exercise, on which day, and the prescribed sets/reps/rest.
type WorkoutPlanExercise struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Environment string    `gorm:"size:8;not null;index:idx_workout_plan_exercises_environment" json:"environment"`
	PlanID      string    `gorm:"type:char(36);not null;index" json:"planId"`
	ExerciseID  string    `gorm:"type:char(36);not null;index" json:"exerciseId"`
	DayOfWeek   int       `json:"dayOfWeek"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	RestSeconds int       `json:"restSeconds"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for WorkoutPlan
func (WorkoutPlan) TableName() string {
	return "workout_plans"
}

// TableName overrides the table name for WorkoutPlanExercise
func (WorkoutPlanExercise) TableName() string {
	return "workout_plan_exercises"
}
