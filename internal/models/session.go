package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkoutSession is one sitting of a workout. A session with a nil
// EndedAt is active; setting EndedAt completes it. That transition
// happens at most once (see Store.EndSession).
type WorkoutSession struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	Environment string     `gorm:"size:8;not null;index:idx_workout_sessions_environment" json:"environment"`
	ProfileID   string     `gorm:"type:char(36);not null;index" json:"profileId"`
	PlanID      *string    `gorm:"type:char(36);index" json:"planId,omitempty"`
	StartedAt   time.Time  `gorm:"not null" json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	Feeling     string     `gorm:"size:32" json:"feeling,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ExerciseLog records the completed sets of one exercise within a
// session. RepsCompleted and WeightsUsed are parallel arrays: index i
// describes set i. They are stored canonically as JSON arrays; the
// string-or-array tolerance lives at the API boundary only.
type ExerciseLog struct {
	ID             string                       `gorm:"type:char(36);primaryKey" json:"id"`
	Environment    string                       `gorm:"size:8;not null;index:idx_exercise_logs_environment" json:"environment"`
	SessionID      string                       `gorm:"type:char(36);not null;index" json:"sessionId"`
	ExerciseID     string                       `gorm:"type:char(36);not null;index" json:"exerciseId"`
	SetsCompleted  int                          `json:"setsCompleted"`
	RepsCompleted  datatypes.JSONSlice[int]     `json:"repsCompleted"`
	WeightsUsed    datatypes.JSONSlice[float64] `json:"weightsUsed"`
	VideoURL       string                       `gorm:"size:512" json:"videoUrl,omitempty"`
	FormFeedback   string                       `gorm:"type:text" json:"formFeedback,omitempty"`
	SorenessRating int                          `json:"sorenessRating"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}

// TableName overrides the table name for WorkoutSession
func (WorkoutSession) TableName() string {
	return "workout_sessions"
}

// TableName overrides the table name for ExerciseLog
func (ExerciseLog) TableName() string {
	return "exercise_logs"
}
