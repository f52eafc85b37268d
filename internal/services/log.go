package services

import (
	"fmt"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/fitstack/fittrack/internal/types"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogInput carries the fields of an exercise log. Reps and weights
// accept both native arrays and the string encodings older clients
// produced; they are normalized here and stored as JSON arrays.
type LogInput struct {
	ExerciseID     string                  `json:"exerciseId"`
	SetsCompleted  types.FlexUint64        `json:"setsCompleted"`
	RepsCompleted  types.FlexList[int]     `json:"repsCompleted"`
	WeightsUsed    types.FlexList[float64] `json:"weightsUsed"`
	VideoURL       string                  `json:"videoUrl,omitempty"`
	FormFeedback   string                  `json:"formFeedback,omitempty"`
	SorenessRating types.FlexUint64        `json:"sorenessRating,omitempty"`
}

// CreateLog records the completed sets of one exercise against a
// session. The session and the exercise must both exist in the
// store's tier; reps and weights must describe the same set count.
func (s *Store) CreateLog(ownerID, sessionID string, input LogInput) (*models.ExerciseLog, error) {
	session, err := s.GetSession(ownerID, sessionID)
	if err != nil {
		if err == ErrNotFound {
			return nil, fmt.Errorf("%w: session", ErrTierMismatch)
		}
		return nil, err
	}

	if _, err := s.GetExercise(input.ExerciseID); err != nil {
		if err == ErrNotFound {
			return nil, fmt.Errorf("%w: exercise", ErrTierMismatch)
		}
		return nil, err
	}

	reps := input.RepsCompleted.Slice()
	weights := input.WeightsUsed.Slice()
	sets := int(input.SetsCompleted.Uint64())
	if sets == 0 {
		sets = len(reps)
	}
	if len(reps) != len(weights) || len(reps) != sets {
		return nil, ErrSetMismatch
	}

	logRow := models.ExerciseLog{
		ID:             uuid.NewString(),
		Environment:    s.tier.String(),
		SessionID:      session.ID,
		ExerciseID:     input.ExerciseID,
		SetsCompleted:  sets,
		RepsCompleted:  datatypes.NewJSONSlice(reps),
		WeightsUsed:    datatypes.NewJSONSlice(weights),
		VideoURL:       input.VideoURL,
		FormFeedback:   input.FormFeedback,
		SorenessRating: int(input.SorenessRating.Uint64()),
	}
	if err := s.db.Create(&logRow).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindLogs, events.ActionInsert, ownerID, logRow.ID)
	return &logRow, nil
}

// ListLogs returns a session's logs in insertion order.
func (s *Store) ListLogs(ownerID, sessionID string) ([]models.ExerciseLog, error) {
	if _, err := s.GetSession(ownerID, sessionID); err != nil {
		return nil, err
	}

	var logs []models.ExerciseLog
	err := s.scoped().
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
