package services

import (
	"fmt"
	"time"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/google/uuid"
	"gorm.io/hints"
)

// SessionStartInput carries the fields of a session start request.
type SessionStartInput struct {
	PlanID *string `json:"planId,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// SessionUpdateInput carries the mutable fields of an open or
// completed session.
type SessionUpdateInput struct {
	Notes   *string `json:"notes,omitempty"`
	Feeling *string `json:"feeling,omitempty"`
}

// StartSession opens a new session for the owner. A referenced plan
// must exist in the store's tier and belong to the owner.
func (s *Store) StartSession(ownerID string, input SessionStartInput) (*models.WorkoutSession, error) {
	if input.PlanID != nil && *input.PlanID != "" {
		if _, err := s.GetPlan(ownerID, *input.PlanID); err != nil {
			if err == ErrNotFound {
				return nil, fmt.Errorf("%w: plan", ErrTierMismatch)
			}
			return nil, err
		}
	} else {
		input.PlanID = nil
	}

	session := models.WorkoutSession{
		ID:          uuid.NewString(),
		Environment: s.tier.String(),
		ProfileID:   ownerID,
		PlanID:      input.PlanID,
		StartedAt:   time.Now().UTC(),
		Notes:       input.Notes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindSessions, events.ActionInsert, ownerID, session.ID)
	return &session, nil
}

// GetSession fetches one of the owner's sessions.
func (s *Store) GetSession(ownerID, id string) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	if err := s.scoped().First(&session, "id = ? AND profile_id = ?", id, ownerID).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

// ListSessions returns the owner's sessions, most recently started
// first. limit <= 0 returns everything.
func (s *Store) ListSessions(ownerID string, limit int) ([]models.WorkoutSession, error) {
	query := s.scoped().
		Clauses(hints.CommentBefore("select", "session_history")).
		Where("profile_id = ?", ownerID).
		Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []models.WorkoutSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateSession applies a partial update to notes and feeling.
func (s *Store) UpdateSession(ownerID, id string, input SessionUpdateInput) (*models.WorkoutSession, error) {
	updates := map[string]interface{}{}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Feeling != nil {
		updates["feeling"] = *input.Feeling
	}

	if len(updates) > 0 {
		result := s.scoped().Model(&models.WorkoutSession{}).
			Where("id = ? AND profile_id = ?", id, ownerID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
		s.publish(events.KindSessions, events.ActionUpdate, ownerID, id)
	}

	return s.GetSession(ownerID, id)
}

// EndSession completes an active session. The end time is written with
// a conditional update on ended_at so a session ends at most once;
// ending an already-completed session returns ErrSessionEnded.
func (s *Store) EndSession(ownerID, id string, input SessionUpdateInput) (*models.WorkoutSession, error) {
	updates := map[string]interface{}{
		"ended_at": time.Now().UTC(),
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Feeling != nil {
		updates["feeling"] = *input.Feeling
	}

	result := s.scoped().Model(&models.WorkoutSession{}).
		Where("id = ? AND profile_id = ?", id, ownerID).
		Where("ended_at IS NULL").
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing session from a double completion.
		session, err := s.GetSession(ownerID, id)
		if err != nil {
			return nil, err
		}
		if session.EndedAt != nil {
			return nil, ErrSessionEnded
		}
		return nil, ErrNotFound
	}

	s.publish(events.KindSessions, events.ActionUpdate, ownerID, id)
	return s.GetSession(ownerID, id)
}
