package services

import (
	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"gorm.io/gorm"
)

// ResetResult reports what an account reset removed.
type ResetResult struct {
	ExerciseLogs    int64 `json:"exerciseLogs"`
	PlanExercises   int64 `json:"planExercises"`
	Sessions        int64 `json:"sessions"`
	Plans           int64 `json:"plans"`
	ProgressMetrics int64 `json:"progressMetrics"`
	Profile         int64 `json:"profile"`
}

// ResetAccount deletes everything the owner has in the store's tier:
// logs, plan exercise slots, sessions, plans, metrics, and finally the
// profile row itself, in dependency order inside one transaction. A
// failure anywhere rolls the whole reset back.
func (s *Store) ResetAccount(ownerID string) (ResetResult, error) {
	var result ResetResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sessionIDs []string
		if err := s.scopedTx(tx).Model(&models.WorkoutSession{}).
			Where("profile_id = ?", ownerID).
			Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}

		var planIDs []string
		if err := s.scopedTx(tx).Model(&models.WorkoutPlan{}).
			Where("profile_id = ?", ownerID).
			Pluck("id", &planIDs).Error; err != nil {
			return err
		}

		if len(sessionIDs) > 0 {
			res := s.scopedTx(tx).Where("session_id IN ?", sessionIDs).Delete(&models.ExerciseLog{})
			if res.Error != nil {
				return res.Error
			}
			result.ExerciseLogs = res.RowsAffected
		}

		if len(planIDs) > 0 {
			res := s.scopedTx(tx).Where("plan_id IN ?", planIDs).Delete(&models.WorkoutPlanExercise{})
			if res.Error != nil {
				return res.Error
			}
			result.PlanExercises = res.RowsAffected
		}

		res := s.scopedTx(tx).Where("profile_id = ?", ownerID).Delete(&models.WorkoutSession{})
		if res.Error != nil {
			return res.Error
		}
		result.Sessions = res.RowsAffected

		res = s.scopedTx(tx).Where("profile_id = ?", ownerID).Delete(&models.WorkoutPlan{})
		if res.Error != nil {
			return res.Error
		}
		result.Plans = res.RowsAffected

		res = s.scopedTx(tx).Where("profile_id = ?", ownerID).Delete(&models.ProgressMetric{})
		if res.Error != nil {
			return res.Error
		}
		result.ProgressMetrics = res.RowsAffected

		res = s.scopedTx(tx).Where("id = ?", ownerID).Delete(&models.Profile{})
		if res.Error != nil {
			return res.Error
		}
		result.Profile = res.RowsAffected

		return nil
	})
	if err != nil {
		return ResetResult{}, err
	}

	s.publish(events.KindProfiles, events.ActionDelete, ownerID, ownerID)
	return result, nil
}
