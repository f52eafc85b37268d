package services

import (
	"fmt"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/fitstack/fittrack/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanInput carries the writable workout plan fields.
type PlanInput struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	FrequencyPerWeek *int    `json:"frequencyPerWeek,omitempty"`
	DurationWeeks    *int    `json:"durationWeeks,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

// PlanExerciseInput is one slot of a bulk plan-exercise replace.
// Numeric fields tolerate string encoding from older clients.
type PlanExerciseInput struct {
	ExerciseID  string           `json:"exerciseId"`
	DayOfWeek   int              `json:"dayOfWeek"`
	Sets        types.FlexUint64 `json:"sets"`
	Reps        types.FlexUint64 `json:"reps"`
	RestSeconds types.FlexUint64 `json:"restSeconds"`
}

// GetPlan fetches a plan by id for an owner within the store's tier.
func (s *Store) GetPlan(ownerID, id string) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := s.scoped().First(&plan, "id = ? AND profile_id = ?", id, ownerID).Error; err != nil {
		return nil, notFound(err)
	}
	return &plan, nil
}

// ListPlans returns an owner's plans, most recent first.
func (s *Store) ListPlans(ownerID string) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := s.scoped().
		Where("profile_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan inserts a plan for the owner, stamped with the store's tier.
func (s *Store) CreatePlan(ownerID string, input PlanInput) (*models.WorkoutPlan, error) {
	plan := models.WorkoutPlan{
		ID:          uuid.NewString(),
		Environment: s.tier.String(),
		ProfileID:   ownerID,
	}
	applyPlanInput(&plan, input)

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindPlans, events.ActionInsert, ownerID, plan.ID)
	return &plan, nil
}

// UpdatePlan applies a partial update to an owner's plan.
func (s *Store) UpdatePlan(ownerID, id string, input PlanInput) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := s.scoped().First(&plan, "id = ? AND profile_id = ?", id, ownerID).Error; err != nil {
		return nil, notFound(err)
	}

	applyPlanInput(&plan, input)
	if err := s.db.Save(&plan).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindPlans, events.ActionUpdate, ownerID, plan.ID)
	return &plan, nil
}

// DeletePlan removes a plan and its exercise slots in one transaction.
func (s *Store) DeletePlan(ownerID, id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := s.scopedTx(tx).First(&plan, "id = ? AND profile_id = ?", id, ownerID).Error; err != nil {
			return notFound(err)
		}

		if err := s.scopedTx(tx).Where("plan_id = ?", id).Delete(&models.WorkoutPlanExercise{}).Error; err != nil {
			return err
		}
		return s.scopedTx(tx).Where("id = ?", id).Delete(&models.WorkoutPlan{}).Error
	})
	if err != nil {
		return err
	}

	s.publish(events.KindPlans, events.ActionDelete, ownerID, id)
	return nil
}

// ListPlanExercises returns a plan's exercise slots ordered by day and
// position within the day.
func (s *Store) ListPlanExercises(ownerID, planID string) ([]models.WorkoutPlanExercise, error) {
	if _, err := s.GetPlan(ownerID, planID); err != nil {
		return nil, err
	}

	var slots []models.WorkoutPlanExercise
	err := s.scoped().
		Where("plan_id = ?", planID).
		Order("day_of_week ASC, order_index ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ReplacePlanExercises replaces a plan's exercise slots atomically.
// Every referenced exercise must exist in the store's tier, so a plan
// can never point at another tier's library.
func (s *Store) ReplacePlanExercises(ownerID, planID string, inputs []PlanExerciseInput) ([]models.WorkoutPlanExercise, error) {
	var slots []models.WorkoutPlanExercise

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := s.scopedTx(tx).First(&plan, "id = ? AND profile_id = ?", planID, ownerID).Error; err != nil {
			return notFound(err)
		}

		exerciseIDs := make([]string, 0, len(inputs))
		for _, in := range inputs {
			exerciseIDs = append(exerciseIDs, in.ExerciseID)
		}
		if len(exerciseIDs) > 0 {
			var count int64
			if err := s.scopedTx(tx).Model(&models.Exercise{}).
				Where("id IN ?", exerciseIDs).
				Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(uniqueStrings(exerciseIDs))) {
				return fmt.Errorf("%w: exercise", ErrTierMismatch)
			}
		}

		if err := s.scopedTx(tx).Where("plan_id = ?", planID).Delete(&models.WorkoutPlanExercise{}).Error; err != nil {
			return err
		}

		slots = make([]models.WorkoutPlanExercise, 0, len(inputs))
		for i, in := range inputs {
			slots = append(slots, models.WorkoutPlanExercise{
				ID:          uuid.NewString(),
				Environment: s.tier.String(),
				PlanID:      planID,
				ExerciseID:  in.ExerciseID,
				DayOfWeek:   in.DayOfWeek,
				Sets:        int(in.Sets.Uint64()),
				Reps:        int(in.Reps.Uint64()),
				RestSeconds: int(in.RestSeconds.Uint64()),
				OrderIndex:  i,
			})
		}
		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.KindPlanExercises, events.ActionUpdate, ownerID, planID)
	return slots, nil
}

func applyPlanInput(plan *models.WorkoutPlan, input PlanInput) {
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.FrequencyPerWeek != nil {
		plan.FrequencyPerWeek = *input.FrequencyPerWeek
	}
	if input.DurationWeeks != nil {
		plan.DurationWeeks = *input.DurationWeeks
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
