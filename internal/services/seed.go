package services

import (
	"fmt"
	"log"

	"github.com/fitstack/fittrack/internal/models"
	"github.com/fitstack/fittrack/internal/types"
	"gorm.io/datatypes"
)

// SeedProfileID is the fixed account id of the synthetic seed user.
// The verification checks treat its presence in stage or prod as a
// leak.
const SeedProfileID = "00000000-0000-4000-8000-000000000001"

// SeedPlanName is the plan the seed routine creates exactly once per tier.
const SeedPlanName = "Upper Body Starter"

var seedExercises = []models.Exercise{
	{
		Name:         "Barbell Bench Press",
		Description:  "Flat barbell press for chest, shoulders and triceps.",
		MuscleGroups: datatypes.NewJSONSlice([]string{"chest", "shoulders", "triceps"}),
		Equipment:    "barbell",
		Difficulty:   "intermediate",
	},
	{
		Name:         "Seated Cable Row",
		Description:  "Horizontal cable pull for the upper back.",
		MuscleGroups: datatypes.NewJSONSlice([]string{"back", "biceps"}),
		Equipment:    "cable machine",
		Difficulty:   "beginner",
	},
}

// Seed populates the store's tier with a small working fixture: one
// profile, two exercises, one plan containing both, plus a fresh
// completed session with matching logs. Profile, exercises, and plan
// are matched by id/name so re-running adds no duplicates; a new
// session and its logs are inserted on every run.
func (s *Store) Seed() error {
	displayName := "Seed User"
	email := "seed@fittrack.dev"
	level := "beginner"
	if _, err := s.UpsertProfile(SeedProfileID, ProfileInput{
		Email:        &email,
		DisplayName:  &displayName,
		FitnessLevel: &level,
		Goals:        []string{"strength", "consistency"},
	}); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	exerciseIDs := make([]string, 0, len(seedExercises))
	for _, tmpl := range seedExercises {
		var existing models.Exercise
		err := s.scoped().First(&existing, "name = ?", tmpl.Name).Error
		switch {
		case err == nil:
			exerciseIDs = append(exerciseIDs, existing.ID)
			continue
		case notFound(err) != ErrNotFound:
			return fmt.Errorf("seed exercise %q: %w", tmpl.Name, err)
		}

		name := tmpl.Name
		description := tmpl.Description
		equipment := tmpl.Equipment
		difficulty := tmpl.Difficulty
		created, err := s.CreateExercise(ExerciseInput{
			Name:         &name,
			Description:  &description,
			MuscleGroups: tmpl.MuscleGroups,
			Equipment:    &equipment,
			Difficulty:   &difficulty,
		})
		if err != nil {
			return fmt.Errorf("seed exercise %q: %w", tmpl.Name, err)
		}
		exerciseIDs = append(exerciseIDs, created.ID)
	}

	var plan models.WorkoutPlan
	err := s.scoped().First(&plan, "name = ? AND profile_id = ?", SeedPlanName, SeedProfileID).Error
	switch {
	case err == nil:
		log.Printf("Seed plan %q already present, keeping it", SeedPlanName)
	case notFound(err) == ErrNotFound:
		name := SeedPlanName
		description := "Two-lift introduction to upper body training."
		frequency := 2
		duration := 6
		active := true
		created, createErr := s.CreatePlan(SeedProfileID, PlanInput{
			Name:             &name,
			Description:      &description,
			FrequencyPerWeek: &frequency,
			DurationWeeks:    &duration,
			Active:           &active,
		})
		if createErr != nil {
			return fmt.Errorf("seed plan: %w", createErr)
		}
		plan = *created

		slots := make([]PlanExerciseInput, 0, len(exerciseIDs))
		for i, id := range exerciseIDs {
			slots = append(slots, PlanExerciseInput{
				ExerciseID:  id,
				DayOfWeek:   1 + i*2,
				Sets:        3,
				Reps:        10,
				RestSeconds: 90,
			})
		}
		if _, err := s.ReplacePlanExercises(SeedProfileID, plan.ID, slots); err != nil {
			return fmt.Errorf("seed plan exercises: %w", err)
		}
	default:
		return fmt.Errorf("seed plan: %w", err)
	}

	session, err := s.StartSession(SeedProfileID, SessionStartInput{
		PlanID: &plan.ID,
		Notes:  "seed session",
	})
	if err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	for _, exerciseID := range exerciseIDs {
		if _, err := s.CreateLog(SeedProfileID, session.ID, LogInput{
			ExerciseID:     exerciseID,
			SetsCompleted:  3,
			RepsCompleted:  types.FlexList[int]{10, 8, 6},
			WeightsUsed:    types.FlexList[float64]{40, 45, 50},
			SorenessRating: 2,
		}); err != nil {
			return fmt.Errorf("seed log: %w", err)
		}
	}

	feeling := "good"
	if _, err := s.EndSession(SeedProfileID, session.ID, SessionUpdateInput{Feeling: &feeling}); err != nil {
		return fmt.Errorf("seed session end: %w", err)
	}

	if _, err := s.CreateMetric(SeedProfileID, MetricInput{
		MetricType: "weight",
		Value:      82.5,
		Notes:      "seed metric",
	}); err != nil {
		return fmt.Errorf("seed metric: %w", err)
	}

	log.Printf("Seeded tier %s: session %s for %s", s.tier, session.ID, SeedProfileID)
	return nil
}
