package services

import (
	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/hints"
)

// ExerciseInput carries the writable exercise fields.
type ExerciseInput struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	Equipment    *string  `json:"equipment,omitempty"`
	Difficulty   *string  `json:"difficulty,omitempty"`
}

// ExerciseFilter narrows ListExercises.
type ExerciseFilter struct {
	NameLike     string
	Difficulty   string
	MuscleGroups []string
	Limit        int
}

// GetExercise fetches one exercise by id within the store's tier.
func (s *Store) GetExercise(id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.scoped().First(&exercise, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &exercise, nil
}

// ListExercises returns the tier's exercise library, most recent
// first, optionally filtered by name substring and difficulty.
func (s *Store) ListExercises(filter ExerciseFilter) ([]models.Exercise, error) {
	query := s.scoped().
		Clauses(hints.CommentBefore("select", "exercise_library")).
		Order("created_at DESC")

	if filter.NameLike != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameLike+"%")
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	for _, group := range filter.MuscleGroups {
		query = query.Where(datatypes.JSONArrayQuery("muscle_groups").Contains(group))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var exercises []models.Exercise
	if err := query.Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// CreateExercise inserts a library exercise stamped with the store's tier.
func (s *Store) CreateExercise(input ExerciseInput) (*models.Exercise, error) {
	exercise := models.Exercise{
		ID:          uuid.NewString(),
		Environment: s.tier.String(),
	}
	applyExerciseInput(&exercise, input)

	if err := s.db.Create(&exercise).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindExercises, events.ActionInsert, "", exercise.ID)
	return &exercise, nil
}

// UpdateExercise applies a partial update to an exercise in the
// store's tier.
func (s *Store) UpdateExercise(id string, input ExerciseInput) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.scoped().First(&exercise, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	applyExerciseInput(&exercise, input)
	if err := s.db.Save(&exercise).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindExercises, events.ActionUpdate, "", exercise.ID)
	return &exercise, nil
}

// DeleteExercise removes an exercise from the tier's library.
func (s *Store) DeleteExercise(id string) error {
	result := s.scoped().Where("id = ?", id).Delete(&models.Exercise{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.publish(events.KindExercises, events.ActionDelete, "", id)
	return nil
}

func applyExerciseInput(exercise *models.Exercise, input ExerciseInput) {
	if input.Name != nil {
		exercise.Name = *input.Name
	}
	if input.Description != nil {
		exercise.Description = *input.Description
	}
	if input.MuscleGroups != nil {
		exercise.MuscleGroups = datatypes.NewJSONSlice(input.MuscleGroups)
	}
	if input.Equipment != nil {
		exercise.Equipment = *input.Equipment
	}
	if input.Difficulty != nil {
		exercise.Difficulty = *input.Difficulty
	}
}
