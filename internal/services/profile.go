package services

import (
	"time"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileInput carries the writable profile fields. Nil pointers are
// left untouched on update.
type ProfileInput struct {
	Email        *string      `json:"email,omitempty"`
	DisplayName  *string      `json:"displayName,omitempty"`
	Birthdate    *time.Time   `json:"birthdate,omitempty"`
	HeightCm     *float64     `json:"heightCm,omitempty"`
	WeightKg     *float64     `json:"weightKg,omitempty"`
	FitnessLevel *string      `json:"fitnessLevel,omitempty"`
	Goals        []string     `json:"goals,omitempty"`
	Attributes   *models.JSON `json:"attributes,omitempty"`
}

// GetProfile fetches the profile for an account id within the store's tier.
func (s *Store) GetProfile(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.scoped().First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// UpsertProfile creates the profile row on first write and applies a
// partial update afterwards, in one transaction so a failed update
// never leaves a bare row behind. The id is the Authorizer account id.
func (s *Store) UpsertProfile(id string, input ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	created := false

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		err := s.scopedTx(tx).First(&profile, "id = ?", id).Error
		switch {
		case err == nil:
			// fall through to update
		case notFound(err) == ErrNotFound:
			profile = models.Profile{
				ID:          id,
				Environment: s.tier.String(),
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		updates := map[string]interface{}{}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.DisplayName != nil {
			updates["display_name"] = *input.DisplayName
		}
		if input.Birthdate != nil {
			updates["birthdate"] = *input.Birthdate
		}
		if input.HeightCm != nil {
			updates["height_cm"] = *input.HeightCm
		}
		if input.WeightKg != nil {
			updates["weight_kg"] = *input.WeightKg
		}
		if input.FitnessLevel != nil {
			updates["fitness_level"] = *input.FitnessLevel
		}
		if input.Goals != nil {
			updates["goals"] = datatypes.NewJSONSlice(input.Goals)
		}
		if input.Attributes != nil {
			updates["attributes"] = *input.Attributes
		}

		if len(updates) > 0 {
			if err := s.scopedTx(tx).Model(&models.Profile{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		return s.scopedTx(tx).First(&profile, "id = ?", id).Error
	})
	if txErr != nil {
		return nil, notFound(txErr)
	}

	if created {
		s.publish(events.KindProfiles, events.ActionInsert, id, id)
	} else {
		s.publish(events.KindProfiles, events.ActionUpdate, id, id)
	}

	return &profile, nil
}
