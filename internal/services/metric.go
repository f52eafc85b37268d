package services

import (
	"time"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/google/uuid"
)

// MetricInput carries the fields of a progress metric entry.
type MetricInput struct {
	MetricType string     `json:"metricType"`
	Value      float64    `json:"value"`
	RecordedOn *time.Time `json:"recordedOn,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// CreateMetric records a measurement for the owner, stamped with the
// store's tier.
func (s *Store) CreateMetric(ownerID string, input MetricInput) (*models.ProgressMetric, error) {
	recordedOn := time.Now().UTC()
	if input.RecordedOn != nil {
		recordedOn = *input.RecordedOn
	}

	metric := models.ProgressMetric{
		ID:          uuid.NewString(),
		Environment: s.tier.String(),
		ProfileID:   ownerID,
		MetricType:  input.MetricType,
		Value:       input.Value,
		RecordedOn:  recordedOn,
		Notes:       input.Notes,
	}
	if err := s.db.Create(&metric).Error; err != nil {
		return nil, err
	}

	s.publish(events.KindMetrics, events.ActionInsert, ownerID, metric.ID)
	return &metric, nil
}

// ListMetrics returns the owner's metrics, most recent first,
// optionally restricted to one metric type.
func (s *Store) ListMetrics(ownerID, metricType string, limit int) ([]models.ProgressMetric, error) {
	query := s.scoped().
		Where("profile_id = ?", ownerID).
		Order("recorded_on DESC")
	if metricType != "" {
		query = query.Where("metric_type = ?", metricType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var metrics []models.ProgressMetric
	if err := query.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// DeleteMetric removes one of the owner's metric entries.
func (s *Store) DeleteMetric(ownerID, id string) error {
	result := s.scoped().
		Where("id = ? AND profile_id = ?", id, ownerID).
		Delete(&models.ProgressMetric{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.publish(events.KindMetrics, events.ActionDelete, ownerID, id)
	return nil
}
