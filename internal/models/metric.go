package models

import (
	"time"
)

// ProgressMetric is a dated numeric measurement for a profile. The
// metric type is a free-form string (weight, body-fat, lift names)
// chosen by the UI; the service treats it opaquely.
type ProgressMetric struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Environment string    `gorm:"size:8;not null;index:idx_progress_metrics_environment" json:"environment"`
	ProfileID   string    `gorm:"type:char(36);not null;index" json:"profileId"`
	MetricType  string    `gorm:"size:64;not null" json:"metricType"`
	Value       float64   `gorm:"not null" json:"value"`
	RecordedOn  time.Time `gorm:"not null" json:"recordedOn"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for ProgressMetric
func (ProgressMetric) TableName() string {
	return "progress_metrics"
}
