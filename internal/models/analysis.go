package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one résumé-analysis job. Result holds the serialized
// analysis.AnalysisResult once the job completes; the score, label, and
// predicted-role columns are duplicated out of it for dashboard queries.
type Analysis struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID          uuid.UUID      `gorm:"type:uuid;not null" json:"document_id"`
	Status              AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	ATSScore            *int           `gorm:"type:integer" json:"ats_score,omitempty"`
	RecommendationLabel *string        `gorm:"type:text" json:"recommendation_label,omitempty"`
	PredictedRoles      *string        `gorm:"type:text" json:"predicted_roles,omitempty"`
	Result              *string        `gorm:"type:jsonb" json:"-"`
	ErrorMessage        *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt           time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
