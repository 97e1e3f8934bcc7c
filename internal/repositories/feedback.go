package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"rezumai/resume-analyzer/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	Count() (int64, error)
	AverageRating() (float64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create implements FeedbackRepository.
func (f *feedbackRepository) Create(feedback *models.Feedback) error {
	if err := f.db.Create(&feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// Count implements FeedbackRepository.
func (f *feedbackRepository) Count() (int64, error) {
	var count int64
	if err := f.db.Model(&models.Feedback{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// AverageRating implements FeedbackRepository.
func (f *feedbackRepository) AverageRating() (float64, error) {
	var avg *float64
	if err := f.db.Model(&models.Feedback{}).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if avg == nil {
		return 0, nil
	}

	return *avg, nil
}
