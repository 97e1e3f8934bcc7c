package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rezumai/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindPendingJobs(limit int) ([]models.Analysis, error)
	FindLatestCompleted() (*models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, score int, label string, roles string, result string) error
	UpdateError(id uuid.UUID, message string) error
	Count() (int64, error)
	AverageScore() (float64, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (a *analysisRepository) Create(analysis *models.Analysis) error {
	if err := a.db.Create(&analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// FindByID implements AnalysisRepository.
func (a *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := a.db.Preload("Document").Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}

	return &analysis, nil
}

// FindPendingJobs implements AnalysisRepository.
func (a *analysisRepository) FindPendingJobs(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := a.db.Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return analyses, nil
}

// FindLatestCompleted implements AnalysisRepository.
func (a *analysisRepository) FindLatestCompleted() (*models.Analysis, error) {
	var analysis models.Analysis
	if err := a.db.Where("status = ?", models.StatusCompleted).
		Order("updated_at DESC").
		First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no completed analyses yet")
		}
		return nil, fmt.Errorf("failed to find latest completed analysis: %w", err)
	}

	return &analysis, nil
}

// UpdateStatus implements AnalysisRepository.
func (a *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := a.db.Model(&models.Analysis{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update analysis status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}

	return nil
}

// UpdateResult implements AnalysisRepository.
func (a *analysisRepository) UpdateResult(id uuid.UUID, score int, label string, roles string, result string) error {
	updates := map[string]interface{}{
		"status":               models.StatusCompleted,
		"ats_score":            score,
		"recommendation_label": label,
		"predicted_roles":      roles,
		"result":               result,
	}

	tx := a.db.Model(&models.Analysis{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("failed to update analysis result: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}

	return nil
}

// UpdateError implements AnalysisRepository.
func (a *analysisRepository) UpdateError(id uuid.UUID, message string) error {
	updates := map[string]interface{}{
		"status":        models.StatusFailed,
		"error_message": message,
	}

	tx := a.db.Model(&models.Analysis{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("failed to update analysis error: %w", tx.Error)
	}

	return nil
}

// Count implements AnalysisRepository.
func (a *analysisRepository) Count() (int64, error) {
	var count int64
	if err := a.db.Model(&models.Analysis{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// AverageScore implements AnalysisRepository.
func (a *analysisRepository) AverageScore() (float64, error) {
	var avg *float64
	if err := a.db.Model(&models.Analysis{}).
		Where("status = ?", models.StatusCompleted).
		Select("AVG(ats_score)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average score: %w", err)
	}
	if avg == nil {
		return 0, nil
	}

	return *avg, nil
}
