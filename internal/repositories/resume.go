package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rezumai/resume-analyzer/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.GeneratedResume) error
	FindByID(id uuid.UUID) (*models.GeneratedResume, error)
	Count() (int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.GeneratedResume) error {
	if err := r.db.Create(&resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.GeneratedResume, error) {
	var resume models.GeneratedResume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// Count implements ResumeRepository.
func (r *resumeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.GeneratedResume{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return count, nil
}
