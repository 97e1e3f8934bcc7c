package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
)

type MetricsHandler struct {
	docRepo      repositories.DocumentRepository
	analysisRepo repositories.AnalysisRepository
	resumeRepo   repositories.ResumeRepository
	feedbackRepo repositories.FeedbackRepository
}

func NewMetricsHandler(
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	resumeRepo repositories.ResumeRepository,
	feedbackRepo repositories.FeedbackRepository,
) *MetricsHandler {
	return &MetricsHandler{
		docRepo:      docRepo,
		analysisRepo: analysisRepo,
		resumeRepo:   resumeRepo,
		feedbackRepo: feedbackRepo,
	}
}

// HandleGetMetrics handles GET /admin/metrics
func (h *MetricsHandler) HandleGetMetrics(c *fiber.Ctx) error {
	uploads, err := h.docRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count uploads",
		})
	}

	analyses, err := h.analysisRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count analyses",
		})
	}

	resumes, err := h.resumeRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count resumes",
		})
	}

	feedbackCount, err := h.feedbackRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count feedback",
		})
	}

	avgRating, err := h.feedbackRepo.AverageRating()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute average rating",
		})
	}

	avgScore, err := h.analysisRepo.AverageScore()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute average ATS score",
		})
	}

	return c.JSON(models.MetricsResponse{
		TotalUploads:  uploads,
		TotalAnalyses: analyses,
		TotalResumes:  resumes,
		TotalFeedback: feedbackCount,
		AverageRating: avgRating,
		AverageScore:  avgScore,
	})
}
