package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
)

type FeedbackHandler struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
	}
}

// HandleSubmitFeedback handles POST /feedback
func (h *FeedbackHandler) HandleSubmitFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	feedback := &models.Feedback{
		ID:         uuid.New(),
		Rating:     req.Rating,
		Suggestion: req.Suggestion,
		CreatedAt:  time.Now(),
	}

	if err := h.feedbackRepo.Create(feedback); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your feedback!",
	})
}
