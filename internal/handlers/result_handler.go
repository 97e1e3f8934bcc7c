package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	record, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	// Build response based on status
	response := models.ResultResponse{
		ID:     record.ID.String(),
		Status: string(record.Status),
	}

	// If completed, include the full report
	if record.Status == models.StatusCompleted && record.Result != nil {
		response.Result = json.RawMessage(*record.Result)
	}

	// If failed, include error message
	if record.Status == models.StatusFailed && record.ErrorMessage != nil {
		response.ErrorMessage = record.ErrorMessage
	}

	return c.JSON(response)
}
