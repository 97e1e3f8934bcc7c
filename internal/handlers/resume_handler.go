package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
	"rezumai/resume-analyzer/internal/services"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
	renderer   services.RendererService
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	renderer services.RendererService,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
		renderer:   renderer,
	}
}

// HandleSaveResume handles POST /resumes
func (h *ResumeHandler) HandleSaveResume(c *fiber.Ctx) error {
	var data models.ResumeData

	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume payload",
		})
	}

	if data.PersonalDetails.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "personal_details.full_name is required",
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to encode resume data",
		})
	}

	resume := &models.GeneratedResume{
		ID:        uuid.New(),
		Data:      string(payload),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SaveResumeResponse{
		ID:      resume.ID.String(),
		Message: "Resume saved successfully",
	})
}

// HandleDownloadResume handles GET /resumes/:id/pdf
func (h *ResumeHandler) HandleDownloadResume(c *fiber.Ctx) error {
	idParam := c.Params("id")
	resumeID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	var data models.ResumeData
	if err := json.Unmarshal([]byte(resume.Data), &data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored resume data",
		})
	}

	pdfBytes, err := h.renderer.RenderResume(&data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to render resume PDF: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume_%s.pdf"`, resume.ID))
	return c.Send(pdfBytes)
}
