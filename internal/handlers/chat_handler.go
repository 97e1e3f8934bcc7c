package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rezumai/resume-analyzer/internal/analysis"
	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
	"rezumai/resume-analyzer/internal/services"
)

type ChatHandler struct {
	chatService  services.ChatService
	analysisRepo repositories.AnalysisRepository
}

func NewChatHandler(
	chatService services.ChatService,
	analysisRepo repositories.AnalysisRepository,
) *ChatHandler {
	return &ChatHandler{
		chatService:  chatService,
		analysisRepo: analysisRepo,
	}
}

// HandleChat handles POST /chat. The latest completed analysis, if any,
// seeds the assistant's context line.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a message",
		})
	}

	context := h.buildContext()
	reply := h.chatService.Reply(message, context)

	return c.JSON(models.ChatResponse{Response: reply})
}

func (h *ChatHandler) buildContext() string {
	record, err := h.analysisRepo.FindLatestCompleted()
	if err != nil || record.Result == nil {
		return ""
	}

	var result analysis.AnalysisResult
	if err := json.Unmarshal([]byte(*record.Result), &result); err != nil {
		return ""
	}

	roles := make([]string, 0, 3)
	for i, match := range result.JobMatches {
		if i >= 3 {
			break
		}
		roles = append(roles, match.Role)
	}

	return fmt.Sprintf("User's resume analysis: %s. Top job matches: %s",
		result.ATSExplanation, strings.Join(roles, ", "))
}
