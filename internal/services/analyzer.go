package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"rezumai/resume-analyzer/internal/analysis"
	"rezumai/resume-analyzer/internal/models"
	"rezumai/resume-analyzer/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeDocument(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	extractor    ExtractorService
	catalog      CatalogService
	engine       *analysis.Engine
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	extractor ExtractorService,
	catalog CatalogService,
	engine *analysis.Engine,
) AnalyzerService {
	return &analyzerService{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		extractor:    extractor,
		catalog:      catalog,
		engine:       engine,
	}
}

func (a *analyzerService) AnalyzeDocument(ctx context.Context, analysisID uuid.UUID) error {
	// Update status to processing
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job ID: %s\n", analysisID)

	record, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	doc, err := a.docRepo.FindByID(record.DocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("document not found: %v", err))
		return fmt.Errorf("failed to get document: %w", err)
	}

	text, ok := a.extractor.ExtractText(doc.FilePath)
	text = CleanText(text)
	if !ok || text == "" {
		msg := "could not extract text from document"
		a.analysisRepo.UpdateError(analysisID, msg)
		return fmt.Errorf("%s: %s", msg, doc.FilePath)
	}

	result := a.engine.Analyze(text, a.catalog.Jobs())

	resultJSON, err := json.Marshal(result)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("failed to encode result: %v", err))
		return fmt.Errorf("failed to encode result: %w", err)
	}

	roles := make([]string, 0, len(result.JobMatches))
	for _, match := range result.JobMatches {
		roles = append(roles, match.Role)
	}

	if err := a.analysisRepo.UpdateResult(
		analysisID,
		result.ATSScore,
		result.RecommendationLabel,
		strings.Join(roles, ", "),
		string(resultJSON),
	); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Analysis %s completed with ATS score %d\n", analysisID, result.ATSScore)

	return nil
}
