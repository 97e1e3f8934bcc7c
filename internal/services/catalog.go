package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"rezumai/resume-analyzer/internal/analysis"
)

// CatalogService serves the job postings the matcher ranks against.
// The catalog is loaded once at startup from a JSON file and a pair of
// placeholder postings is always appended so matching still produces
// results when the file is missing or sparse.
type CatalogService interface {
	Jobs() []analysis.JobPosting
}

type catalogService struct {
	jobs []analysis.JobPosting
}

func placeholderJobs() []analysis.JobPosting {
	return []analysis.JobPosting{
		{
			Title:   "DevOps Engineer",
			Company: "CloudNine",
			URL:     "https://example.com/job/devops",
			Skills:  []string{"aws", "docker", "kubernetes", "linux"},
		},
		{
			Title:   "AI/ML Engineer",
			Company: "Innovate AI",
			URL:     "https://example.com/job/ai",
			Skills:  []string{"python", "ml", "ai", "data"},
		},
	}
}

func NewCatalogService(path string) CatalogService {
	jobs, err := loadCatalog(path)
	if err != nil {
		log.Printf("⚠️  Could not load job catalog from %s: %v. Using placeholder jobs only.\n", path, err)
		jobs = nil
	} else {
		log.Printf("✅ Loaded %d jobs from catalog %s\n", len(jobs), path)
	}

	return &catalogService{
		jobs: append(jobs, placeholderJobs()...),
	}
}

func loadCatalog(path string) ([]analysis.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var jobs []analysis.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return jobs, nil
}

// Jobs implements CatalogService.
func (c *catalogService) Jobs() []analysis.JobPosting {
	return c.jobs
}
