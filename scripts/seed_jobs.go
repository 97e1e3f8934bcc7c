package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// catalogEntry is the on-disk catalog shape. match_score is computed at
// analysis time and never belongs in the seed file.
type catalogEntry struct {
	Title   string   `json:"title"`
	Company string   `json:"company_name"`
	URL     string   `json:"url"`
	Skills  []string `json:"skills"`
}

// Writes a starter job catalog the matcher can rank against. Run once
// before first boot, or point JOB_CATALOG_PATH at your own file.
func main() {
	output := flag.String("output", "jobs.json", "path to write the job catalog")
	flag.Parse()

	jobs := []catalogEntry{
		{
			Title:   "Software Engineer",
			Company: "TechNova",
			URL:     "https://example.com/job/software-engineer",
			Skills:  []string{"python", "java", "sql", "git", "api"},
		},
		{
			Title:   "Data Analyst",
			Company: "InsightWorks",
			URL:     "https://example.com/job/data-analyst",
			Skills:  []string{"sql", "excel", "tableau", "python", "statistics"},
		},
		{
			Title:   "Frontend Developer",
			Company: "PixelForge",
			URL:     "https://example.com/job/frontend",
			Skills:  []string{"javascript", "react", "html", "css"},
		},
		{
			Title:   "Project Manager",
			Company: "Deliverly",
			URL:     "https://example.com/job/project-manager",
			Skills:  []string{"agile", "scrum", "jira", "planning"},
		},
		{
			Title:   "Digital Marketing Specialist",
			Company: "GrowthLab",
			URL:     "https://example.com/job/marketing",
			Skills:  []string{"seo", "sem", "google analytics", "content marketing"},
		},
		{
			Title:   "Business Analyst",
			Company: "ClearPath Consulting",
			URL:     "https://example.com/job/business-analyst",
			Skills:  []string{"requirements gathering", "sql", "process improvement", "documentation"},
		},
		{
			Title:   "HR Specialist",
			Company: "PeopleFirst",
			URL:     "https://example.com/job/hr",
			Skills:  []string{"recruitment", "onboarding", "hris", "employee relations"},
		},
		{
			Title:   "Sales Representative",
			Company: "RevenueRocket",
			URL:     "https://example.com/job/sales",
			Skills:  []string{"crm", "salesforce", "lead generation", "negotiation"},
		},
	}

	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode catalog: %v", err)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		log.Fatalf("❌ Failed to write catalog: %v", err)
	}

	log.Printf("✅ Wrote %d jobs to %s\n", len(jobs), *output)
}
