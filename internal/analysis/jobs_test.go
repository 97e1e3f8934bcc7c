package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []JobPosting {
	return []JobPosting{
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
		{
			Title:   "Staff Accountant",
			Company: "LedgerCo",
			URL:     "https://example.com/job/accountant",
			Skills:  []string{"bookkeeping", "quickbooks"},
		},
	}
}

func TestMatchJobs(t *testing.T) {
	t.Run("overlap ranks above title-only match", func(t *testing.T) {
		catalog := testCatalog()
		matches := MatchJobs([]string{"DevOps Engineer", "AI/ML Engineer"}, []string{"python", "data"}, catalog)

		require.Len(t, matches, 2)
		assert.Equal(t, "AI/ML Engineer", matches[0].Title)
		assert.Equal(t, 2, matches[0].MatchScore)
		assert.Equal(t, "DevOps Engineer", matches[1].Title)
		assert.Equal(t, 0, matches[1].MatchScore)
	})

	t.Run("no role or skill overlap excludes posting", func(t *testing.T) {
		matches := MatchJobs([]string{"DevOps Engineer"}, []string{"docker"}, testCatalog())

		for _, m := range matches {
			assert.NotEqual(t, "Staff Accountant", m.Title)
		}
	})

	t.Run("duplicate URLs collapse to first occurrence", func(t *testing.T) {
		catalog := []JobPosting{
			{Title: "Data Analyst", Company: "A", URL: "https://example.com/job/1", Skills: []string{"sql"}},
			{Title: "Data Analyst II", Company: "B", URL: "https://example.com/job/1", Skills: []string{"sql", "excel"}},
		}
		matches := MatchJobs(nil, []string{"sql", "excel"}, catalog)

		require.Len(t, matches, 1)
		assert.Equal(t, "Data Analyst", matches[0].Title)
	})

	t.Run("caps at five postings", func(t *testing.T) {
		var catalog []JobPosting
		for i := 0; i < 8; i++ {
			catalog = append(catalog, JobPosting{
				Title:  "Data Analyst",
				URL:    string(rune('a'+i)) + "://example.com",
				Skills: []string{"sql"},
			})
		}
		matches := MatchJobs(nil, []string{"sql"}, catalog)
		assert.Len(t, matches, 5)
	})

	t.Run("skill comparison is case insensitive", func(t *testing.T) {
		catalog := []JobPosting{
			{Title: "Backend Engineer", URL: "https://example.com/job/be", Skills: []string{"Python", "SQL"}},
		}
		matches := MatchJobs(nil, []string{"python"}, catalog)

		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].MatchScore)
	})

	t.Run("empty inputs yield no matches", func(t *testing.T) {
		assert.Empty(t, MatchJobs(nil, nil, testCatalog()))
		assert.Empty(t, MatchJobs([]string{"DevOps Engineer"}, []string{"docker"}, nil))
	})
}

func TestUniqueLower(t *testing.T) {
	assert.Equal(t, []string{"sql", "python"}, uniqueLower([]string{"SQL", "sql", "Python", "PYTHON"}))
	assert.Nil(t, uniqueLower(nil))
}
