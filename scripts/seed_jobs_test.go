package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEntryOmitsMatchScore(t *testing.T) {
	entry := catalogEntry{
		Title:   "Software Engineer",
		Company: "TechNova",
		URL:     "https://example.com/job/software-engineer",
		Skills:  []string{"python", "sql"},
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "match_score")
	assert.Contains(t, string(data), `"company_name":"TechNova"`)
}
