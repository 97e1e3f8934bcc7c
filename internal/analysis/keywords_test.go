package analysis

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filler(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}

func TestExtractKeywords(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	t.Run("deduplicates and sorts", func(t *testing.T) {
		text := "Python and SQL and python again, with Excel and sql"
		keywords := engine.ExtractKeywords(text, nil)

		assert.Equal(t, []string{"excel", "python", "sql"}, keywords)
		assert.True(t, sort.StringsAreSorted(keywords))
	})

	t.Run("only vocabulary words survive", func(t *testing.T) {
		text := "banana python skateboard sql unicycle"
		keywords := engine.ExtractKeywords(text, nil)

		vocab := engine.knownSkills(nil)
		for _, kw := range keywords {
			assert.True(t, vocab[kw], "keyword %q not in vocabulary", kw)
		}
		assert.NotContains(t, keywords, "banana")
		assert.NotContains(t, keywords, "skateboard")
	})

	t.Run("catalog skills extend the vocabulary", func(t *testing.T) {
		catalog := []JobPosting{
			{Title: "Platform Engineer", URL: "https://example.com/1", Skills: []string{"Pulumi"}},
		}
		text := "Worked extensively with pulumi and python"

		withCatalog := engine.ExtractKeywords(text, catalog)
		withoutCatalog := engine.ExtractKeywords(text, nil)

		assert.Contains(t, withCatalog, "pulumi")
		assert.NotContains(t, withoutCatalog, "pulumi")
	})

	t.Run("empty text yields no keywords", func(t *testing.T) {
		assert.Empty(t, engine.ExtractKeywords("", nil))
	})
}

func TestIsResume(t *testing.T) {
	validBody := filler(480) + " Experience Education Skills contact jane@x.com"

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "valid resume text",
			text: validBody,
			want: true,
		},
		{
			name: "too short even with sections and email",
			text: "Experience Education Skills jane@x.com",
			want: false,
		},
		{
			name: "too long",
			text: filler(2100) + " Experience Education jane@x.com",
			want: false,
		},
		{
			name: "missing email",
			text: filler(480) + " Experience Education Skills",
			want: false,
		},
		{
			name: "only one section marker",
			text: filler(480) + " Experience jane@x.com",
			want: false,
		},
		{
			name: "empty text",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsResume(tt.text))
		})
	}
}

func TestIsResumeSectionMarkersCaseInsensitive(t *testing.T) {
	text := filler(300) + " EXPERIENCE EDUCATION jane@x.com"
	require.True(t, IsResume(text))
}
