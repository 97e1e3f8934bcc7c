package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBounds(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	tests := []struct {
		name     string
		text     string
		keywords []string
	}{
		{"empty text", "", nil},
		{"whitespace only", "   \n\t  ", nil},
		{"plain filler", filler(450), nil},
		{
			name: "keyword heavy",
			text: filler(400) + " achieved improved led developed analyzed increased 25% $2M experience jane@x.com +1 (555) 123-4567 software data cloud",
			keywords: []string{
				"python", "sql", "excel", "tableau", "data", "analytics",
				"statistics", "java", "react", "docker", "kubernetes", "aws",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := engine.Score(tt.text, tt.keywords)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestScoreEmptyTextIsZero(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())
	assert.Equal(t, 0, engine.Score("", nil))
}

func TestScoreStructureBands(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	// Filler words trip no other component, so the total is the
	// structure band alone.
	tests := []struct {
		words int
		want  int
	}{
		{100, 0},
		{200, 5},
		{299, 5},
		{300, 10},
		{399, 10},
		{400, 15},
		{1000, 15},
		{1001, 10},
		{1500, 10},
		{1501, 5},
		{2000, 5},
		{2001, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d words", tt.words), func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Score(filler(tt.words), nil))
		})
	}
}

func TestScoreBreakdownComponents(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	t.Run("quantified achievements are rewarded", func(t *testing.T) {
		text := filler(390) + " Improved sales by 25% using Salesforce CRM, increased revenue generated by $2M"
		keywords := engine.ExtractKeywords(text, nil)
		require.Contains(t, keywords, "sales")
		require.Contains(t, keywords, "crm")

		b := engine.ScoreBreakdown(text, keywords)
		assert.Greater(t, b.Quantified, 0.0)
		assert.Greater(t, b.Keywords, 0.0)
	})

	t.Run("contact component", func(t *testing.T) {
		b := engine.ScoreBreakdown("reach me at jane@x.com or +1 (555) 123-4567, see Experience below", nil)
		// email +3, phone +2, one section word +5
		assert.Equal(t, 10.0, b.Contact)
	})

	t.Run("keyword component caps at 30", func(t *testing.T) {
		keywords := make([]string, 20)
		for i := range keywords {
			keywords[i] = fmt.Sprintf("skill%d", i)
		}
		b := engine.ScoreBreakdown("", keywords)
		assert.Equal(t, 30.0, b.Keywords)
	})

	t.Run("industry component caps at 5", func(t *testing.T) {
		text := "software development programming coding api database cloud ai ml data patient medical healthcare clinical"
		b := engine.ScoreBreakdown(text, nil)
		assert.Equal(t, 5.0, b.Industry)
	})

	t.Run("total equals clamped component sum", func(t *testing.T) {
		text := filler(410) + " achieved improved analyzed 25% increase, jane@x.com, Experience"
		keywords := []string{"python", "sql"}
		b := engine.ScoreBreakdown(text, keywords)
		sum := b.Keywords + b.Quantified + b.ActionVerbs + b.Structure + b.Contact + b.Industry
		assert.Equal(t, clampScore(int(sum)), b.Total)
	})
}

func TestRecommendationLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Great 🌟"},
		{86, "Great 🌟"},
		{85, "Good ✅"},
		{71, "Good ✅"},
		{70, "Can be Better 🔧"},
		{51, "Can be Better 🔧"},
		{50, "Bad ⚠️"},
		{31, "Bad ⚠️"},
		{30, "Flop ❌"},
		{0, "Flop ❌"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendationLabel(tt.score))
		})
	}
}

func TestScoreExplanation(t *testing.T) {
	tests := []struct {
		score int
		level string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Good"},
		{80, "Good"},
		{75, "Fair"},
		{70, "Fair"},
		{65, "Poor"},
		{60, "Poor"},
		{59, "Very Poor"},
		{0, "Very Poor"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			explanation := ScoreExplanation(tt.score)
			assert.Contains(t, explanation, fmt.Sprintf("ATS Score: %d/100 (%s)", tt.score, tt.level))
		})
	}
}
