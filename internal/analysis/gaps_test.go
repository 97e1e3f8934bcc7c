package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeGapDetailBuckets(t *testing.T) {
	rec := recommendationFor("Data Analyst")

	// In the flattened Data Analyst skill inventory, "sql" sits in the
	// first ten entries, "pandas" in the next ten, and "data
	// visualization" after that.
	missing := []string{"sql", "pandas", "data visualization", "basket weaving"}
	detail := analyzeGapDetail("Data Analyst", []string{"excel"}, missing, rec)

	assert.Equal(t, []string{"excel"}, detail.Strengths)
	assert.Contains(t, detail.CriticalGaps, "sql")
	assert.Contains(t, detail.ModerateGaps, "pandas")
	assert.Contains(t, detail.NiceToHave, "data visualization")
	assert.Contains(t, detail.NiceToHave, "basket weaving")

	require.Len(t, detail.Recommendations, 2)
	assert.Contains(t, detail.Recommendations[0], "Priority 1: Master")
	assert.Contains(t, detail.Recommendations[0], "Data Analyst")
	assert.Contains(t, detail.Recommendations[1], "Priority 2: Learn")
}

func TestBuildActionPlan(t *testing.T) {
	t.Run("critical gaps drive immediate actions", func(t *testing.T) {
		plan := buildActionPlan(GapDetail{CriticalGaps: []string{"sql", "python"}})

		require.NotEmpty(t, plan.ImmediateActions)
		assert.Contains(t, plan.ImmediateActions[0], "sql")
		assert.Equal(t, "12-16 weeks to achieve 100% job match potential", plan.Timeline)
	})

	t.Run("no critical gaps means no immediate actions", func(t *testing.T) {
		plan := buildActionPlan(GapDetail{ModerateGaps: []string{"pandas"}})

		assert.Empty(t, plan.ImmediateActions)
		assert.NotEmpty(t, plan.ShortTermGoals)
		assert.NotEmpty(t, plan.LongTermGoals)
	})
}

func TestAnalyzeSkillGaps(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	matches := []RoleMatch{
		{
			Role:            "Data Analyst",
			MatchPercentage: 77.8,
			MatchedSkills:   []string{"sql", "excel", "python"},
			MissingSkills:   []string{"tableau", "powerbi", "data", "analytics", "statistics", "r"},
		},
		{
			Role:            "Content Writer",
			MatchPercentage: 28.6,
			MatchedSkills:   []string{"content"},
			MissingSkills:   []string{"writer", "copywriting"},
		},
	}

	gaps := engine.AnalyzeSkillGaps(matches)
	require.Len(t, gaps, 2)

	da := gaps["Data Analyst"]
	assert.Equal(t, 77.8, da.MatchPercentage)
	assert.Equal(t, "High", da.PriorityLevel)
	assert.Equal(t, []string{"sql", "excel", "python"}, da.CurrentSkills)
	assert.LessOrEqual(t, len(da.CriticalGaps), 5)
	assert.LessOrEqual(t, len(da.RecommendedSkills), 10)
	assert.LessOrEqual(t, len(da.ToolsPlatforms), 8)
	assert.NotEmpty(t, da.LearningPath)
	assert.NotEmpty(t, da.Certifications)

	// A role with no curated recommendation falls back to the generic one.
	cw := gaps["Content Writer"]
	assert.Equal(t, "Low", cw.PriorityLevel)
	assert.Equal(t, genericRecommendation.LearningPath, cw.LearningPath)
}

func TestAnalyzeKeywordMatches(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	matches := []RoleMatch{
		{
			Role:            "Data Analyst",
			MatchPercentage: 50,
			MatchedSkills:   []string{"sql", "excel"},
			MissingSkills:   []string{"tableau", "powerbi", "data", "analytics", "statistics", "r", "python"},
		},
	}

	insights := engine.AnalyzeKeywordMatches(matches)
	require.Contains(t, insights, "Data Analyst")

	insight := insights["Data Analyst"]
	assert.Equal(t, []string{"sql", "excel"}, insight.FoundKeywords)
	assert.Len(t, insight.MissingKeywords, 5)
	assert.Equal(t, 2, insight.KeywordDensity)
	assert.Len(t, insight.ImprovementNeeded, 3)
}

func TestQuantifiedSuggestions(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	matches := []RoleMatch{
		{Role: "Data Analyst", MatchPercentage: 80},
		{Role: "Software Engineer", MatchPercentage: 70},
		{Role: "Project Manager", MatchPercentage: 60},
		{Role: "HR Specialist", MatchPercentage: 50},
	}

	suggestions := engine.QuantifiedSuggestions(matches)

	// Two rewrites per role for the top three roles only.
	require.Len(t, suggestions, 6)
	assert.Equal(t, "Data Analyst", suggestions[0].Role)
	assert.Equal(t, "Data Analyst", suggestions[1].Role)
	assert.Equal(t, "Software Engineer", suggestions[2].Role)
	assert.Equal(t, "Project Manager", suggestions[4].Role)

	for _, s := range suggestions {
		assert.NotEmpty(t, s.Weak)
		assert.NotEmpty(t, s.Strong)
	}
}

func TestQuantifiedSuggestionsUnknownRoleUsesGenericExamples(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	suggestions := engine.QuantifiedSuggestions([]RoleMatch{{Role: "Customer Success", MatchPercentage: 40}})

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Customer Success", suggestions[0].Role)
	assert.Equal(t, genericBulletExamples[0].Weak, suggestions[0].Weak)
}

func TestTailoringAdvice(t *testing.T) {
	engine := NewEngine(DefaultDictionaries())

	matches := []RoleMatch{
		{Role: "Data Analyst", MatchPercentage: 77.8},
		{Role: "Software Engineer", MatchPercentage: 55.5},
		{Role: "Project Manager", MatchPercentage: 30},
		{Role: "HR Specialist", MatchPercentage: 25},
	}

	advice := engine.TailoringAdvice(matches)
	require.Len(t, advice, 3)

	assert.Contains(t, advice[0], "✅ Strong match for Data Analyst (77.8%)")
	assert.Contains(t, advice[1], "🔧 Good potential for Software Engineer (55.5%)")
	assert.Contains(t, advice[2], "⚠️ Consider Project Manager (30.0%)")
}

func TestPriorityLevel(t *testing.T) {
	assert.Equal(t, "High", priorityLevel(70.1))
	assert.Equal(t, "Medium", priorityLevel(70))
	assert.Equal(t, "Medium", priorityLevel(50.1))
	assert.Equal(t, "Low", priorityLevel(50))
	assert.Equal(t, "Low", priorityLevel(0))
}
