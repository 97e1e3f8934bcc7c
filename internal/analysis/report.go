package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var quantifiedHintRe = regexp.MustCompile(`\d+\s*(%|million|thousand|k)`)

// Analyze runs the full pipeline over one document's extracted text and
// assembles the report. It is deterministic: identical (text, catalog) input
// yields an identical result.
func (e *Engine) Analyze(text string, catalog []JobPosting) AnalysisResult {
	keywords := e.ExtractKeywords(text, catalog)
	score := e.Score(text, keywords)
	matches := e.PredictRoles(text, keywords)

	topRoles := make([]string, 0, 3)
	for _, m := range headMatches(matches, 3) {
		topRoles = append(topRoles, m.Role)
	}

	return AnalysisResult{
		ATSScore:              score,
		RecommendationLabel:   RecommendationLabel(score),
		Keywords:              keywords,
		JobMatches:            matches,
		KeywordAnalysis:       e.AnalyzeKeywordMatches(matches),
		SkillGaps:             e.AnalyzeSkillGaps(matches),
		QuantifiedSuggestions: e.QuantifiedSuggestions(matches),
		Improvements:          e.TailoringAdvice(matches),
		SummarySuggestion:     atsSummary(text, matches),
		SkillsSuggestion:      atsSkillsSection(keywords, matches),
		ATSExplanation:        ScoreExplanation(score),
		RecommendedJobs:       MatchJobs(topRoles, keywords, catalog),
	}
}

// atsSummary synthesizes an ATS-optimized professional summary from the top
// predicted role and its matched skills.
func atsSummary(text string, matches []RoleMatch) string {
	if len(matches) == 0 {
		return "Results-driven professional with expertise in various domains. Seeking opportunities to apply skills and contribute to organizational success."
	}

	top := matches[0]
	skills := strings.Join(headN(top.MatchedSkills, 5), ", ")
	context, ok := industryContext[top.Role]
	if !ok {
		context = "professional"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Results-driven %s with expertise in %s. ", context, skills)
	if quantifiedHintRe.MatchString(strings.ToLower(text)) {
		b.WriteString("Demonstrated success in optimizing processes and driving measurable performance improvements. ")
	}
	fmt.Fprintf(&b, "Seeking to leverage technical skills and experience to contribute to %s opportunities.", top.Role)
	return b.String()
}

// atsSkillsSection partitions matched skills into technical/tools/soft
// buckets by substring cues and renders the skills line.
func atsSkillsSection(keywords []string, matches []RoleMatch) string {
	if len(matches) == 0 {
		return "Skills: " + strings.Join(headN(keywords, 10), ", ")
	}

	techCues := []string{"programming", "software", "database", "cloud", "api"}
	toolCues := []string{"excel", "tableau", "powerbi", "jira", "git"}

	var technical, tools, soft []string
	seen := make(map[string]bool)
	for _, m := range matches {
		for _, skill := range m.MatchedSkills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			switch {
			case containsAny(skill, techCues):
				technical = append(technical, skill)
			case containsAny(skill, toolCues):
				tools = append(tools, skill)
			default:
				soft = append(soft, skill)
			}
		}
	}
	technical = headN(technical, 8)
	tools = headN(tools, 6)
	soft = headN(soft, 6)

	line := "Technical Skills: " + strings.Join(technical, ", ")
	if len(tools) > 0 {
		line += " | Tools: " + strings.Join(tools, ", ")
	}
	if len(soft) > 0 {
		line += " | Professional Skills: " + strings.Join(soft, ", ")
	}
	return line
}

func containsAny(s string, cues []string) bool {
	ls := strings.ToLower(s)
	for _, cue := range cues {
		if strings.Contains(ls, cue) {
			return true
		}
	}
	return false
}

// ScoreExplanation renders the human-readable explanation band for a score.
func ScoreExplanation(score int) string {
	var level, explanation string
	switch {
	case score >= 90:
		level = "Excellent"
		explanation = "Your resume is highly ATS-optimized with strong keyword density, quantified achievements, and proper structure."
	case score >= 80:
		level = "Good"
		explanation = "Your resume has a solid foundation but can be improved with more quantified achievements and keyword optimization."
	case score >= 70:
		level = "Fair"
		explanation = "Your resume needs improvement in keyword density, quantified results, and ATS-friendly formatting."
	case score >= 60:
		level = "Poor"
		explanation = "Your resume requires significant improvements in structure, keywords, and quantified achievements."
	default:
		level = "Very Poor"
		explanation = "Your resume needs major improvements across all ATS criteria including keywords, structure, and achievements."
	}
	return fmt.Sprintf("ATS Score: %d/100 (%s) - %s", score, level, explanation)
}

// RecommendationLabel maps a score to its dashboard label.
func RecommendationLabel(score int) string {
	switch {
	case score > 85:
		return "Great 🌟"
	case score > 70:
		return "Good ✅"
	case score > 50:
		return "Can be Better 🔧"
	case score > 30:
		return "Bad ⚠️"
	default:
		return "Flop ❌"
	}
}
