package analysis

import (
	"fmt"
	"strings"
)

// AnalyzeSkillGaps builds the per-role coaching record for each predicted
// role: gap severity buckets, prioritized skill recommendations, and a
// fixed-shape action plan parameterized by the top critical gap.
func (e *Engine) AnalyzeSkillGaps(matches []RoleMatch) map[string]SkillGap {
	gaps := make(map[string]SkillGap, len(matches))
	for _, m := range matches {
		rec := recommendationFor(m.Role)
		detail := analyzeGapDetail(m.Role, m.MatchedSkills, m.MissingSkills, rec)

		gaps[m.Role] = SkillGap{
			MatchPercentage:   m.MatchPercentage,
			CurrentSkills:     m.MatchedSkills,
			CriticalGaps:      headN(m.MissingSkills, 5),
			RecommendedSkills: prioritySkills(rec, m.MissingSkills),
			LearningPath:      rec.LearningPath,
			Certifications:    rec.Certifications,
			Projects:          rec.Projects,
			ToolsPlatforms:    toolsPlatforms(rec),
			SoftSkills:        rec.SoftSkills,
			PriorityLevel:     priorityLevel(m.MatchPercentage),
			GapAnalysis:       detail,
			ActionPlan:        buildActionPlan(detail),
		}
	}
	return gaps
}

// AnalyzeKeywordMatches summarizes found and missing keywords per predicted
// role.
func (e *Engine) AnalyzeKeywordMatches(matches []RoleMatch) map[string]KeywordInsight {
	insights := make(map[string]KeywordInsight, len(matches))
	for _, m := range matches {
		missing := headN(m.MissingSkills, 5)
		insights[m.Role] = KeywordInsight{
			FoundKeywords:     m.MatchedSkills,
			MissingKeywords:   missing,
			KeywordDensity:    len(m.MatchedSkills),
			ImprovementNeeded: headN(missing, 3),
		}
	}
	return insights
}

// QuantifiedSuggestions returns up to six weak-to-strong bullet rewrites, two
// per role for the top three predicted roles.
func (e *Engine) QuantifiedSuggestions(matches []RoleMatch) []BulletRewrite {
	var suggestions []BulletRewrite
	for _, m := range headMatches(matches, 3) {
		examples := bulletExamplesFor(m.Role)
		for _, ex := range headBullets(examples, 2) {
			ex.Role = m.Role
			suggestions = append(suggestions, ex)
		}
	}
	if len(suggestions) > 6 {
		suggestions = suggestions[:6]
	}
	return suggestions
}

// TailoringAdvice produces one canned advice line per top-three role, keyed to
// the match percentage.
func (e *Engine) TailoringAdvice(matches []RoleMatch) []string {
	var advice []string
	for _, m := range headMatches(matches, 3) {
		switch {
		case m.MatchPercentage > 70:
			advice = append(advice, fmt.Sprintf("✅ Strong match for %s (%.1f%%) - Your resume aligns well with this role", m.Role, m.MatchPercentage))
		case m.MatchPercentage > 50:
			advice = append(advice, fmt.Sprintf("🔧 Good potential for %s (%.1f%%) - Add missing skills to improve match", m.Role, m.MatchPercentage))
		default:
			advice = append(advice, fmt.Sprintf("⚠️ Consider %s (%.1f%%) - Focus on relevant skills and experience", m.Role, m.MatchPercentage))
		}
	}
	return advice
}

// analyzeGapDetail buckets missing skills by where they sit in the flattened
// technical-skill list: the first ten entries are critical, the next ten
// moderate, the rest nice-to-have.
func analyzeGapDetail(role string, matched, missing []string, rec RoleRecommendation) GapDetail {
	var required []string
	for _, cat := range rec.TechnicalSkills {
		required = append(required, cat.Skills...)
	}
	critical := lowerSet(headN(required, 10))
	moderate := lowerSet(sliceRange(required, 10, 20))

	detail := GapDetail{Strengths: matched}
	for _, skill := range missing {
		switch {
		case critical[strings.ToLower(skill)]:
			detail.CriticalGaps = append(detail.CriticalGaps, skill)
		case moderate[strings.ToLower(skill)]:
			detail.ModerateGaps = append(detail.ModerateGaps, skill)
		default:
			detail.NiceToHave = append(detail.NiceToHave, skill)
		}
	}

	if len(detail.CriticalGaps) > 0 {
		detail.Recommendations = append(detail.Recommendations,
			fmt.Sprintf("Priority 1: Master %s - These are essential for %s roles", strings.Join(headN(detail.CriticalGaps, 3), ", "), role))
	}
	if len(detail.ModerateGaps) > 0 {
		detail.Recommendations = append(detail.Recommendations,
			fmt.Sprintf("Priority 2: Learn %s - These will significantly improve your competitiveness", strings.Join(headN(detail.ModerateGaps, 3), ", ")))
	}
	return detail
}

func buildActionPlan(detail GapDetail) ActionPlan {
	plan := ActionPlan{
		Timeline: "12-16 weeks to achieve 100% job match potential",
	}
	if len(detail.CriticalGaps) > 0 {
		plan.ImmediateActions = []string{
			fmt.Sprintf("Start learning %s - highest priority skill", detail.CriticalGaps[0]),
			"Update resume with current skills and quantify achievements",
			"Begin building a portfolio project showcasing your skills",
		}
	}
	plan.ShortTermGoals = []string{
		"Complete 2-3 online courses in critical skills",
		"Build 1-2 portfolio projects demonstrating expertise",
		"Obtain 1 industry-relevant certification",
	}
	plan.LongTermGoals = []string{
		"Master all critical skills for the role",
		"Complete 3-4 portfolio projects",
		"Achieve 2-3 professional certifications",
		"Network with professionals in the field",
	}
	return plan
}

// prioritySkills takes the first five skills of each technical category that
// the candidate is missing, capped at ten.
func prioritySkills(rec RoleRecommendation, missing []string) []string {
	missingSet := lowerSet(missing)
	var priority []string
	for _, cat := range rec.TechnicalSkills {
		for _, skill := range headN(cat.Skills, 5) {
			if missingSet[strings.ToLower(skill)] {
				priority = append(priority, skill)
			}
		}
	}
	return headN(priority, 10)
}

// toolsPlatforms collects skills from categories named like tools or
// platforms, capped at eight.
func toolsPlatforms(rec RoleRecommendation) []string {
	var tools []string
	for _, cat := range rec.TechnicalSkills {
		name := strings.ToLower(cat.Name)
		if strings.Contains(name, "tools") || strings.Contains(name, "platforms") {
			tools = append(tools, cat.Skills...)
		}
	}
	return headN(tools, 8)
}

func priorityLevel(matchPercentage float64) string {
	switch {
	case matchPercentage > 70:
		return "High"
	case matchPercentage > 50:
		return "Medium"
	default:
		return "Low"
	}
}

func headN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func headMatches(s []RoleMatch, n int) []RoleMatch {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func headBullets(s []BulletRewrite, n int) []BulletRewrite {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func sliceRange(s []string, from, to int) []string {
	if from >= len(s) {
		return nil
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func lowerSet(s []string) map[string]bool {
	set := make(map[string]bool, len(s))
	for _, v := range s {
		set[strings.ToLower(v)] = true
	}
	return set
}
