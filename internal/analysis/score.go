package analysis

import (
	"regexp"
	"strings"
)

// Component caps. Preserved from the original heuristic; do not recalibrate
// without bumping DictionaryVersion.
const (
	maxKeywordScore    = 30
	maxQuantifiedScore = 25
	maxActionVerbScore = 15
	maxStructureScore  = 15
	maxContactScore    = 10
	maxIndustryScore   = 5
)

var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(%|percent|million|thousand|k|lakhs|x|\$|£|€)`),
	regexp.MustCompile(`\d+\s*(years?|months?|days?)\s+of`),
	regexp.MustCompile(`increased|decreased|improved|reduced|saved|generated|achieved`),
	regexp.MustCompile(`\d+\s*(times?|fold|people|users|customers|clients)`),
}

var phoneRe = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)

// ScoreBreakdown carries the capped sub-scores of one ATS calculation.
type ScoreBreakdown struct {
	Keywords    float64 `json:"keywords"`
	Quantified  float64 `json:"quantified"`
	ActionVerbs float64 `json:"action_verbs"`
	Structure   float64 `json:"structure"`
	Contact     float64 `json:"contact"`
	Industry    float64 `json:"industry"`
	Total       int     `json:"total"`
}

// Score computes the composite ATS score in [0, 100]. Deterministic and total
// over any input string; empty text simply scores 0.
func (e *Engine) Score(text string, keywords []string) int {
	return e.ScoreBreakdown(text, keywords).Total
}

// ScoreBreakdown computes the six capped components and the clamped total.
func (e *Engine) ScoreBreakdown(text string, keywords []string) ScoreBreakdown {
	textLower := strings.ToLower(text)
	wordCount := len(wordRe.FindAllString(text, -1))

	var b ScoreBreakdown

	// 1. Keyword density and relevance.
	b.Keywords = minF(maxKeywordScore, float64(len(keywords))*3)

	// 2. Quantified achievements.
	quantified := 0
	for _, re := range quantifiedPatterns {
		quantified += len(re.FindAllString(textLower, -1))
	}
	b.Quantified = minF(maxQuantifiedScore, float64(quantified)*2)

	// 3. Action verb usage.
	verbs := 0
	for _, re := range e.verbRes {
		verbs += len(re.FindAllString(textLower, -1))
	}
	b.ActionVerbs = minF(maxActionVerbScore, float64(verbs)*1.5)

	// 4. Structure and length, banded by word count.
	switch {
	case wordCount >= 400 && wordCount <= 1000:
		b.Structure = 15
	case (wordCount >= 300 && wordCount < 400) || (wordCount > 1000 && wordCount <= 1500):
		b.Structure = 10
	case (wordCount >= 200 && wordCount < 300) || (wordCount > 1500 && wordCount <= 2000):
		b.Structure = 5
	}

	// 5. Contact information and professional elements.
	if emailRe.MatchString(textLower) {
		b.Contact += 3
	}
	if phoneRe.MatchString(textLower) {
		b.Contact += 2
	}
	for _, section := range []string{"experience", "education", "skills", "summary"} {
		if strings.Contains(textLower, section) {
			b.Contact += 5
			break
		}
	}

	// 6. Industry-specific keyword bonus.
	industry := 0
	for _, re := range e.industryRes {
		industry += len(re.FindAllString(textLower, -1))
	}
	b.Industry = minF(maxIndustryScore, float64(industry)*0.5)

	total := b.Keywords + b.Quantified + b.ActionVerbs + b.Structure + b.Contact + b.Industry
	b.Total = clampScore(int(total))
	return b
}

func minF(cap, v float64) float64 {
	if v < cap {
		return v
	}
	return cap
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
