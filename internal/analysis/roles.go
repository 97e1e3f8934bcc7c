package analysis

import (
	"math"
	"sort"
	"strings"
)

// roleCutoff excludes roles with no reasonable match from predictions.
const roleCutoff = 20

// PredictRoles scores every dictionary role against the keywords and text,
// keeps the ones above the cutoff, and returns the top five by match
// percentage. A skill counts as matched when it is an extracted keyword or
// appears as a substring of the text.
//
// The industry boost is role-independent: it is computed once from the text
// and added to every role's percentage. Downstream suggestion text assumes
// this shape, so it is kept as-is.
func (e *Engine) PredictRoles(text string, keywords []string) []RoleMatch {
	textLower := strings.ToLower(text)
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}

	boost := e.industryBoost(textLower)

	var matches []RoleMatch
	for _, rs := range e.dict.Roles {
		var matched, missing []string
		for _, skill := range rs.Skills {
			if kw[skill] || strings.Contains(textLower, skill) {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		pct := float64(len(matched)) / float64(len(rs.Skills)) * 100
		final := math.Min(100, pct+boost)
		if final > roleCutoff {
			matches = append(matches, RoleMatch{
				Role:            rs.Role,
				MatchPercentage: round1(final),
				MatchedSkills:   matched,
				MissingSkills:   missing,
			})
		}
	}

	// Stable sort keeps dictionary order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}

// industryBoost counts, per industry, how many of its keywords occur as
// substrings of the text and awards two points each.
func (e *Engine) industryBoost(textLower string) float64 {
	boost := 0.0
	for _, is := range e.dict.Industries {
		for _, kw := range is.Keywords {
			if strings.Contains(textLower, kw) {
				boost += 2
			}
		}
	}
	return boost
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
