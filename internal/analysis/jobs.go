package analysis

import (
	"sort"
	"strings"
)

// MatchJobs scores the catalog against the predicted roles and extracted
// keywords. A posting qualifies when a predicted role name appears in its
// title or it shares at least one skill with the keywords; duplicates are
// dropped by URL (first occurrence wins) and the top five by skill overlap
// are returned.
func MatchJobs(predictedRoles []string, keywords []string, catalog []JobPosting) []JobPosting {
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}

	seen := make(map[string]bool)
	var recommended []JobPosting
	for _, job := range catalog {
		title := strings.ToLower(job.Title)
		titleMatch := false
		for _, role := range predictedRoles {
			if strings.Contains(title, strings.ToLower(role)) {
				titleMatch = true
				break
			}
		}

		overlap := 0
		for _, s := range uniqueLower(job.Skills) {
			if kw[s] {
				overlap++
			}
		}

		if (titleMatch || overlap > 0) && !seen[job.URL] {
			job.MatchScore = overlap
			recommended = append(recommended, job)
			seen[job.URL] = true
		}
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].MatchScore > recommended[j].MatchScore
	})
	if len(recommended) > 5 {
		recommended = recommended[:5]
	}
	return recommended
}

func uniqueLower(s []string) []string {
	seen := make(map[string]bool, len(s))
	var out []string
	for _, v := range s {
		lv := strings.ToLower(v)
		if !seen[lv] {
			seen[lv] = true
			out = append(out, lv)
		}
	}
	return out
}
