package analysis

import (
	"regexp"
	"sort"
	"strings"
)

var (
	alphaTokenRe = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	wordRe       = regexp.MustCompile(`\w+`)
	emailRe      = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)
)

var sectionMarkers = []string{"education", "skills", "experience", "projects", "certifications", "summary"}

// ExtractKeywords tokenizes the text into alphabetic words, case-folds them,
// and keeps the ones present in the known-skills vocabulary (dictionary
// skills plus the catalog's skills). The result is deduplicated and sorted;
// callers must not attach meaning to the order.
func (e *Engine) ExtractKeywords(text string, catalog []JobPosting) []string {
	vocab := e.knownSkills(catalog)
	seen := make(map[string]bool)
	var keywords []string
	for _, w := range alphaTokenRe.FindAllString(strings.ToLower(text), -1) {
		if vocab[w] && !seen[w] {
			seen[w] = true
			keywords = append(keywords, w)
		}
	}
	sort.Strings(keywords)
	return keywords
}

// knownSkills is the union of every dictionary skill and every catalog skill,
// case-folded.
func (e *Engine) knownSkills(catalog []JobPosting) map[string]bool {
	vocab := make(map[string]bool, len(e.dictSkills))
	for s := range e.dictSkills {
		vocab[s] = true
	}
	for _, job := range catalog {
		for _, s := range job.Skills {
			vocab[strings.ToLower(s)] = true
		}
	}
	return vocab
}

// IsResume decides whether the text is plausibly a résumé: word count within
// [150, 2000], at least two section-marker words, and at least one
// email-shaped substring. A false here is a normal negative outcome, not an
// error; callers delete the uploaded artifact and tell the user.
func IsResume(text string) bool {
	textLower := strings.ToLower(text)

	wordCount := len(wordRe.FindAllString(textLower, -1))
	if wordCount < 150 || wordCount > 2000 {
		return false
	}

	found := 0
	for _, marker := range sectionMarkers {
		if strings.Contains(textLower, marker) {
			found++
		}
	}
	if found < 2 {
		return false
	}

	return emailRe.MatchString(textLower)
}
