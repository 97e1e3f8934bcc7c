// Package analysis implements the résumé scoring engine: keyword extraction,
// the ATS heuristic score, role prediction, skill-gap coaching, and job
// matching. Everything here is a pure function of (text, dictionaries,
// catalog) with no I/O, so the whole pipeline is unit-testable with literal
// strings.
package analysis

import (
	"regexp"
	"strings"
)

// JobPosting is one catalog entry. MatchScore is filled in by the job matcher
// for recommended postings.
type JobPosting struct {
	Title      string   `json:"title"`
	Company    string   `json:"company_name"`
	URL        string   `json:"url"`
	Skills     []string `json:"skills"`
	MatchScore int      `json:"match_score"`
}

// RoleMatch is one predicted role with its skill overlap detail. MatchedSkills
// and MissingSkills partition the role's full skill list.
type RoleMatch struct {
	Role            string   `json:"role"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// KeywordInsight summarizes keyword coverage for one predicted role.
type KeywordInsight struct {
	FoundKeywords     []string `json:"found_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	KeywordDensity    int      `json:"keyword_density"`
	ImprovementNeeded []string `json:"improvement_needed"`
}

// GapDetail categorizes missing skills by severity.
type GapDetail struct {
	CriticalGaps    []string `json:"critical_gaps"`
	ModerateGaps    []string `json:"moderate_gaps"`
	NiceToHave      []string `json:"nice_to_have"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
}

// ActionPlan is the fixed-shape improvement plan attached to each role gap.
type ActionPlan struct {
	ImmediateActions []string `json:"immediate_actions"`
	ShortTermGoals   []string `json:"short_term_goals"`
	LongTermGoals    []string `json:"long_term_goals"`
	Timeline         string   `json:"timeline"`
}

// SkillGap is the full coaching record for one predicted role.
type SkillGap struct {
	MatchPercentage   float64    `json:"match_percentage"`
	CurrentSkills     []string   `json:"current_skills"`
	CriticalGaps      []string   `json:"critical_gaps"`
	RecommendedSkills []string   `json:"recommended_skills"`
	LearningPath      []string   `json:"learning_path"`
	Certifications    []string   `json:"certifications"`
	Projects          []string   `json:"projects"`
	ToolsPlatforms    []string   `json:"tools_platforms"`
	SoftSkills        []string   `json:"soft_skills"`
	PriorityLevel     string     `json:"priority_level"`
	GapAnalysis       GapDetail  `json:"gap_analysis"`
	ActionPlan        ActionPlan `json:"action_plan"`
}

// AnalysisResult is the aggregate produced by one Analyze call. It is never
// mutated after construction; the web layer persists it as JSON.
type AnalysisResult struct {
	ATSScore              int                       `json:"ats_score"`
	RecommendationLabel   string                    `json:"recommendation_label"`
	Keywords              []string                  `json:"keywords"`
	JobMatches            []RoleMatch               `json:"job_matches"`
	KeywordAnalysis       map[string]KeywordInsight `json:"keyword_analysis"`
	SkillGaps             map[string]SkillGap       `json:"skill_gaps"`
	QuantifiedSuggestions []BulletRewrite           `json:"quantified_suggestions"`
	Improvements          []string                  `json:"improvements"`
	SummarySuggestion     string                    `json:"summary_suggestions"`
	SkillsSuggestion      string                    `json:"skills_suggestions"`
	ATSExplanation        string                    `json:"ats_explanation"`
	RecommendedJobs       []JobPosting              `json:"recommended_jobs"`
}

// Engine is the read-only analysis context: the static dictionaries plus the
// regexes compiled from them. Construct once per process and share freely;
// concurrent analyses are independent.
type Engine struct {
	dict        Dictionaries
	dictSkills  map[string]bool
	verbRes     []*regexp.Regexp
	industryRes []*regexp.Regexp
}

func NewEngine(dict Dictionaries) *Engine {
	e := &Engine{dict: dict, dictSkills: make(map[string]bool)}
	for _, rs := range dict.Roles {
		for _, s := range rs.Skills {
			e.dictSkills[strings.ToLower(s)] = true
		}
	}
	for _, vs := range dict.Verbs {
		e.verbRes = append(e.verbRes, termAlternation(vs.Verbs))
	}
	for _, is := range dict.Industries {
		e.industryRes = append(e.industryRes, termAlternation(is.Keywords))
	}
	return e
}

// termAlternation compiles a word-boundary alternation over the given terms.
// Multi-word terms match as bounded phrases.
func termAlternation(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(t))
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
