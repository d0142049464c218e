package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/applymate/applymate/internal/models"
)

// CleanJSON strips markdown fences and any prose around the outermost JSON
// object or array. Model output is untrusted input; nothing past this package
// handles raw response text.
func CleanJSON(raw string) string {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	content = strings.TrimSpace(content)

	start := strings.IndexAny(content, "{[")
	if start < 0 {
		return content
	}
	var end int
	if content[start] == '{' {
		end = strings.LastIndex(content, "}")
	} else {
		end = strings.LastIndex(content, "]")
	}
	if end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}

// DecodeResumeProfile parses model output into the resume schema. Missing
// optional fields are coerced to empty values, never an error; only
// unparseable JSON fails.
func DecodeResumeProfile(raw string) (*models.ResumeProfile, error) {
	var profile models.ResumeProfile
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &profile); err != nil {
		return nil, fmt.Errorf("parse resume response: %w", err)
	}

	if profile.Skills.Technical == nil {
		profile.Skills.Technical = []string{}
	}
	if profile.Skills.Soft == nil {
		profile.Skills.Soft = []string{}
	}
	if profile.Experience == nil {
		profile.Experience = []models.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []models.Education{}
	}
	profile.ATSScore.Overall = clampScore(profile.ATSScore.Overall)
	profile.ATSScore.Formatting = clampScore(profile.ATSScore.Formatting)
	profile.ATSScore.KeywordOptimization = clampScore(profile.ATSScore.KeywordOptimization)
	profile.ATSScore.ContentQuality = clampScore(profile.ATSScore.ContentQuality)

	return &profile, nil
}

// DecodeJobProfile parses model output into the job schema with the same
// coercion policy as resumes.
func DecodeJobProfile(raw string) (*models.JobProfile, error) {
	var profile models.JobProfile
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &profile); err != nil {
		return nil, fmt.Errorf("parse job response: %w", err)
	}

	if profile.TechnicalSkills == nil {
		profile.TechnicalSkills = []string{}
	}
	if profile.SoftSkills == nil {
		profile.SoftSkills = []string{}
	}
	if profile.EducationRequirements == nil {
		profile.EducationRequirements = []string{}
	}
	if profile.Responsibilities == nil {
		profile.Responsibilities = []string{}
	}
	return &profile, nil
}

// DecodeMatchResult parses model output into a MatchResult, clamping the
// percentage to 0-100 and de-duplicating skills across categories with
// matching > transferable > missing priority.
func DecodeMatchResult(raw string) (*models.MatchResult, error) {
	var wire struct {
		OverallMatch struct {
			Percentage float64 `json:"percentage"`
			Assessment string  `json:"assessment"`
		} `json:"overall_match"`
		SkillMatch models.SkillMatch `json:"skill_match"`
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &wire); err != nil {
		return nil, fmt.Errorf("parse match response: %w", err)
	}

	result := &models.MatchResult{
		OverallMatch: models.OverallMatch{
			Percentage: clampScore(int(wire.OverallMatch.Percentage)),
			Assessment: wire.OverallMatch.Assessment,
		},
		SkillMatch: wire.SkillMatch,
	}
	dedupeSkills(&result.SkillMatch)
	return result, nil
}

// DecodeQuestions parses a suggested-question response, accepting either
// {"questions": [...]} or a bare array, capped at limit.
func DecodeQuestions(raw string, limit int) ([]string, error) {
	cleaned := CleanJSON(raw)

	var questions []string
	var wrapped struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil {
		questions = wrapped.Questions
	} else if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("parse questions response: %w", err)
	}

	out := make([]string, 0, len(questions))
	for _, q := range questions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// dedupeSkills keeps each skill in exactly one category. The model has no
// documented tie-break, so matching wins over transferable, which wins over
// missing.
func dedupeSkills(sm *models.SkillMatch) {
	seen := make(map[string]struct{})

	keep := func(entries []models.SkillEntry) []models.SkillEntry {
		out := entries[:0]
		for _, e := range entries {
			key := strings.ToLower(strings.TrimSpace(e.Skill))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, e)
		}
		if out == nil {
			out = []models.SkillEntry{}
		}
		return out
	}

	sm.MatchingSkills = keep(sm.MatchingSkills)
	sm.TransferableSkills = keep(sm.TransferableSkills)
	sm.MissingSkills = keep(sm.MissingSkills)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
