package models

import "encoding/json"

// MatchResult compares a stored resume profile against a job profile.
type MatchResult struct {
	OverallMatch OverallMatch `json:"overall_match"`
	SkillMatch   SkillMatch   `json:"skill_match"`
}

type OverallMatch struct {
	Percentage int    `json:"percentage"` // 0-100
	Assessment string `json:"assessment"`
}

type SkillMatch struct {
	MatchingSkills     []SkillEntry `json:"matching_skills"`
	MissingSkills      []SkillEntry `json:"missing_skills"`
	TransferableSkills []SkillEntry `json:"transferable_skills"`
}

// SkillEntry is either a bare skill name or a {skill, detail} object on the
// wire; the model answers in both shapes depending on the posting.
type SkillEntry struct {
	Skill  string `json:"skill"`
	Detail string `json:"detail,omitempty"`
}

func (e *SkillEntry) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		e.Skill = s
		e.Detail = ""
		return nil
	}
	type entry SkillEntry
	var obj entry
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*e = SkillEntry(obj)
	return nil
}
