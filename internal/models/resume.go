package models

// ResumeProfile is the fixed schema the structuring step must conform to.
// Every field is optional on the wire; decoding coerces absent collections to
// empty so stored profiles always carry all top-level keys.
type ResumeProfile struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Skills       SkillSet     `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	ATSScore     ATSScore     `json:"ats_score"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date"`
}

// ATSScore rates the resume for applicant tracking systems, each axis 0-100.
type ATSScore struct {
	Overall             int `json:"overall"`
	Formatting          int `json:"formatting"`
	KeywordOptimization int `json:"keyword_optimization"`
	ContentQuality      int `json:"content_quality"`
}
