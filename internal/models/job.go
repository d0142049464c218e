package models

// JobProfile is the fixed schema extracted from a scraped job posting.
type JobProfile struct {
	CompanyName           string   `json:"company_name"`
	JobTitle              string   `json:"job_title"`
	JobLocation           string   `json:"job_location"`
	RequiredExperience    string   `json:"required_experience"`
	TechnicalSkills       []string `json:"technical_skills"`
	SoftSkills            []string `json:"soft_skills"`
	EducationRequirements []string `json:"education_requirements"`
	Responsibilities      []string `json:"responsibilities"`
	ExecutiveSummary      string   `json:"executive_summary"`
	ApplicationAdvice     string   `json:"application_advice"`
}
