package analysis

import (
	"fmt"
	"strings"
)

// MaxPromptChars bounds how much raw document text is fed to the model.
const MaxPromptChars = 12000

// Truncate caps s at max characters for prompt assembly.
func Truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// ResumePrompt asks the model to structure raw resume text into the
// ResumeProfile schema. Only the shape is contracted, never the content.
func ResumePrompt(text string) string {
	return fmt.Sprintf(`Analyze this resume and extract key information in EXACTLY this format.

Resume Text:
%s

STRICT OUTPUT FORMAT (Return ONLY this JSON object):
{
  "personal_info": {"name": "Full Name", "email": "email@example.com", "phone": "phone number", "location": "City, State"},
  "summary": "Professional summary",
  "skills": {"technical": ["skill1", "skill2"], "soft": ["skill1", "skill2"]},
  "experience": [{"title": "Job Title", "company": "Company Name", "duration": "Start Date - End Date", "description": "what the candidate did"}],
  "education": [{"degree": "Degree Name", "institution": "Institution Name", "graduation_date": "Graduation Date"}],
  "ats_score": {"overall": 0, "formatting": 0, "keyword_optimization": 0, "content_quality": 0}
}

STRICT RULES:
1. Return ONLY the JSON object, no other text or markdown
2. ALL keys must be present in the response
3. Extract ALL skills mentioned in the resume and categorize them as technical or soft
4. Include ALL job positions and ALL degrees
5. ats_score values are integers from 0 to 100 rating the resume for applicant tracking systems
6. Use empty strings or empty arrays when the resume does not mention a field`, Truncate(text, MaxPromptChars))
}

// JobPrompt asks the model to structure scraped posting text into the
// JobProfile schema.
func JobPrompt(text string) string {
	return fmt.Sprintf(`Analyze this job description and extract key information in EXACTLY this format.

Job Description:
%s

STRICT OUTPUT FORMAT (Return ONLY this JSON object):
{
  "company_name": "Company Name",
  "job_title": "Job Title",
  "job_location": "City, State or Remote",
  "required_experience": "X years",
  "technical_skills": ["skill1", "skill2"],
  "soft_skills": ["skill1", "skill2"],
  "education_requirements": ["requirement1", "requirement2"],
  "responsibilities": ["responsibility1", "responsibility2"],
  "executive_summary": "two or three sentence summary of the role",
  "application_advice": "short advice for an applicant to this role"
}

STRICT RULES:
1. Return ONLY the JSON object, no other text or markdown
2. ALL keys must be present in the response
3. technical_skills lists the technologies and tools mentioned; soft_skills the competencies
4. Use empty strings or empty arrays when the posting does not mention a field`, Truncate(text, MaxPromptChars))
}

// MatchPrompt asks the model to compare the two structured profiles.
func MatchPrompt(resumeJSON, jobJSON string) string {
	return fmt.Sprintf(`Compare the candidate's resume profile with the job profile and identify matches and gaps.

Resume Profile:
%s

Job Profile:
%s

STRICT OUTPUT FORMAT (Return ONLY this JSON object):
{
  "overall_match": {"percentage": 85, "assessment": "short assessment of the fit"},
  "skill_match": {
    "matching_skills": [{"skill": "skill name", "detail": "where it shows in the resume"}],
    "missing_skills": [{"skill": "skill name", "detail": "why the job needs it"}],
    "transferable_skills": [{"skill": "skill name", "detail": "how it transfers"}]
  }
}

STRICT RULES:
1. Return ONLY the JSON object, no other text or markdown
2. ALL keys must be present in the response
3. percentage is an integer from 0 to 100
4. A skill belongs to exactly one of matching, missing, or transferable
5. Be specific and base every entry on the provided profiles`, resumeJSON, jobJSON)
}

// QuestionsPrompt derives interview questions an applicant should prepare for.
func QuestionsPrompt(resumeJSON, jobJSON string) string {
	return fmt.Sprintf(`Given the candidate's resume profile and the job profile below, suggest interview questions the candidate should prepare answers for.

Resume Profile:
%s

Job Profile:
%s

STRICT OUTPUT FORMAT (Return ONLY this JSON object):
{"questions": ["question1", "question2"]}

STRICT RULES:
1. Return ONLY the JSON object, no other text or markdown
2. Between 3 and 10 questions, each phrased from the candidate's point of view, for example "Why am I suitable for this role?"
3. Tailor the questions to the gaps and strengths visible in the profiles`, resumeJSON, jobJSON)
}

// AnswerPrompt builds the generation prompt from whatever context is ready.
// Missing sections are simply omitted; the answerer degrades gracefully.
func AnswerPrompt(question, resumeJSON, jobJSON, matchJSON string) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant helping a job applicant prepare for their interview.\n")

	if resumeJSON != "" {
		b.WriteString("\nResume Profile:\n")
		b.WriteString(resumeJSON)
		b.WriteString("\n")
	}
	if jobJSON != "" {
		b.WriteString("\nJob Profile:\n")
		b.WriteString(jobJSON)
		b.WriteString("\n")
	}
	if matchJSON != "" {
		b.WriteString("\nSkill Match Analysis:\n")
		b.WriteString(matchJSON)
		b.WriteString("\n")
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString(`

Provide a concise, attention-grabbing answer that sounds natural and human-written.
Keep the response brief (3-5 sentences) but make sure it directly answers the question.
Use simple, plain English and avoid corporate jargon or overly formal language.
Do not mention that you are an AI or that you are using any provided information.
Write as if you are the job applicant speaking in first person.

Your answer:`)
	return b.String()
}

// DefaultQuestions is the fallback set when the model yields none.
func DefaultQuestions(jobTitle, companyName string) []string {
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = "this role"
	}
	if strings.TrimSpace(companyName) == "" {
		companyName = "this company"
	}
	return []string{
		fmt.Sprintf("Why am I suitable for the %s position?", jobTitle),
		fmt.Sprintf("Why do I want to join %s?", companyName),
		fmt.Sprintf("How do my skills align with %s's goals?", companyName),
		fmt.Sprintf("What relevant experience do I have for the %s position?", jobTitle),
		fmt.Sprintf("What makes me stand out from other candidates for this %s role?", jobTitle),
	}
}
