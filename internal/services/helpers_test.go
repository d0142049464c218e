package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/applymate/applymate/internal/models"
)

const testTimeout = 2 * time.Second

// fakeLLM lets each test script the model with a plain function.
type fakeLLM struct {
	fn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.fn(ctx, prompt)
}

// routedLLM dispatches on the prompt markers of the four pipeline steps, so
// one fake can serve a full session flow.
func routedLLM(resume, job, match, questions, answer string) *fakeLLM {
	return &fakeLLM{fn: func(_ context.Context, prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "Analyze this resume"):
			return resume, nil
		case strings.Contains(prompt, "Analyze this job description"):
			return job, nil
		case strings.Contains(prompt, "identify matches and gaps"):
			return match, nil
		case strings.Contains(prompt, "suggest interview questions"):
			return questions, nil
		case strings.Contains(prompt, "Your answer:"):
			return answer, nil
		}
		return "", errors.New("unexpected prompt")
	}}
}

type fakeScraper struct {
	fn func(ctx context.Context, url string) (string, error)
}

func (f *fakeScraper) Scrape(ctx context.Context, url string) (string, error) {
	return f.fn(ctx, url)
}

func goodExtractor(text string) TextExtractor {
	return func([]byte) (string, error) { return text, nil }
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

const resumeResponse = `{
	"personal_info": {"name": "Jane Doe", "email": "jane@example.com", "phone": "555-0100", "location": "Berlin"},
	"summary": "Senior backend engineer with a focus on distributed systems.",
	"skills": {"technical": ["Go", "PostgreSQL", "Docker"], "soft": ["communication"]},
	"experience": [{"title": "Senior Engineer", "company": "PrevCo", "duration": "2019 - 2024", "description": "built services"}],
	"education": [{"degree": "BSc Computer Science", "institution": "TU Berlin", "graduation_date": "2018"}],
	"ats_score": {"overall": 88, "formatting": 90, "keyword_optimization": 80, "content_quality": 85}
}`

const jobResponse = `{
	"company_name": "Acme",
	"job_title": "Go Developer",
	"job_location": "Remote",
	"required_experience": "5 years",
	"technical_skills": ["Go", "Kubernetes"],
	"soft_skills": ["teamwork"],
	"education_requirements": ["BSc or equivalent"],
	"responsibilities": ["build backend services"],
	"executive_summary": "Backend role on the platform team.",
	"application_advice": "Lead with distributed systems experience."
}`

const matchResponse = `{
	"overall_match": {"percentage": 82, "assessment": "strong fit"},
	"skill_match": {
		"matching_skills": [{"skill": "Go", "detail": "5 years at PrevCo"}],
		"missing_skills": [{"skill": "Kubernetes", "detail": "required for deployments"}],
		"transferable_skills": [{"skill": "Docker", "detail": "container basics carry over"}]
	}
}`

const questionsResponse = `{"questions": ["Why am I suitable for the Go Developer role?", "How would I close my Kubernetes gap?"]}`

// waitSlot polls until the slot leaves pending, mirroring the client contract.
func waitSlot[T any](t *testing.T, get func() (models.Slot[T], error)) models.Slot[T] {
	t.Helper()

	var slot models.Slot[T]
	require.Eventually(t, func() bool {
		s, err := get()
		if err != nil {
			return false
		}
		slot = s
		return slot.State != models.SlotPending && slot.State != models.SlotAbsent
	}, testTimeout, 5*time.Millisecond)
	return slot
}
