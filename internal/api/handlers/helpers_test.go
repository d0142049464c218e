package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/applymate/applymate/internal/api/handlers"
	"github.com/applymate/applymate/internal/api/routes"
	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/storage"
	"github.com/applymate/applymate/internal/store"
)

const pollTimeout = 2 * time.Second

type fakeLLM struct {
	fn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.fn(ctx, prompt)
}

type fakeScraper struct {
	fn func(ctx context.Context, url string) (string, error)
}

func (f *fakeScraper) Scrape(ctx context.Context, url string) (string, error) {
	return f.fn(ctx, url)
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

// scriptedLLM answers every pipeline step of the happy path.
func scriptedLLM() *fakeLLM {
	return &fakeLLM{fn: func(_ context.Context, prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "Analyze this resume"):
			return resumeResponse, nil
		case strings.Contains(prompt, "Analyze this job description"):
			return jobResponse, nil
		case strings.Contains(prompt, "identify matches and gaps"):
			return matchResponse, nil
		case strings.Contains(prompt, "suggest interview questions"):
			return `{"questions": ["Why am I suitable for the Go Developer role?"]}`, nil
		case strings.Contains(prompt, "Your answer:"):
			return "I shipped Go services for five years and can close the Kubernetes gap quickly.", nil
		}
		return "", errors.New("unexpected prompt")
	}}
}

type testEnv struct {
	router *gin.Engine
	store  *store.Store
}

func newTestEnv(t *testing.T, llm *fakeLLM, extract services.TextExtractor) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New()
	sc := &fakeScraper{fn: func(context.Context, string) (string, error) {
		return "Acme is hiring a Go Developer. Remote. 5 years experience with Go and Kubernetes.", nil
	}}
	snapshots := storage.NewFileStore(filepath.Join(t.TempDir(), "personal_resume.json"))

	resumeSvc := services.NewResumeService(st, llm, extract, log, time.Second)
	jobSvc := services.NewJobService(st, sc, llm, log, time.Second, time.Second, time.Second)
	matchSvc := services.NewMatchService(st, llm, log, time.Second)
	questionSvc := services.NewQuestionService(st, llm, log, time.Second)
	personalSvc := services.NewPersonalService(st, snapshots)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Resume:   handlers.NewResumeHandler(resumeSvc),
		Job:      handlers.NewJobHandler(jobSvc),
		Match:    handlers.NewMatchHandler(matchSvc),
		Question: handlers.NewQuestionHandler(questionSvc),
		Session:  handlers.NewSessionHandler(st),
		Personal: handlers.NewPersonalHandler(personalSvc),
	})
	return &testEnv{router: r, store: st}
}

func goodExtract([]byte) (string, error) {
	return "Jane Doe, Senior backend engineer. Go, PostgreSQL, Docker. PrevCo 2019-2024. TU Berlin 2018.", nil
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, http.MethodPost, path, bytes.NewReader(data), "application/json")
}

// uploadResume posts a multipart PDF and returns the recorder.
func (e *testEnv) uploadResume(t *testing.T, filename, sessionID string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	if sessionID != "" {
		require.NoError(t, mw.WriteField("session_id", sessionID))
	}
	require.NoError(t, mw.Close())

	return e.do(t, http.MethodPost, "/resume", &buf, mw.FormDataContentType())
}

// pollUntilDone keeps GETting path while it answers 202.
func (e *testEnv) pollUntilDone(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	var last *httptest.ResponseRecorder
	require.Eventually(t, func() bool {
		last = e.do(t, http.MethodGet, path, nil, "")
		return last.Code != http.StatusAccepted
	}, pollTimeout, 5*time.Millisecond)
	return last
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var fakePDF = []byte("%PDF-1.4 fake resume payload for tests")
