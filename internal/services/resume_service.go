package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/applymate/applymate/internal/analysis"
	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/providers/llm"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

// MaxResumeBytes caps uploads; the handler and the service enforce the same
// limit.
const MaxResumeBytes = 10 << 20

// ResumeService runs the resume pipeline: PDF text extraction, AI
// structuring, and the slot transitions the polling contract observes.
type ResumeService interface {
	// Analyze accepts the upload, transitions the resume slot to pending,
	// and returns the session id immediately; the slow work runs detached.
	Analyze(ctx context.Context, sessionID string, data []byte) (string, error)
	Get(sessionID string) (models.Slot[models.ResumeProfile], error)
}

type resumeService struct {
	store       *store.Store
	llm         llm.Provider
	extractText TextExtractor
	log         *logrus.Logger
	aiTimeout   time.Duration
}

func NewResumeService(st *store.Store, provider llm.Provider, extractText TextExtractor, log *logrus.Logger, aiTimeout time.Duration) ResumeService {
	return &resumeService{
		store:       st,
		llm:         provider,
		extractText: extractText,
		log:         log,
		aiTimeout:   aiTimeout,
	}
}

func (s *resumeService) Analyze(ctx context.Context, sessionID string, data []byte) (string, error) {
	const op = "ResumeService.Analyze"

	if len(data) == 0 {
		return "", utils.E(utils.CodeInvalidArgument, op, "resume file is empty", nil)
	}
	if len(data) > MaxResumeBytes {
		return "", utils.E(utils.CodeInvalidArgument, op, "resume file too large (max 10MB)", nil)
	}

	if sessionID == "" {
		sess := s.store.Create()
		sessionID = sess.ID
	} else if _, err := s.store.Get(sessionID); err != nil {
		return "", utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	if err := s.store.StartResume(sessionID); err != nil {
		if errors.Is(err, store.ErrSlotPending) {
			return "", utils.E(utils.CodeFailedPrecondition, op, "resume analysis already in progress", err)
		}
		return "", utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	go s.run(sessionID, data)
	return sessionID, nil
}

func (s *resumeService) Get(sessionID string) (models.Slot[models.ResumeProfile], error) {
	const op = "ResumeService.Get"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.Slot[models.ResumeProfile]{}, utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	return sess.Resume, nil
}

func (s *resumeService) run(sessionID string, data []byte) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"session_id": sessionID, "step": "resume"})

	// Short resumes are legitimate; only a file that yields no text at all
	// is unreadable.
	text, err := s.extractText(data)
	if err != nil || strings.TrimSpace(text) == "" {
		log.WithError(err).Warn("resume text extraction yielded no usable text")
		s.store.FinishResume(sessionID, nil, failure(utils.CodeUnreadablePDF,
			"could not extract readable text from the PDF; try a different file"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.aiTimeout)
	defer cancel()

	raw, err := s.llm.Generate(ctx, analysis.ResumePrompt(text))
	if err != nil {
		log.WithError(err).Error("resume structuring call failed")
		s.store.FinishResume(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"resume analysis failed; resubmit to retry"))
		return
	}

	profile, err := analysis.DecodeResumeProfile(raw)
	if err != nil {
		log.WithError(err).Error("resume structuring returned malformed output")
		s.store.FinishResume(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"resume analysis returned malformed output; resubmit to retry"))
		return
	}

	s.store.FinishResume(sessionID, profile, nil)
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("resume analysis ready")
}
