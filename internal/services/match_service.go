package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/applymate/applymate/internal/analysis"
	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/providers/llm"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

const maxSuggestedQuestions = 10

// MatchService compares the stored resume and job profiles and derives the
// suggested interview questions for the pair.
type MatchService interface {
	Start(ctx context.Context, sessionID string) error
	Get(sessionID string) (models.Slot[models.MatchResult], error)
	// Questions returns the suggested question set, deriving it lazily the
	// first time once resume and job are both ready.
	Questions(ctx context.Context, sessionID string) ([]string, error)
}

type matchService struct {
	store     *store.Store
	llm       llm.Provider
	log       *logrus.Logger
	aiTimeout time.Duration
}

func NewMatchService(st *store.Store, provider llm.Provider, log *logrus.Logger, aiTimeout time.Duration) MatchService {
	return &matchService{store: st, llm: provider, log: log, aiTimeout: aiTimeout}
}

func (s *matchService) Start(ctx context.Context, sessionID string) error {
	const op = "MatchService.Start"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	if !sess.Resume.Ready() {
		return utils.E(utils.CodeFailedPrecondition, op, "resume must be processed before matching", nil)
	}
	if !sess.Job.Ready() {
		return utils.E(utils.CodeFailedPrecondition, op, "job must be processed before matching", nil)
	}

	if err := s.store.StartMatch(sessionID); err != nil {
		if errors.Is(err, store.ErrSlotPending) {
			return utils.E(utils.CodeFailedPrecondition, op, "matching already in progress", err)
		}
		return utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	go s.run(sessionID, sess.Resume.Value, sess.Job.Value)
	return nil
}

func (s *matchService) Get(sessionID string) (models.Slot[models.MatchResult], error) {
	const op = "MatchService.Get"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.Slot[models.MatchResult]{}, utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	return sess.Match, nil
}

func (s *matchService) Questions(ctx context.Context, sessionID string) ([]string, error) {
	const op = "MatchService.Questions"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	if len(sess.SuggestedQuestions) > 0 {
		return sess.SuggestedQuestions, nil
	}
	if !sess.Resume.Ready() || !sess.Job.Ready() {
		return nil, utils.E(utils.CodeFailedPrecondition, op, "resume and job must be processed before suggested questions", nil)
	}

	questions, err := s.deriveQuestions(ctx, sess.Resume.Value, sess.Job.Value)
	if err != nil {
		return nil, utils.E(utils.CodeGenerationFailed, op, "could not derive suggested questions", err)
	}
	stored, err := s.store.SetSuggestedQuestions(sessionID, questions)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	return stored, nil
}

func (s *matchService) run(sessionID string, resume *models.ResumeProfile, job *models.JobProfile) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"session_id": sessionID, "step": "match"})

	ctx, cancel := context.WithTimeout(context.Background(), s.aiTimeout)
	defer cancel()

	raw, err := s.llm.Generate(ctx, analysis.MatchPrompt(mustJSON(resume), mustJSON(job)))
	if err != nil {
		log.WithError(err).Error("match call failed")
		s.store.FinishMatch(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"skill matching failed; resubmit to retry"))
		return
	}

	result, err := analysis.DecodeMatchResult(raw)
	if err != nil {
		log.WithError(err).Error("match returned malformed output")
		s.store.FinishMatch(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"skill matching returned malformed output; resubmit to retry"))
		return
	}

	s.store.FinishMatch(sessionID, result, nil)
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("match ready")

	// Derive the question set alongside matching so it is already there on
	// the first /questions poll. Set-if-empty keeps this idempotent.
	qctx, qcancel := context.WithTimeout(context.Background(), s.aiTimeout)
	defer qcancel()
	questions, err := s.deriveQuestions(qctx, resume, job)
	if err != nil {
		log.WithError(err).Warn("suggested question derivation failed, keeping defaults")
		questions = analysis.DefaultQuestions(job.JobTitle, job.CompanyName)
	}
	if _, err := s.store.SetSuggestedQuestions(sessionID, questions); err != nil {
		log.WithError(err).Debug("session gone before questions stored")
	}
}

func (s *matchService) deriveQuestions(ctx context.Context, resume *models.ResumeProfile, job *models.JobProfile) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	raw, err := s.llm.Generate(ctx, analysis.QuestionsPrompt(mustJSON(resume), mustJSON(job)))
	if err != nil {
		return nil, err
	}
	questions, err := analysis.DecodeQuestions(raw, maxSuggestedQuestions)
	if err != nil || len(questions) == 0 {
		return analysis.DefaultQuestions(job.JobTitle, job.CompanyName), nil
	}
	return questions, nil
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
