package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/applymate/applymate/internal/analysis"
	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/providers/llm"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

// QuestionService answers interview questions using whatever structured
// context the session has accumulated. Answers are synchronous: generation
// is short enough to return directly.
type QuestionService interface {
	Answer(ctx context.Context, sessionID, question string) (models.QuestionAnswer, error)
}

type questionService struct {
	store     *store.Store
	llm       llm.Provider
	log       *logrus.Logger
	aiTimeout time.Duration
}

func NewQuestionService(st *store.Store, provider llm.Provider, log *logrus.Logger, aiTimeout time.Duration) QuestionService {
	return &questionService{store: st, llm: provider, log: log, aiTimeout: aiTimeout}
}

func (s *questionService) Answer(ctx context.Context, sessionID, question string) (models.QuestionAnswer, error) {
	const op = "QuestionService.Answer"

	question = strings.TrimSpace(question)
	if question == "" {
		return models.QuestionAnswer{}, utils.E(utils.CodeInvalidArgument, op, "question is required", nil)
	}

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.QuestionAnswer{}, utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	// Include only the slots that are ready; the prompt degrades gracefully.
	var resumeJSON, jobJSON, matchJSON string
	if sess.Resume.Ready() {
		resumeJSON = mustJSON(sess.Resume.Value)
	}
	if sess.Job.Ready() {
		jobJSON = mustJSON(sess.Job.Value)
	}
	if sess.Match.Ready() {
		matchJSON = mustJSON(sess.Match.Value)
	}

	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.llm.Generate(ctx, analysis.AnswerPrompt(question, resumeJSON, jobJSON, matchJSON))
	if err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Error("answer generation failed")
		return models.QuestionAnswer{}, utils.E(utils.CodeGenerationFailed, op, "could not generate an answer; retry the question", err)
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return models.QuestionAnswer{}, utils.E(utils.CodeGenerationFailed, op, "could not generate an answer; retry the question", nil)
	}

	qa := models.QuestionAnswer{
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	}
	if err := s.store.AppendAnswer(sessionID, qa); err != nil {
		return models.QuestionAnswer{}, utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	s.log.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"step":        "question",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("question answered")
	return qa, nil
}
