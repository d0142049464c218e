package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

func readyPairSession(t *testing.T, st *store.Store) string {
	t.Helper()

	sess := st.PutReadyResume(models.ResumeProfile{
		Summary: "Senior backend engineer",
		Skills:  models.SkillSet{Technical: []string{"Go", "Docker"}},
	})
	require.NoError(t, st.StartJob(sess.ID))
	st.FinishJob(sess.ID, &models.JobProfile{
		CompanyName:     "Acme",
		JobTitle:        "Go Developer",
		TechnicalSkills: []string{"Go", "Kubernetes"},
	}, nil)
	return sess.ID
}

func TestMatchHappyPath(t *testing.T) {
	st := store.New()
	sessionID := readyPairSession(t, st)
	svc := NewMatchService(st, routedLLM("", "", matchResponse, questionsResponse, ""), testLogger(), time.Second)

	require.NoError(t, svc.Start(context.Background(), sessionID))

	slot := waitSlot(t, func() (models.Slot[models.MatchResult], error) { return svc.Get(sessionID) })
	require.True(t, slot.Ready())
	assert.Equal(t, 82, slot.Value.OverallMatch.Percentage)
	require.Len(t, slot.Value.SkillMatch.MatchingSkills, 1)
	assert.Equal(t, "Go", slot.Value.SkillMatch.MatchingSkills[0].Skill)

	// questions were derived alongside the match
	questions, err := svc.Questions(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Contains(t, questions[0], "Go Developer")
}

func TestMatchRequiresBothSlotsReady(t *testing.T) {
	st := store.New()
	svc := NewMatchService(st, &fakeLLM{}, testLogger(), time.Second)

	// resume absent
	sess := st.Create()
	err := svc.Start(context.Background(), sess.ID)
	assert.True(t, utils.IsCode(err, utils.CodeFailedPrecondition))

	// resume ready, job absent
	ready := st.PutReadyResume(models.ResumeProfile{})
	err = svc.Start(context.Background(), ready.ID)
	assert.True(t, utils.IsCode(err, utils.CodeFailedPrecondition))
}

func TestMatchUnknownSession(t *testing.T) {
	st := store.New()
	svc := NewMatchService(st, &fakeLLM{}, testLogger(), time.Second)

	err := svc.Start(context.Background(), "nope")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Questions(context.Background(), "nope")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestMatchModelFailureFailsSlot(t *testing.T) {
	st := store.New()
	sessionID := readyPairSession(t, st)
	llm := &fakeLLM{fn: func(context.Context, string) (string, error) { return "", errors.New("model down") }}
	svc := NewMatchService(st, llm, testLogger(), time.Second)

	require.NoError(t, svc.Start(context.Background(), sessionID))

	slot := waitSlot(t, func() (models.Slot[models.MatchResult], error) { return svc.Get(sessionID) })
	require.Equal(t, models.SlotFailed, slot.State)
	assert.Equal(t, utils.CodeAnalysisFailed, slot.Failure.Code)
}

func TestQuestionsRequireReadyPair(t *testing.T) {
	st := store.New()
	sess := st.Create()
	svc := NewMatchService(st, &fakeLLM{}, testLogger(), time.Second)

	_, err := svc.Questions(context.Background(), sess.ID)
	assert.True(t, utils.IsCode(err, utils.CodeFailedPrecondition))
}

func TestQuestionsDerivedLazilyAndIdempotent(t *testing.T) {
	st := store.New()
	sessionID := readyPairSession(t, st)

	calls := 0
	llm := &fakeLLM{fn: func(_ context.Context, prompt string) (string, error) {
		calls++
		return questionsResponse, nil
	}}
	svc := NewMatchService(st, llm, testLogger(), time.Second)

	first, err := svc.Questions(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// the stored set is served without another model call
	second, err := svc.Questions(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestQuestionsFallBackToDefaults(t *testing.T) {
	st := store.New()
	sessionID := readyPairSession(t, st)
	llm := &fakeLLM{fn: func(context.Context, string) (string, error) { return "{}", nil }}
	svc := NewMatchService(st, llm, testLogger(), time.Second)

	questions, err := svc.Questions(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, questions, 5)
	assert.Contains(t, questions[0], "Go Developer")
	assert.Contains(t, questions[1], "Acme")
}
