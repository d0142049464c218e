package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/applymate/applymate/internal/analysis"
	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/providers/llm"
	"github.com/applymate/applymate/internal/providers/scraper"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

// JobService runs the job pipeline: rendered-page scraping and AI structuring.
type JobService interface {
	Analyze(ctx context.Context, sessionID, jobURL string) error
	Get(sessionID string) (models.Slot[models.JobProfile], error)
}

type jobService struct {
	store   *store.Store
	scraper scraper.Scraper
	llm     llm.Provider
	log     *logrus.Logger

	scrapeTimeout time.Duration // first attempt
	retryTimeout  time.Duration // single retry, longer page-load budget
	aiTimeout     time.Duration
}

func NewJobService(st *store.Store, sc scraper.Scraper, provider llm.Provider, log *logrus.Logger, scrapeTimeout, retryTimeout, aiTimeout time.Duration) JobService {
	return &jobService{
		store:         st,
		scraper:       sc,
		llm:           provider,
		log:           log,
		scrapeTimeout: scrapeTimeout,
		retryTimeout:  retryTimeout,
		aiTimeout:     aiTimeout,
	}
}

func (s *jobService) Analyze(ctx context.Context, sessionID, jobURL string) error {
	const op = "JobService.Analyze"

	parsed, err := url.Parse(jobURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return utils.E(utils.CodeInvalidArgument, op, "url must be a valid http(s) address", err)
	}

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	// Ordering guard: a hostile or buggy client may call out of order.
	if !sess.Resume.Ready() {
		return utils.E(utils.CodeFailedPrecondition, op, "resume must be processed before job analysis", nil)
	}

	if err := s.store.StartJob(sessionID); err != nil {
		if errors.Is(err, store.ErrSlotPending) {
			return utils.E(utils.CodeFailedPrecondition, op, "job analysis already in progress", err)
		}
		return utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	go s.run(sessionID, jobURL)
	return nil
}

func (s *jobService) Get(sessionID string) (models.Slot[models.JobProfile], error) {
	const op = "JobService.Get"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.Slot[models.JobProfile]{}, utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	return sess.Job, nil
}

func (s *jobService) run(sessionID, jobURL string) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"session_id": sessionID, "step": "job", "url": jobURL})

	text, err := s.scrape(jobURL)
	if err != nil {
		log.WithError(err).Error("job page scrape failed after retry")
		s.store.FinishJob(sessionID, nil, failure(utils.CodeScrapeFailed,
			"could not fetch the job posting; check the URL and retry"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.aiTimeout)
	defer cancel()

	raw, err := s.llm.Generate(ctx, analysis.JobPrompt(text))
	if err != nil {
		log.WithError(err).Error("job structuring call failed")
		s.store.FinishJob(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"job analysis failed; resubmit to retry"))
		return
	}

	// No retry on structuring: a malformed response is a schema problem,
	// not a transient one. The caller may rerun the whole operation.
	profile, err := analysis.DecodeJobProfile(raw)
	if err != nil {
		log.WithError(err).Error("job structuring returned malformed output")
		s.store.FinishJob(sessionID, nil, failure(utils.CodeAnalysisFailed,
			"job analysis returned malformed output; resubmit to retry"))
		return
	}

	s.store.FinishJob(sessionID, profile, nil)
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("job analysis ready")
}

func (s *jobService) scrape(jobURL string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.scrapeTimeout)
	text, err := s.scraper.Scrape(ctx, jobURL)
	cancel()
	if err == nil {
		return text, nil
	}
	s.log.WithError(err).WithField("url", jobURL).Warn("scrape failed, retrying with longer timeout")

	ctx, cancel = context.WithTimeout(context.Background(), s.retryTimeout)
	defer cancel()
	return s.scraper.Scrape(ctx, jobURL)
}
