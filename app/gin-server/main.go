package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/applymate/applymate/config"
	"github.com/applymate/applymate/internal/api/handlers"
	"github.com/applymate/applymate/internal/api/middleware"
	"github.com/applymate/applymate/internal/api/routes"
	"github.com/applymate/applymate/internal/extract"
	"github.com/applymate/applymate/internal/logger"
	"github.com/applymate/applymate/internal/providers/llm"
	"github.com/applymate/applymate/internal/providers/scraper"
	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/storage"
	"github.com/applymate/applymate/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	if cfg.GeminiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	gemini, err := llm.NewGemini(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.WithError(err).Fatal("gemini client init")
	}

	sessions := store.New()
	chrome := scraper.NewChrome()
	snapshots := storage.NewFileStore(cfg.PersonalResumePath)

	resumeSvc := services.NewResumeService(sessions, gemini, extract.ResumeText, log, cfg.AITimeout)
	jobSvc := services.NewJobService(sessions, chrome, gemini, log, cfg.ScrapeTimeout, cfg.ScrapeRetryTimeout, cfg.AITimeout)
	matchSvc := services.NewMatchService(sessions, gemini, log, cfg.AITimeout)
	questionSvc := services.NewQuestionService(sessions, gemini, log, cfg.AITimeout)
	personalSvc := services.NewPersonalService(sessions, snapshots)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	routes.RegisterRoutes(r, routes.Deps{
		Resume:   handlers.NewResumeHandler(resumeSvc),
		Job:      handlers.NewJobHandler(jobSvc),
		Match:    handlers.NewMatchHandler(matchSvc),
		Question: handlers.NewQuestionHandler(questionSvc),
		Session:  handlers.NewSessionHandler(sessions),
		Personal: handlers.NewPersonalHandler(personalSvc),
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
