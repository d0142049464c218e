package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/api/handlers"
)

type Deps struct {
	Resume   *handlers.ResumeHandler
	Job      *handlers.JobHandler
	Match    *handlers.MatchHandler
	Question *handlers.QuestionHandler
	Session  *handlers.SessionHandler
	Personal *handlers.PersonalHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"api_version": "1.0",
			"message":     "job application assistant API",
		})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/resume", d.Resume.Upload)
	r.GET("/resume/:session_id", d.Resume.Get)

	r.POST("/job", d.Job.Analyze)
	r.GET("/job/:session_id", d.Job.Get)

	r.POST("/match", d.Match.Start)
	r.GET("/match/:session_id", d.Match.Get)
	r.GET("/questions/:session_id", d.Match.Questions)

	r.POST("/question", d.Question.Answer)

	r.DELETE("/session/:session_id", d.Session.Delete)

	r.POST("/save_personal_resume", d.Personal.Save)
	r.GET("/personal_resume", d.Personal.Load)
}
