package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/utils"
)

type QuestionHandler struct {
	svc services.QuestionService
}

func NewQuestionHandler(svc services.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

type QuestionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Question  string `json:"question" binding:"required"`
}

func (h *QuestionHandler) Answer(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "QuestionHandler.Answer", "session_id and question are required", err))
		return
	}

	qa, err := h.svc.Answer(c.Request.Context(), req.SessionID, req.Question)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"question":   qa.Question,
		"answer":     qa.Answer,
	})
}
