package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/utils"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

type MatchRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (h *MatchHandler) Start(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MatchHandler.Start", "session_id is required", err))
		return
	}

	if err := h.svc.Start(c.Request.Context(), req.SessionID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"session_id": req.SessionID,
		"status":     "processing",
		"message":    "skill matching is being processed; poll GET /match/{session_id}",
	})
}

func (h *MatchHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	slot, err := h.svc.Get(sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSlot(c, sessionID, slot, "skill matching is still being processed", "no match requested for this session")
}

func (h *MatchHandler) Questions(c *gin.Context) {
	sessionID := c.Param("session_id")

	questions, err := h.svc.Questions(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "questions": questions})
}
