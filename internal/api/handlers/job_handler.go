package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type JobRequest struct {
	URL       string `json:"url" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

func (h *JobHandler) Analyze(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Analyze", "url and session_id are required", err))
		return
	}

	if err := h.svc.Analyze(c.Request.Context(), req.SessionID, req.URL); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"session_id": req.SessionID,
		"status":     "processing",
		"message":    "job posting is being processed; poll GET /job/{session_id}",
	})
}

func (h *JobHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	slot, err := h.svc.Get(sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSlot(c, sessionID, slot, "job posting is still being processed", "no job submitted for this session")
}
