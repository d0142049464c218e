package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/utils"
)

type PersonalHandler struct {
	svc services.PersonalService
}

func NewPersonalHandler(svc services.PersonalService) *PersonalHandler {
	return &PersonalHandler{svc: svc}
}

type SavePersonalRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (h *PersonalHandler) Save(c *gin.Context) {
	var req SavePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PersonalHandler.Save", "session_id is required", err))
		return
	}

	if err := h.svc.Save(req.SessionID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "personal resume saved"})
}

// Load restores the snapshot into a brand-new session whose resume slot is
// already ready, so the job pipeline can start immediately.
func (h *PersonalHandler) Load(c *gin.Context) {
	sess, err := h.svc.Load()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"resume":     sess.Resume.Value,
	})
}
