package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// Delete discards the session. In-flight background work for it finishes
// against the discarded record and is garbage collected with it.
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.store.Delete(sessionID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(c, utils.E(utils.CodeNotFound, "SessionHandler.Delete", "session not found", err))
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session " + sessionID + " deleted successfully"})
}
