package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// writeSlot maps a slot snapshot onto the polling contract: 202 while
// pending, 200 with the value when ready, and the failure's own status when
// failed. Absent means nothing was ever submitted for this session.
func writeSlot[T any](c *gin.Context, sessionID string, slot models.Slot[T], pendingMsg, absentMsg string) {
	switch slot.State {
	case models.SlotPending:
		c.JSON(http.StatusAccepted, gin.H{"session_id": sessionID, "status": "processing", "message": pendingMsg})
	case models.SlotReady:
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "status": "ready", "result": slot.Value})
	case models.SlotFailed:
		c.JSON(utils.StatusOf(slot.Failure.Code), APIError{
			Code:    slot.Failure.Code,
			Message: slot.Failure.Message,
		})
	default:
		writeError(c, utils.E(utils.CodeNotFound, "Polling", absentMsg, nil))
	}
}
