package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/applymate/applymate/internal/services"
	"github.com/applymate/applymate/internal/utils"
)

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Upload accepts the multipart PDF, kicks off the pipeline, and returns the
// session id right away; clients poll Get for the result.
func (h *ResumeHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("resume_file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "missing multipart field 'resume_file'", err))
		return
	}

	// basic validation
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > services.MaxResumeBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.Upload", "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxResumeBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.Upload", "failed to read upload", err))
		return
	}

	// sniff content type so a renamed file does not reach the extractor
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if ct := http.DetectContentType(bytes.TrimLeft(head, "\r\n \t")); ct != "application/pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "invalid content type (must be pdf)", nil))
		return
	}

	sessionID, err := h.svc.Analyze(c.Request.Context(), c.PostForm("session_id"), data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"session_id": sessionID,
		"status":     "processing",
		"message":    "resume is being processed; poll GET /resume/{session_id}",
	})
}

func (h *ResumeHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	slot, err := h.svc.Get(sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSlot(c, sessionID, slot, "resume is still being processed", "no resume submitted for this session")
}
