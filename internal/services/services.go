package services

import (
	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/utils"
)

// TextExtractor turns uploaded file bytes into plain text.
type TextExtractor func(data []byte) (string, error)

func failure(code utils.Code, message string) *models.Failure {
	return &models.Failure{Code: code, Message: message}
}
