package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnreadablePDF      Code = "UNREADABLE_PDF"
	CodeScrapeFailed       Code = "SCRAPE_FAILED"
	CodeAnalysisFailed     Code = "ANALYSIS_FAILED"
	CodeGenerationFailed   Code = "GENERATION_FAILED"
	CodeTimeout            Code = "TIMEOUT"
	CodeInternal           Code = "INTERNAL"
)

// AppError is the unified error contract across layers.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "ResumeService.Analyze"
	Message string // safe message
	Err     error  // wrapped error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "error"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Detail extracts the code and safe message for storing in a failed slot.
func Detail(err error) (Code, string) {
	var ae *AppError
	if errors.As(err, &ae) {
		msg := ae.Message
		if msg == "" {
			msg = http.StatusText(StatusOf(ae.Code))
		}
		return ae.Code, msg
	}
	return CodeInternal, "internal error"
}

func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return StatusOf(ae.Code)
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// StatusOf maps a domain code to the HTTP status the polling contract promises:
// 4xx means retry with different input, 5xx means the upstream step failed.
func StatusOf(code Code) int {
	switch code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeFailedPrecondition:
		return http.StatusConflict
	case CodeUnreadablePDF:
		return http.StatusUnprocessableEntity
	case CodeScrapeFailed, CodeAnalysisFailed, CodeGenerationFailed:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Backward-compatible sentinel errors
var (
	ErrNotFound = errors.New("not found")
)
