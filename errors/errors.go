package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/pkg/runcontext"
)

// AppError is the error type returned to HTTP clients
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

func (e AppError) Unwrap() error { return e.Raw }

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrPayloadTooLarge(limitMB int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_PAYLOAD_TOO_LARGE,
		Message:  "Uploaded file is too large",
	}.WithDetail("limit_mb", fmt.Sprintf("%d", limitMB))
}

// Pipeline Errors
func ErrNoContext() AppError {
	return AppError{
		HTTPCode: http.StatusPreconditionFailed,
		Code:     ErrorCode_NO_CONTEXT,
		Message:  "No transcript available yet",
	}
}

func ErrBusy() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_BUSY,
		Message:  "A request is already pending",
	}
}

func ErrUnknownTemplate(templateID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_UNKNOWN_TEMPLATE,
		Message:  "Template not found",
	}.WithDetail("template_id", templateID)
}

func ErrSessionNotFound(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_SESSION_NOT_FOUND,
		Message:  "Chat session not found",
	}.WithDetail("session_id", sessionID)
}

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

func ErrAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_ANALYSIS_FAILED,
		Message:  "AI analysis failed",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrServiceUnavailable(service string) AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_SERVICE_UNAVAILABLE,
		Message:  "Service temporarily unavailable",
	}.WithDetail("service", service)
}

// FromDomain maps a domain error onto the AppError returned to clients.
// An AppError passes through unchanged; anything unrecognised is internal.
func FromDomain(err error) AppError {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var (
		unknownTemplate *entities.UnknownTemplateError
		transcription   *entities.TranscriptionError
		analysis        *entities.AnalysisError
	)

	switch {
	case stdErrors.Is(err, entities.ErrInvalidInput):
		return AppError{
			Raw:      err,
			HTTPCode: http.StatusBadRequest,
			Code:     ErrorCode_INVALID_ARGUMENT,
			Message:  "Invalid argument",
		}
	case stdErrors.Is(err, entities.ErrNoContext):
		return ErrNoContext()
	case stdErrors.Is(err, entities.ErrBusy):
		return ErrBusy()
	case stdErrors.As(err, &unknownTemplate):
		return ErrUnknownTemplate(unknownTemplate.ID)
	case stdErrors.Is(err, entities.ErrSessionNotFound):
		return AppError{
			HTTPCode: http.StatusNotFound,
			Code:     ErrorCode_SESSION_NOT_FOUND,
			Message:  "Chat session not found",
		}
	case stdErrors.As(err, &transcription):
		return withTransient(ErrTranscriptionFailed(err), err)
	case stdErrors.As(err, &analysis):
		return withTransient(ErrAnalysisFailed(err), err).WithDetail("kind", analysis.Kind)
	}
	return ErrInternal(err)
}

func withTransient(appErr AppError, err error) AppError {
	if runcontext.IsTransientError(err) {
		return appErr.WithDetail("retryable", "true")
	}
	return appErr
}
