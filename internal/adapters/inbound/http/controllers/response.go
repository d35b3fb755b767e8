package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusFor(appErr *apperrors.AppError) int {
	switch appErr.Type {
	case apperrors.TypeValidation:
		return http.StatusBadRequest
	case apperrors.TypeNotFound:
		return http.StatusNotFound
	case apperrors.TypeConflict:
		return http.StatusConflict
	case apperrors.TypeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case apperrors.TypeSubmission:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeAppError(w http.ResponseWriter, appErr *apperrors.AppError) {
	writeJSON(w, statusFor(appErr), errorResponse{
		Error: errorEnvelope{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

func logRequestError(logger zerolog.Logger, r *http.Request, path string, appErr *apperrors.AppError) {
	event := logger.Warn()
	if statusFor(appErr) >= http.StatusInternalServerError {
		event = logger.Error()
	}

	event.
		Str("path", path).
		Str("method", r.Method).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("code", appErr.Code).
		Str("error", appErr.Message).
		Msg("request error")
}

func decodeSingleObject(body io.Reader, target any) *apperrors.AppError {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	return nil
}
