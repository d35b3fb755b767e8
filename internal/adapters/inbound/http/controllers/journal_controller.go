package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
)

type JournalController struct {
	useCase portsin.ListJournalEntriesUseCase
	logger  zerolog.Logger
}

func NewJournalController(useCase portsin.ListJournalEntriesUseCase, logger zerolog.Logger) *JournalController {
	return &JournalController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *JournalController) ListEntries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeAppError(w, apperrors.NewValidation(
				"invalid_limit",
				"limit must be an integer",
				map[string]any{"field": "limit", "limit": raw},
			))
			return
		}
		limit = parsed
	}

	output, appErr := c.useCase.Execute(r.Context(), dto.ListJournalEntriesQuery{Limit: limit})
	if appErr != nil {
		logRequestError(c.logger, r, "/v1/journal", appErr)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
