package controllers

import (
	"net/http"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"

	"github.com/rs/zerolog"
)

type HealthController struct {
	useCase portsin.GetHealthUseCase
	logger  zerolog.Logger
}

func NewHealthController(useCase portsin.GetHealthUseCase, logger zerolog.Logger) *HealthController {
	return &HealthController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *HealthController) GetHealth(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.useCase.Execute(r.Context(), dto.GetHealthCommand{})
	if appErr != nil {
		logRequestError(c.logger, r, "/healthz", appErr)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
