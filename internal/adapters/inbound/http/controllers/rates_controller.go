package controllers

import (
	"net/http"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"

	"github.com/rs/zerolog"
)

type RatesController struct {
	useCase portsin.FetchBestRateUseCase
	logger  zerolog.Logger
}

func NewRatesController(useCase portsin.FetchBestRateUseCase, logger zerolog.Logger) *RatesController {
	return &RatesController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *RatesController) GetBestRate(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.useCase.Execute(r.Context(), dto.FetchBestRateQuery{})
	if appErr != nil {
		logRequestError(c.logger, r, "/v1/rates", appErr)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
