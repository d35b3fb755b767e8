package controllers

import (
	"net/http"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"

	"github.com/rs/zerolog"
)

type IntentsController struct {
	previewUseCase portsin.PreviewLendingIntentUseCase
	logger         zerolog.Logger
}

type previewIntentPayload struct {
	Direction string `json:"direction"`
	Account   string `json:"account"`
	Amount    string `json:"amount"`
}

func NewIntentsController(previewUseCase portsin.PreviewLendingIntentUseCase, logger zerolog.Logger) *IntentsController {
	return &IntentsController{
		previewUseCase: previewUseCase,
		logger:         logger,
	}
}

func (c *IntentsController) PreviewIntent(w http.ResponseWriter, r *http.Request) {
	payload := previewIntentPayload{}
	if appErr := decodeSingleObject(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.previewUseCase.Execute(r.Context(), dto.LendingCommand{
		Direction: payload.Direction,
		Account:   payload.Account,
		Amount:    payload.Amount,
	})
	if appErr != nil {
		logRequestError(c.logger, r, "/v1/intents", appErr)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
