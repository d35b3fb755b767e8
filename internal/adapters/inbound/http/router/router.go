package router

import (
	"net/http"

	"lendit/internal/adapters/inbound/http/controllers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Dependencies struct {
	HealthController  *controllers.HealthController
	SwaggerController *controllers.SwaggerController
	RatesController   *controllers.RatesController
	IntentsController *controllers.IntentsController
	JournalController *controllers.JournalController
}

func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", deps.HealthController.GetHealth)
	r.Get("/swagger", deps.SwaggerController.RedirectToIndex)
	r.Get("/swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	r.Get("/swagger/*", deps.SwaggerController.ServeUI)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rates", deps.RatesController.GetBestRate)
		r.Post("/intents", deps.IntentsController.PreviewIntent)
		r.Get("/journal", deps.JournalController.ListEntries)
	})

	return r
}
