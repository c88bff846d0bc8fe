package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CampaignUseCase to execute business logic, a logger for
// structured logging, and the Google Ads customer id the lifecycle
// operations run against. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc        port.CampaignUseCase
	logger     *slog.Logger
	customerID string
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. The CORS
// middleware is permissive because the campaign manager frontend is served
// from a different origin.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, customerID string) *Handler {
	h := &Handler{svc: svc, logger: logger, customerID: customerID}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/publish", h.handlePublishCampaign)
				r.Put("/enable", h.handleEnableCampaign)
				r.Put("/pause", h.handlePauseCampaign)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports service liveness.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
