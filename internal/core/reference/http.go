package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes the catalogues under /api/v1/reference. All endpoints are
// public and read-only.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/filters", handler.filters)
	router.Get("/onboarding", handler.onboarding)
	router.Get("/featured", handler.featured)

	return router
}

// GET /api/v1/reference/filters.
func (handler *Handler) filters(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Filters())
}

// GET /api/v1/reference/onboarding.
func (handler *Handler) onboarding(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Onboarding())
}

// GET /api/v1/reference/featured.
func (handler *Handler) featured(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Featured())
}
