package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the dashboard endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSubmissions)
	router.Get("/stats", handler.stats)
	router.Patch("/{id}/status", handler.updateStatus)

	return router
}

/*
GET /api/v1/submissions.

Request:
  - status: "all" | "pending" | "review" | "approved" | "rejected" (optional)

Response:
  - 200: []Submission
  - 400: VALIDATION_ERROR for an unknown status
*/
func (handler *Handler) listSubmissions(writer http.ResponseWriter, request *http.Request) {
	status, err := ParseStatusFilter(request.URL.Query().Get("status"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submissions, err := handler.service.ListSubmissions(request.Context(), status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submissions)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

/*
PATCH /api/v1/submissions/{id}/status.

Request (JSON):
  - status: string (required)

Response:
  - 200: Submission with the "Status updated successfully" notice
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input StatusChange
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, n, err := handler.service.UpdateStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Notify(writer, updated, n)
}
