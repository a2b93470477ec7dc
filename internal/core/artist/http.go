package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
	"github.com/taibuivan/artistly/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public discovery endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArtists)
	router.Get("/{id}", handler.getArtist)
	router.Post("/{id}/quote", handler.requestQuote)

	return router
}

/*
GET /api/v1/artists.

Request:
  - category: string (case-insensitive substring of any category, "All" = none)
  - location: string (case-insensitive substring)
  - priceRange: string (exact label)
  - q: string (name, bio or category)
  - page, limit: int

Response:
  - 200: []Artist with meta.total (matches) and meta.available (catalogue size)
*/
func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := ParseFilter(request.URL.Query())

	result, err := handler.service.ListArtists(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	start, end := paginationParams.Window(len(result.Artists))
	meta := pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(result.Artists)).WithAvailable(result.Total)

	respond.Paginated(writer, result.Artists[start:end], meta)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.GetArtist(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

/*
POST /api/v1/artists/{id}/quote.

Description: Raises the "quote request sent" notice. Nothing leaves the server.

Response:
  - 200: notice
  - 404: NOT_FOUND
*/
func (handler *Handler) requestQuote(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	n, err := handler.service.RequestQuote(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Notify(writer, nil, n)
}
