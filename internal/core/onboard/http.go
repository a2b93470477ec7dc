package onboard

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

// Routes returns the wizard endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.start)
	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.get)
		r.Patch("/", handler.update)
		r.Delete("/", handler.discard)
		r.Post("/next", handler.next)
		r.Post("/back", handler.back)
		r.Put("/image", handler.attachImage)
		r.Delete("/image", handler.removeImage)
		r.Post("/submit", handler.submit)
	})

	return router
}

/*
POST /api/v1/onboard.

Response:
  - 201: Draft at step 1
*/
func (handler *Handler) start(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Start(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, draft)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

/*
PATCH /api/v1/onboard/{id}.

Request (JSON, every field optional):
  - name, bio, feeRange, location: string
  - category, languages: []string

Response:
  - 200: Draft
  - 409: CONFLICT once submitting or submitted
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var patch FormPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

// discard answers 204 whether or not the draft still existed.
func (handler *Handler) discard(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Discard(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/onboard/{id}/next.

Response:
  - 200: Draft on the following step
  - 400: VALIDATION_ERROR with one detail per failing field of the current step
  - 422: UNPROCESSABLE on the image step (submit instead)
*/
func (handler *Handler) next(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Next(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) back(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Back(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

/*
PUT /api/v1/onboard/{id}/image.

Request (multipart/form-data):
  - profileImage: file (image/*, at most 10MB)

Response:
  - 200: Draft with image metadata
  - 400: VALIDATION_ERROR
  - 422: UNPROCESSABLE outside the image step
*/
func (handler *Handler) attachImage(writer http.ResponseWriter, request *http.Request) {
	image, err := ReadImageUpload(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.AttachImage(request.Context(), requestutil.ID(request, "id"), image)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) removeImage(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.RemoveImage(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

/*
POST /api/v1/onboard/{id}/submit.

Description: Blocks for the simulated latency, then returns the finished
draft. Concurrent calls share one submission.

Response:
  - 200: Draft on the success step, with a notice on the first completion
  - 400: VALIDATION_ERROR
  - 422: UNPROCESSABLE before the image step
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	draft, n, err := handler.service.Submit(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if n.IsZero() {
		respond.OK(writer, draft)
		return
	}
	respond.Notify(writer, draft, n)
}
