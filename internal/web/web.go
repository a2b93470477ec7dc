// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web serves the server-rendered pages: home, artist listing,
manager dashboard and the onboarding wizard.

Pages are composed from [templ.Component] values over the same services the
JSON API uses. Form posts follow post/redirect/get; the resulting notice
travels in a one-shot cookie and is shown as a toast on the next page.
*/
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/onboard"
	"github.com/taibuivan/artistly/internal/core/reference"
	"github.com/taibuivan/artistly/internal/core/submission"
)

// Services bundles what the pages read from and act on.
type Services struct {
	Artists     *artist.Service
	Submissions *submission.Service
	Wizard      *onboard.Service
	Reference   *reference.Service
}

// Handler renders the HTML surface.
type Handler struct {
	Services
	secureCookies bool
}

// NewHandler builds the page handler. secureCookies marks the draft and
// flash cookies Secure, for deployments behind TLS.
func NewHandler(services Services, secureCookies bool) *Handler {
	return &Handler{Services: services, secureCookies: secureCookies}
}

// Routes returns the page routes, mounted at the site root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.home)

	router.Get("/artists", handler.artists)
	router.Post("/artists/{id}/quote", handler.requestQuote)

	router.Get("/dashboard", handler.dashboard)
	router.Post("/dashboard/{id}/status", handler.updateStatus)

	router.Get("/onboard", handler.onboard)
	router.Post("/onboard", handler.onboardStep)
	router.Post("/onboard/image", handler.onboardImage)
	router.Post("/onboard/restart", handler.onboardRestart)

	router.NotFound(handler.notFound)

	return router
}

func (handler *Handler) notFound(writer http.ResponseWriter, request *http.Request) {
	handler.writePage(writer, request, page{
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Body:   message("Page not found", "The page you are looking for does not exist."),
	})
}
