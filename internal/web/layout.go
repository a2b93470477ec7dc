package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/notice"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

type navLink struct {
	Label string
	Path  string
}

var navigation = []navLink{
	{Label: "Home", Path: "/"},
	{Label: "Artists", Path: "/artists"},
	{Label: "Join as Artist", Path: "/onboard"},
	{Label: "Dashboard", Path: "/dashboard"},
}

// page describes one full HTML response.
type page struct {
	Title  string
	Active string
	Status int
	Toast  *notice.Notice
	Body   templ.Component
}

func layout(p page) templ.Component {
	return component(func(ctx context.Context, out *printer) {
		title := constants.AppName
		if p.Title != "" {
			title = p.Title + " | Artistly"
		}

		out.f(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title></head><body>`, esc(title))

		out.raw(`<header><nav class="nav"><a class="brand" href="/">Artistly</a><ul>`)
		for _, link := range navigation {
			if link.Path == p.Active {
				out.f(`<li><a class="active" aria-current="page" href="%s">%s</a></li>`, href(link.Path), esc(link.Label))
				continue
			}
			out.f(`<li><a href="%s">%s</a></li>`, href(link.Path), esc(link.Label))
		}
		out.raw(`</ul></nav></header>`)

		if p.Toast != nil {
			out.f(`<div class="toast toast-%s" role="status"><strong>%s</strong>`, esc(string(p.Toast.Kind)), esc(p.Toast.Title))
			if p.Toast.Description != "" {
				out.f(`<p>%s</p>`, esc(p.Toast.Description))
			}
			out.raw(`</div>`)
		}

		out.raw(`<main>`)
		out.render(ctx, p.Body)
		out.raw(`</main></body></html>`)
	})
}

// writePage renders p into a buffer first so a failing component yields a
// clean 500 instead of a truncated document.
func (handler *Handler) writePage(writer http.ResponseWriter, request *http.Request, p page) {
	if p.Toast == nil {
		p.Toast = readFlash(writer, request, handler.secureCookies)
	}
	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}

	var buf bytes.Buffer
	if err := layout(p).Render(request.Context(), &buf); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "web_render_failed",
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.String("path", request.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = writer.Write(buf.Bytes())
}

// writeError renders err as a page, using the API error mapping for status
// and message.
func (handler *Handler) writeError(writer http.ResponseWriter, request *http.Request, active string, err error) {
	appError := respond.Resolve(request, err)
	handler.writePage(writer, request, page{
		Title:  "Something went wrong",
		Active: active,
		Status: appError.HTTPStatus,
		Body:   message("Something went wrong", appError.Message),
	})
}

// redirect answers a form post with 303 See Other.
func redirect(writer http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(writer, request, target, http.StatusSeeOther)
}

func message(title, body string) templ.Component {
	return component(func(_ context.Context, out *printer) {
		out.f(`<section class="message"><h1>%s</h1><p>%s</p><p><a href="/">Return to Home</a></p></section>`, esc(title), esc(body))
	})
}
