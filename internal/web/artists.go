package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/artistly/internal/core/artist"
	requestutil "github.com/taibuivan/artistly/internal/platform/request"
)

// View modes of the listing.
const (
	viewGrid = "grid"
	viewList = "list"

	paramView   = "view"
	paramReturn = "return"
)

func parseView(raw string) string {
	if raw == viewList {
		return viewList
	}
	return viewGrid
}

func (handler *Handler) artists(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	filter := artist.ParseFilter(query)
	view := parseView(query.Get(paramView))

	result, err := handler.Artists.ListArtists(request.Context(), filter)
	if err != nil {
		handler.writeError(writer, request, "/artists", err)
		return
	}

	filters := handler.Reference.Filters()
	current := request.URL.RequestURI()

	handler.writePage(writer, request, page{
		Title:  "Artists",
		Active: "/artists",
		Body: component(func(_ context.Context, out *printer) {
			out.raw(`<section class="listing"><h1>Find Artists</h1>`)

			out.raw(`<form class="filters" method="get" action="/artists">`)
			out.f(`<input type="search" name="%s" placeholder="Search artists by name, bio, or category..." value="%s">`,
				artist.ParamQuery, esc(filter.Query))
			writeSelect(out, artist.ParamCategory, "Category", filters.Categories, filter.Options.Category)
			writeSelect(out, artist.ParamLocation, "Location", filters.Locations, filter.Options.Location)
			writeSelect(out, artist.ParamPriceRange, "Price Range", filters.PriceRanges, filter.Options.PriceRange)
			out.f(`<input type="hidden" name="%s" value="%s"><button type="submit">Apply</button>`, paramView, esc(view))
			if filter.Active() {
				out.f(`<a class="clear" href="%s">Clear Filters</a>`, href(viewURL(artist.Filter{}, view)))
			}
			out.raw(`</form>`)

			out.raw(`<div class="toolbar">`)
			out.f(`<p class="count">Showing %d of %d artists</p>`, len(result.Artists), result.Total)
			for _, mode := range []string{viewGrid, viewList} {
				class := ""
				if mode == view {
					class = ` class="active"`
				}
				out.f(`<a%s href="%s">%s</a> `, class, href(viewURL(filter, mode)), esc(strings.ToUpper(mode[:1])+mode[1:]))
			}
			out.raw(`</div>`)

			if len(result.Artists) == 0 {
				out.f(`<div class="empty"><h2>No artists found</h2><p>Try adjusting your filters or search terms</p>`+
					`<a class="button" href="%s">Clear Filters</a></div>`, href(viewURL(artist.Filter{}, view)))
				out.raw(`</section>`)
				return
			}

			out.f(`<div class="artists %s">`, esc(view))
			for _, a := range result.Artists {
				writeArtistCard(out, a, current)
			}
			out.raw(`</div></section>`)
		}),
	})
}

func writeSelect(out *printer, name, label string, options []string, current string) {
	out.f(`<label>%s <select name="%s">`, esc(label), esc(name))
	for _, option := range options {
		// The leading "All" stands for an empty constraint.
		isSelected := option == current || (current == "" && option == options[0])
		out.f(`<option value="%s"%s>%s</option>`, esc(option), selected(isSelected), esc(option))
	}
	out.raw(`</select></label>`)
}

func writeArtistCard(out *printer, a artist.Artist, returnTo string) {
	out.f(`<article class="artist-card" id="artist-%d">`, a.ID)
	if a.Image != "" {
		out.f(`<img src="%s" alt="%s" loading="lazy">`, href(a.Image), esc(a.Name))
	}
	out.f(`<h3>%s</h3>`, esc(a.Name))
	out.f(`<p class="rating">%s (%d bookings)</p>`, strconv.FormatFloat(a.Rating, 'f', 1, 64), a.TotalBookings)
	out.raw(`<ul class="tags">`)
	for _, category := range a.Category {
		out.f(`<li>%s</li>`, esc(category))
	}
	out.raw(`</ul>`)
	out.f(`<p class="location">%s</p><p class="price">%s</p><p class="bio">%s</p>`,
		esc(a.Location), esc(a.PriceRange), esc(a.Bio))
	if len(a.Languages) > 0 {
		out.f(`<p class="languages">%s</p>`, esc(strings.Join(a.Languages, ", ")))
	}
	out.f(`<form method="post" action="%s"><input type="hidden" name="%s" value="%s">`+
		`<button type="submit">Ask for Quote</button></form>`,
		href(fmt.Sprintf("/artists/%d/quote", a.ID)), paramReturn, esc(returnTo))
	out.raw(`</article>`)
}

func viewURL(filter artist.Filter, view string) string {
	values := filter.Values()
	if view != viewGrid {
		values.Set(paramView, view)
	}
	if len(values) == 0 {
		return "/artists"
	}
	return "/artists?" + values.Encode()
}

func (handler *Handler) requestQuote(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.writeError(writer, request, "/artists", err)
		return
	}

	n, err := handler.Artists.RequestQuote(request.Context(), id)
	if err != nil {
		handler.writeError(writer, request, "/artists", err)
		return
	}

	writeFlash(writer, n, handler.secureCookies)
	redirect(writer, request, safeReturn(request.PostFormValue(paramReturn), "/artists"))
}

// safeReturn accepts only same-site paths under fallback.
func safeReturn(target, fallback string) string {
	parsed, err := url.Parse(target)
	if err != nil || parsed.IsAbs() || parsed.Host != "" || !strings.HasPrefix(parsed.Path, fallback) {
		return fallback
	}
	return parsed.RequestURI()
}
