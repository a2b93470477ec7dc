package web

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/reference"
)

func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	featured := handler.Reference.Featured()

	handler.writePage(writer, request, page{
		Active: "/",
		Body: component(func(_ context.Context, out *printer) {
			out.raw(`<section class="hero"><h1>Book Amazing <span>Performers</span><br>For Your Events</h1>` +
				`<p>Connect with talented singers, dancers, DJs, speakers, and more. ` +
				`Find the perfect artist for your wedding, corporate event, or special occasion.</p>` +
				`<p class="actions"><a class="button" href="/artists">Explore Artists</a> ` +
				`<a class="button outline" href="/onboard">Join as Artist</a></p></section>`)

			out.raw(`<section class="categories"><h2>Browse by Category</h2>` +
				`<p>Browse through our diverse collection of talented performers across different categories</p><div class="grid">`)
			for _, category := range featured.Categories {
				writeCategoryCard(out, category)
			}
			out.raw(`</div></section>`)

			out.raw(`<section class="features"><h2>Why Choose Artistly?</h2><div class="grid">`)
			for _, feature := range featured.Features {
				out.f(`<div class="feature"><h3>%s</h3><p>%s</p></div>`, esc(feature.Title), esc(feature.Description))
			}
			out.raw(`</div></section>`)
		}),
	})
}

func writeCategoryCard(out *printer, category reference.FeaturedCategory) {
	target := "/artists?" + url.Values{artist.ParamCategory: {category.Filter}}.Encode()
	out.f(`<a class="category-card" id="category-%s" href="%s"><h3>%s</h3><p>%s</p></a>`,
		esc(category.Slug), href(target), esc(category.Title), esc(category.Description))
}
