package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/artistly/internal/core/submission"
	requestutil "github.com/taibuivan/artistly/internal/platform/request"
)

const paramStatus = "status"

func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	raw := request.URL.Query().Get(paramStatus)

	status, err := submission.ParseStatusFilter(raw)
	if err != nil {
		handler.writeError(writer, request, "/dashboard", err)
		return
	}

	submissions, err := handler.Submissions.ListSubmissions(ctx, status)
	if err != nil {
		handler.writeError(writer, request, "/dashboard", err)
		return
	}
	stats, err := handler.Submissions.Stats(ctx)
	if err != nil {
		handler.writeError(writer, request, "/dashboard", err)
		return
	}

	handler.writePage(writer, request, page{
		Title:  "Dashboard",
		Active: "/dashboard",
		Body: component(func(_ context.Context, out *printer) {
			out.raw(`<section class="dashboard"><h1>Artist Manager Dashboard</h1>` +
				`<p>Manage artist submissions and track your platform performance</p>`)

			out.raw(`<div class="stats">`)
			writeStat(out, "Total Submissions", stats.Total)
			writeStat(out, "Approved", stats.Approved)
			writeStat(out, "Pending Review", stats.Pending)
			writeStat(out, "This Month", stats.ThisMonth)
			out.raw(`</div>`)

			out.raw(`<form class="status-filter" method="get" action="/dashboard"><label>Status <select name="status">`)
			out.f(`<option value="all"%s>All Status</option>`, selected(status == ""))
			for _, s := range submission.Statuses {
				out.f(`<option value="%s"%s>%s</option>`, esc(string(s)), selected(s == status), esc(s.Label()))
			}
			out.raw(`</select></label><button type="submit">Filter</button></form>`)

			if len(submissions) == 0 {
				out.raw(`<div class="empty"><p>No submissions found</p></div></section>`)
				return
			}

			out.raw(`<table><thead><tr><th>Name</th><th>Category</th><th>City</th><th>Fee Range</th>` +
				`<th>Submitted</th><th>Status</th><th>Actions</th></tr></thead><tbody>`)
			for _, s := range submissions {
				writeSubmissionRow(out, s, raw)
			}
			out.raw(`</tbody></table></section>`)
		}),
	})
}

func writeStat(out *printer, label string, value int) {
	out.f(`<div class="stat"><p>%s</p><strong>%d</strong></div>`, esc(label), value)
}

func writeSubmissionRow(out *printer, s submission.Submission, filter string) {
	out.f(`<tr id="submission-%d"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
		s.ID, esc(s.Name), esc(strings.Join(s.Category, ", ")), esc(s.City), esc(s.FeeRange),
		esc(s.SubmittedAt.Format("Jan 2, 2006")))
	out.f(`<td><span class="badge badge-%s">%s</span></td>`, esc(string(s.Status)), esc(s.Status.Label()))

	out.f(`<td><form method="post" action="%s"><input type="hidden" name="filter" value="%s"><select name="status">`,
		href(fmt.Sprintf("/dashboard/%d/status", s.ID)), esc(filter))
	for _, option := range submission.Statuses {
		out.f(`<option value="%s"%s>%s</option>`, esc(string(option)), selected(option == s.Status), esc(option.Label()))
	}
	out.raw(`</select><button type="submit">Update</button></form></td></tr>`)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.writeError(writer, request, "/dashboard", err)
		return
	}

	_, n, err := handler.Submissions.UpdateStatus(request.Context(), id, submission.Status(request.PostFormValue(paramStatus)))
	if err != nil {
		handler.writeError(writer, request, "/dashboard", err)
		return
	}

	target := "/dashboard"
	if filter := request.PostFormValue("filter"); filter != "" {
		if _, err := submission.ParseStatusFilter(filter); err == nil {
			target += "?" + url.Values{paramStatus: {filter}}.Encode()
		}
	}

	writeFlash(writer, n, handler.secureCookies)
	redirect(writer, request, target)
}
