package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// esc escapes text for element content and quoted attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// href sanitises a link target and escapes it for an attribute.
func href(target string) string {
	return templ.EscapeString(string(templ.URL(target)))
}

// printer accumulates the first write error so components read linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

// f writes a formatted fragment. Arguments must already be escaped.
func (p *printer) f(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) render(ctx context.Context, c templ.Component) {
	if p.err == nil && c != nil {
		p.err = c.Render(ctx, p.w)
	}
}

// component adapts a printer-based body to [templ.Component].
func component(body func(ctx context.Context, p *printer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		body(ctx, p)
		return p.err
	})
}

func checked(ok bool) string {
	if ok {
		return " checked"
	}
	return ""
}

func selected(ok bool) string {
	if ok {
		return " selected"
	}
	return ""
}
