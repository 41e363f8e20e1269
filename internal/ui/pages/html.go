package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/lifefinance/navigator/internal/ctxkeys"
)

// html writes markup and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func (h *html) csrfField(ctx context.Context) {
	h.raw(`<input type="hidden" name="csrf_token" value="`)
	h.text(ctxkeys.CSRFToken(ctx))
	h.raw(`">`)
}

func (h *html) input(label, typ, name, value string, required bool) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(`<input type="` + typ + `" name="` + name + `" value="`)
	h.text(value)
	h.raw(`"`)
	if required {
		h.raw(` required`)
	}
	h.raw(`></label>`)
}

func (h *html) errorBox(message string) {
	if message == "" {
		return
	}
	h.raw(`<p class="error" role="alert">`)
	h.text(message)
	h.raw(`</p>`)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func component(f func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		f(ctx, h)
		return h.err
	})
}
