// Package components renders the pages, the results email and JSON bodies as
// templ components.
package components

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html accumulates writes and keeps the first error.
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

func (h *html) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *html) attrURL(u string) {
	h.text(string(templ.URL(u)))
}

func layout(title string, body func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/static/styles.css"></head><body>`)
		body(h)
		h.raw(`</body></html>`)
		return h.err
	})
}

// JSON encodes v as the response body.
func JSON(v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	})
}

func codeText(code int) string {
	return strconv.Itoa(code)
}
