package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type AppResp struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *AppResp

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp.Error != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, resp.Error.Error()), "path", r.URL.Path, "message", resp.Message)
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	if resp.Component == nil {
		return
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()))
		http.Error(w, "templ: failed to render template", 500)
	}
}
