package persistence

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/felixbrock/designkit/internal/app"
)

type reqConfig struct {
	Method    string
	Url       string
	UrlParams []string
	Headers   []string
	Body      []byte
}

// StatusError is returned when a collaborator answers with an unexpected code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status code error: %d %s", e.Code, e.Body)
}

var client = &http.Client{}

func request[T any](ctx context.Context, config reqConfig, expectedResCode int) (*T, error) {
	target := config.Url
	if len(config.UrlParams) > 0 {
		target = fmt.Sprintf("%s?%s", config.Url, strings.Join(config.UrlParams, "&"))
	}

	req, err := http.NewRequestWithContext(ctx, config.Method, target, bytes.NewBuffer(config.Body))

	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		key, value, found := strings.Cut(config.Headers[i], ":")
		if !found {
			continue
		}
		req.Header.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	resp, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	body, err := app.Read(resp.Body)

	if err != nil {
		return nil, err
	} else if resp.StatusCode != expectedResCode {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var t *T
	t, err = app.ReadJSON[T](body)

	if err != nil {
		return nil, err
	}

	return t, nil
}

func eq(column string, value string) string {
	return fmt.Sprintf("%s=eq.%s", column, url.QueryEscape(value))
}
