package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixbrock/designkit/internal/domain"
)

const phBaseUrl = "https://eu.posthog.com"

type phCapture struct {
	ApiKey     string         `json:"api_key"`
	Event      string         `json:"event"`
	DistinctId string         `json:"distinct_id"`
	Properties map[string]any `json:"properties,omitempty"`
}

// PHRepo captures product analytics events in PostHog. An empty ApiKey turns
// Capture into a no-op.
type PHRepo struct {
	BaseHeaders []string
	ApiKey      string
	BaseUrl     string
}

func (r PHRepo) Capture(ctx context.Context, event domain.Event) error {
	if r.ApiKey == "" {
		return nil
	}

	body, err := json.Marshal(phCapture{
		ApiKey:     r.ApiKey,
		Event:      event.Type,
		DistinctId: event.SubmissionId,
		Properties: event.Properties,
	})

	if err != nil {
		return err
	}

	base := r.BaseUrl
	if base == "" {
		base = phBaseUrl
	}

	_, err = request[struct{}](ctx, reqConfig{
		Method:  "POST",
		Url:     fmt.Sprintf("%s/capture/", base),
		Headers: append(append([]string{}, r.BaseHeaders...), "Content-Type:application/json"),
		Body:    body},
		200)

	if err != nil {
		return err
	}

	return nil
}
