package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixbrock/designkit/internal/domain"
)

// SubmissionRepo stores submissions in the Supabase design_kit_submissions
// table through its PostgREST endpoint.
type SubmissionRepo struct {
	BaseHeaders []string
	BaseUrl     string
}

func (r SubmissionRepo) Insert(ctx context.Context, submission domain.Submission) error {
	body, err := json.Marshal(submission)

	if err != nil {
		return err
	}

	_, err = request[struct{}](ctx, reqConfig{
		Method:  "POST",
		Url:     r.BaseUrl,
		Body:    body,
		Headers: append(r.headers(), "Prefer:return=minimal")},
		201)

	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

func (r SubmissionRepo) Read(ctx context.Context, id string) (*domain.Submission, error) {
	records, err := request[[]domain.Submission](ctx, reqConfig{
		Method:    "GET",
		Url:       r.BaseUrl,
		UrlParams: []string{eq("id", id), "select=*"},
		Headers:   r.BaseHeaders},
		200)

	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}

	if records == nil || len(*records) == 0 {
		return nil, domain.ErrNotFound
	}

	return &(*records)[0], nil
}

func (r SubmissionRepo) Update(ctx context.Context, id string, patch domain.SubmissionPatch) error {
	body, err := json.Marshal(patch)

	if err != nil {
		return err
	}

	_, err = request[struct{}](ctx, reqConfig{
		Method:    "PATCH",
		Url:       r.BaseUrl,
		UrlParams: []string{eq("id", id)},
		Body:      body,
		Headers:   append(r.headers(), "Prefer:return=minimal")},
		204)

	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}

	return nil
}

func (r SubmissionRepo) headers() []string {
	headers := make([]string, 0, len(r.BaseHeaders)+2)
	headers = append(headers, r.BaseHeaders...)
	return append(headers, "Content-Type:application/json")
}
