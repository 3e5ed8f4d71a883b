package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixbrock/designkit/internal/domain"
)

const resendBaseUrl = "https://api.resend.com"

type resendSent struct {
	Id string `json:"id"`
}

// ResendRepo dispatches transactional email through the Resend API.
type ResendRepo struct {
	ApiKey  string
	BaseUrl string
}

func (r ResendRepo) Configured() bool {
	return r.ApiKey != ""
}

func (r ResendRepo) Send(ctx context.Context, email domain.Email) (string, error) {
	body, err := json.Marshal(email)

	if err != nil {
		return "", err
	}

	base := r.BaseUrl
	if base == "" {
		base = resendBaseUrl
	}

	sent, err := request[resendSent](ctx, reqConfig{
		Method: "POST",
		Url:    fmt.Sprintf("%s/emails", base),
		Body:   body,
		Headers: []string{
			"Content-Type:application/json",
			fmt.Sprintf("Authorization: Bearer %s", r.ApiKey),
		}},
		200)

	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}

	if sent == nil {
		return "", nil
	}

	return sent.Id, nil
}
