package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

const unsplashBaseUrl = "https://api.unsplash.com"

type unsplashPhoto struct {
	Urls struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

type unsplashSearch struct {
	Results []unsplashPhoto `json:"results"`
}

// UnsplashRepo searches portrait stock photos. Without an access key every
// search returns no images.
type UnsplashRepo struct {
	AccessKey string
	BaseUrl   string
}

func (r UnsplashRepo) Search(ctx context.Context, query string, perPage int) ([]string, error) {
	if r.AccessKey == "" {
		slog.Debug("Unsplash API key not configured - skipping search", "query", query)
		return []string{}, nil
	}

	base := r.BaseUrl
	if base == "" {
		base = unsplashBaseUrl
	}

	res, err := request[unsplashSearch](ctx, reqConfig{
		Method: "GET",
		Url:    fmt.Sprintf("%s/search/photos", base),
		UrlParams: []string{
			fmt.Sprintf("query=%s", url.QueryEscape(query)),
			fmt.Sprintf("per_page=%d", perPage),
			"orientation=portrait",
		},
		Headers: []string{
			fmt.Sprintf("Authorization: Client-ID %s", r.AccessKey),
			"Accept-Version: v1",
		}},
		200)

	if err != nil {
		return nil, fmt.Errorf("unsplash search %q: %w", query, err)
	}

	urls := []string{}
	if res == nil {
		return urls, nil
	}

	for _, photo := range res.Results {
		if photo.Urls.Regular != "" {
			urls = append(urls, photo.Urls.Regular)
		}
	}

	return urls, nil
}
