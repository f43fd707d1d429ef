// Package news proxies the third-party news feed used by the crisis
// dashboard. Upstream failures are propagated with the upstream status
// and never retried.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://newsapi.org/v2/everything"

// defaultQuery mirrors the feed the dashboard has always shown.
const defaultQuery = `"India" AND ("disaster management" OR "natural disaster" OR "emergency response" OR "disaster relief" OR "crisis management")`

// UpstreamError reports a non-2xx answer from the news provider.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("news upstream returned %d: %s", e.Status, e.Message)
}

// Service fetches the disaster-news feed.
type Service struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewService creates a news client. baseURL may be empty to use the
// provider default.
func NewService(apiKey, baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Fetch returns the raw feed payload. A non-2xx upstream answer comes
// back as *UpstreamError carrying the upstream status.
func (s *Service) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}

	params := url.Values{}
	params.Set("q", defaultQuery)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", s.apiKey)
	req.URL.RawQuery = params.Encode()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return json.RawMessage(body), nil
}
