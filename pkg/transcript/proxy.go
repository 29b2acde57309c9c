package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// ProxyStrategy queries hosted transcript-proxy services. Each endpoint is a
// URL template with a %s placeholder for the video id. The first endpoint
// that yields non-empty text wins.
type ProxyStrategy struct {
	Endpoints []string
	Client    *http.Client
}

var _ Strategy = &ProxyStrategy{}

func NewProxyStrategy(endpoints []string, timeout time.Duration) *ProxyStrategy {
	return &ProxyStrategy{
		Endpoints: endpoints,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (s *ProxyStrategy) Name() string { return "proxy" }

func (s *ProxyStrategy) Attempt(ctx context.Context, videoID string) (*Record, error) {
	for _, template := range s.Endpoints {
		// A template without the video-id placeholder would only fail once
		// the mangled URL hits the wire; skip it outright.
		if !strings.Contains(template, "%s") {
			continue
		}
		text, err := s.fetchOne(ctx, fmt.Sprintf(template, videoID))
		if err != nil {
			continue
		}
		if text != "" {
			// Proxies don't report language reliably; tag a fixed default.
			return &Record{Text: text, Language: "en"}, nil
		}
	}
	return nil, ErrNoTranscript
}

func (s *ProxyStrategy) fetchOne(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("proxy returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return "", fmt.Errorf("proxy returned non-JSON content type %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseProxyBody(body)
}

// proxyEntry tolerates the two per-entry shapes seen in the wild: a flat
// "text" field or a nested "snippet.text".
type proxyEntry struct {
	Text    string `json:"text"`
	Snippet struct {
		Text string `json:"text"`
	} `json:"snippet"`
}

func (e proxyEntry) text() string {
	if e.Text != "" {
		return e.Text
	}
	return e.Snippet.Text
}

// parseProxyBody handles the two list-key conventions proxy services use:
// {"transcript": [...]} and {"text": [...]}. Anything else is an explicit
// no-fields-matched error rather than silently empty text.
func parseProxyBody(body []byte) (string, error) {
	var payload struct {
		Transcript []proxyEntry `json:"transcript"`
		Text       []proxyEntry `json:"text"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode proxy response: %w", err)
	}

	entries := payload.Transcript
	if entries == nil {
		entries = payload.Text
	}
	if entries == nil {
		return "", fmt.Errorf("proxy response matched no known fields")
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if t := strings.TrimSpace(e.text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}
