package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"yt-video-chat-be/pkg/youtube"
)

// ScrapeStrategy pulls the public watch page and digs the caption track
// listing out of the embedded player response. Last resort: it needs no API
// surface at all, just the HTML YouTube serves to browsers.
type ScrapeStrategy struct {
	Client *http.Client
}

var _ Strategy = &ScrapeStrategy{}

func NewScrapeStrategy(timeout time.Duration) *ScrapeStrategy {
	return &ScrapeStrategy{Client: &http.Client{Timeout: timeout}}
}

func (s *ScrapeStrategy) Name() string { return "page-scrape" }

var captionTracksPattern = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

func (s *ScrapeStrategy) Attempt(ctx context.Context, videoID string) (*Record, error) {
	page, err := s.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, "en")
	if !ok {
		return nil, ErrNoTranscript
	}

	text, err := fetchTrackText(ctx, s.Client, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrNoTranscript
	}

	language := track.LanguageCode
	if language == "" {
		language = "unknown"
	}
	return &Record{Text: text, Language: language}, nil
}

func (s *ScrapeStrategy) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, youtube.WatchURL(videoID), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// extractCaptionTracks locates the "captionTracks" JSON array inside the
// watch page HTML.
func extractCaptionTracks(page string) ([]captionTrack, error) {
	match := captionTracksPattern.FindStringSubmatch(page)
	if match == nil {
		return nil, ErrNoTranscript
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(match[1]), &tracks); err != nil {
		return nil, fmt.Errorf("decode caption tracks: %w", err)
	}
	return tracks, nil
}
