package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"

// InnertubeStrategy asks the player API for the caption track listing,
// restricted to a single language to keep request volume down. It is the
// only strategy that can distinguish "captions disabled" from "no captions
// in this language".
type InnertubeStrategy struct {
	Language       string
	Client         *http.Client
	RetryDelay     time.Duration
	sleep          func(time.Duration) // swapped out in tests
	playerEndpoint string
}

var _ Strategy = &InnertubeStrategy{}

func NewInnertubeStrategy(language string, timeout, retryDelay time.Duration) *InnertubeStrategy {
	if language == "" {
		language = "en"
	}
	return &InnertubeStrategy{
		Language:       language,
		Client:         &http.Client{Timeout: timeout},
		RetryDelay:     retryDelay,
		sleep:          time.Sleep,
		playerEndpoint: innertubePlayerURL,
	}
}

func (s *InnertubeStrategy) Name() string { return "captions-client" }

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
	} `json:"playabilityStatus"`
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

func (s *InnertubeStrategy) Attempt(ctx context.Context, videoID string) (*Record, error) {
	player, err := s.fetchPlayer(ctx, videoID)
	if err == ErrRateLimited {
		// Single fixed-delay retry, then give this strategy up.
		s.sleep(s.RetryDelay)
		if player, err = s.fetchPlayer(ctx, videoID); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		if player.PlayabilityStatus.Status == "OK" {
			// Video plays fine but exposes no tracks at all: the owner
			// turned captions off. Nothing downstream can help.
			return nil, ErrCaptionsDisabled
		}
		return nil, ErrNoTranscript
	}

	var track captionTrack
	found := false
	for _, t := range tracks {
		if t.LanguageCode == s.Language {
			track, found = t, true
			break
		}
	}
	if !found {
		return nil, ErrNoTranscript
	}

	text, err := fetchTrackText(ctx, s.Client, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrNoTranscript
	}
	return &Record{Text: text, Language: s.Language}, nil
}

func (s *InnertubeStrategy) fetchPlayer(ctx context.Context, videoID string) (*playerResponse, error) {
	payload := map[string]interface{}{
		"videoId": videoID,
		"context": map[string]interface{}{
			"client": map[string]interface{}{
				"clientName":    "ANDROID",
				"clientVersion": "20.10.38",
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.playerEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player API returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var player playerResponse
	if err := json.Unmarshal(respBody, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &player, nil
}
