package transcript

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// captionTrack describes one entry of the captionTracks listing embedded in
// the player response.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

// pickTrack prefers a track tagged with the wanted language, falling back to
// the first track when none matches.
func pickTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	if len(tracks) == 0 {
		return captionTrack{}, false
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, language) {
			return t, true
		}
	}
	return tracks[0], true
}

var timedTextPattern = regexp.MustCompile(`(?s)<text[^>]*>(.*?)</text>`)

// parseTimedText extracts the payload of every <text> element from a caption
// document, unescapes HTML entities and joins the snippets with spaces.
func parseTimedText(doc string) string {
	matches := timedTextPattern.FindAllStringSubmatch(doc, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		snippet := html.UnescapeString(m[1])
		snippet = strings.ReplaceAll(snippet, "\n", " ")
		if snippet = strings.TrimSpace(snippet); snippet != "" {
			parts = append(parts, snippet)
		}
	}
	return strings.Join(parts, " ")
}

// fetchTrackText downloads a caption track document and extracts its text.
func fetchTrackText(ctx context.Context, client *http.Client, trackURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("caption track returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseTimedText(string(body)), nil
}
