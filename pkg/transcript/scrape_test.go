package transcript

import (
	"errors"
	"testing"
)

func TestExtractCaptionTracks(t *testing.T) {
	page := `<html><script>var ytInitialPlayerResponse = {"captions":{` +
		`"playerCaptionsTracklistRenderer":{"captionTracks":[` +
		`{"baseUrl":"https://example.com/tt?lang=en","languageCode":"en"},` +
		`{"baseUrl":"https://example.com/tt?lang=hi","languageCode":"hi"}]}}};</script></html>`

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		t.Fatalf("extractCaptionTracks: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("track count = %d, want 2", len(tracks))
	}
	if tracks[0].LanguageCode != "en" || tracks[1].LanguageCode != "hi" {
		t.Errorf("tracks = %+v", tracks)
	}
}

func TestExtractCaptionTracksMissing(t *testing.T) {
	_, err := extractCaptionTracks("<html>no captions here</html>")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("err = %v, want ErrNoTranscript", err)
	}
}

func TestPickTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "hi"},
		{BaseURL: "u2", LanguageCode: "en-US"},
	}

	track, ok := pickTrack(tracks, "en")
	if !ok || track.BaseURL != "u2" {
		t.Errorf("track = %+v, ok = %v, want en-US track", track, ok)
	}

	// No language match falls back to the first track.
	track, ok = pickTrack(tracks, "fr")
	if !ok || track.BaseURL != "u1" {
		t.Errorf("track = %+v, ok = %v, want first track", track, ok)
	}

	if _, ok := pickTrack(nil, "en"); ok {
		t.Error("empty listing reported a track")
	}
}

func TestParseTimedText(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?><transcript>` +
		`<text start="0.0" dur="2.5">hello &amp; welcome</text>` +
		`<text start="2.5" dur="3.0">to the
show</text>` +
		`<text start="5.5" dur="1.0">   </text>` +
		`<text start="6.5" dur="2.0">it&#39;s great</text>` +
		`</transcript>`

	got := parseTimedText(doc)
	want := "hello & welcome to the show it's great"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestParseTimedTextEmpty(t *testing.T) {
	if got := parseTimedText("<transcript></transcript>"); got != "" {
		t.Errorf("text = %q, want empty", got)
	}
}
