package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseProxyBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		wantErr  bool
	}{
		{
			name:     "transcript key with flat text",
			body:     `{"transcript":[{"text":"hello"},{"text":"world"}]}`,
			wantText: "hello world",
		},
		{
			name:     "text key with flat text",
			body:     `{"text":[{"text":"one"},{"text":"two"}]}`,
			wantText: "one two",
		},
		{
			name:     "nested snippet text",
			body:     `{"transcript":[{"snippet":{"text":"nested"}},{"snippet":{"text":"shape"}}]}`,
			wantText: "nested shape",
		},
		{
			name:     "entries trimmed and blanks skipped",
			body:     `{"transcript":[{"text":"  padded  "},{"text":"   "},{"text":"end"}]}`,
			wantText: "padded end",
		},
		{
			name:    "unknown shape",
			body:    `{"captions":[{"text":"hello"}]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>error page</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProxyBody([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Errorf("err = nil, want error (got text %q)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestProxyAttemptSkipsTemplatesWithoutPlaceholder(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"transcript":[{"text":"hello"},{"text":"world"}]}`)
	}))
	defer srv.Close()

	s := NewProxyStrategy([]string{
		srv.URL + "/no-placeholder",
		srv.URL + "/api/transcript/%s",
	}, 5*time.Second)

	record, err := s.Attempt(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if record.Text != "hello world" {
		t.Errorf("text = %q", record.Text)
	}
	// The malformed template never hits the wire.
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}

func TestProxyAttemptAllTemplatesMalformed(t *testing.T) {
	s := NewProxyStrategy([]string{"https://proxy.example.com/transcript"}, time.Second)

	_, err := s.Attempt(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("err = %v, want ErrNoTranscript", err)
	}
}
