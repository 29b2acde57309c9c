package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"yt-video-chat-be/internal/config"
	"yt-video-chat-be/internal/pkg/logger"
	"yt-video-chat-be/pkg/transcript"
	"yt-video-chat-be/pkg/youtube"
)

// Known-good videos with public captions, used to verify the acquisition
// chain end to end against live YouTube.
var checks = []struct {
	name string
	url  string
}{
	{"3Blue1Brown - Neural Networks", "https://www.youtube.com/watch?v=aircAruvnKk"},
	{"TED Talk - Simon Sinek", "https://www.youtube.com/watch?v=8jPQjjsBbIc"},
	{"Short Video Test", "https://youtu.be/dQw4w9WgXcQ"},
}

func main() {
	cfg := config.Load()

	strategies := []transcript.Strategy{
		transcript.NewProxyStrategy(cfg.Transcript.ProxyEndpoints, cfg.Transcript.HTTPTimeout),
		transcript.NewInnertubeStrategy(cfg.Transcript.Language, cfg.Transcript.HTTPTimeout, cfg.Transcript.RetryDelay),
		transcript.NewScrapeStrategy(cfg.Transcript.HTTPTimeout),
	}
	fetcher := transcript.NewFetcher(strategies, cfg.Transcript.StrategyDelay, logger.NewNopLogger())

	color.Cyan("🚀 Transcript acquisition check (%d videos)\n", len(checks))

	passed := 0
	for i, check := range checks {
		color.Yellow("\n[%d/%d] %s", i+1, len(checks), check.name)
		fmt.Printf("URL: %s\n", check.url)

		videoID, ok := youtube.ExtractVideoID(check.url)
		if !ok {
			color.Red("Failed: could not extract video id")
			continue
		}
		fmt.Printf("Video ID: %s\n", videoID)

		start := time.Now()
		record, err := fetcher.Fetch(context.Background(), videoID)
		if err != nil {
			color.Red("Failed: %v", err)
			continue
		}

		preview := record.Text
		if runes := []rune(preview); len(runes) > 120 {
			preview = string(runes[:120]) + "..."
		}
		color.Green("OK in %s (%d chars, language=%s)", time.Since(start).Round(time.Millisecond), len(record.Text), record.Language)
		fmt.Printf("Preview: %s\n", strings.TrimSpace(preview))
		passed++
	}

	fmt.Println()
	if passed == len(checks) {
		color.Green("✅ All %d checks passed", passed)
	} else {
		color.Red("❌ %d/%d checks passed", passed, len(checks))
	}
}
