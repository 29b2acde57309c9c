package dto

import "time"

type LoadVideoRequest struct {
	Url string `json:"url" validate:"required,url"`
}

type LoadTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

type LoadVideoResponse struct {
	VideoId       string `json:"video_id"`
	Language      string `json:"language"`
	TranscriptLen int    `json:"transcript_len"`
	SegmentCount  int    `json:"segment_count"`
	AlreadyLoaded bool   `json:"already_loaded"`
	FromCache     bool   `json:"from_cache"`
}

type CurrentVideoResponse struct {
	VideoId           string    `json:"video_id"`
	Language          string    `json:"language"`
	TranscriptPreview string    `json:"transcript_preview"`
	TranscriptLen     int       `json:"transcript_len"`
	SegmentCount      int       `json:"segment_count"`
	LoadedAt          time.Time `json:"loaded_at"`
}
