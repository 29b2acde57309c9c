package dto

// PublishVideoIndexedMessage is the payload of VIDEO_INDEXED events. The
// consumer persists the freshly built index snapshot when it sees one.
type PublishVideoIndexedMessage struct {
	VideoId      string `json:"video_id"`
	Language     string `json:"language"`
	SegmentCount int    `json:"segment_count"`
}

// PublishChatAnsweredMessage is the payload of CHAT_ANSWERED audit events.
type PublishChatAnsweredMessage struct {
	VideoId  string `json:"video_id"`
	Question string `json:"question"`
	Broad    bool   `json:"broad"`
}
