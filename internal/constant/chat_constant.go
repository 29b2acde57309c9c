package constant

// Watermill topics.
const (
	TopicVideoIndexed = "VIDEO_INDEXED"
	TopicChatAnswered = "CHAT_ANSWERED"
)

// Synthetic video id used when the transcript was pasted manually instead
// of fetched. Eleven characters like a real id, but never a valid one.
const ManualVideoId = "manual-0000"
