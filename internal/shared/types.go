package shared

// Asynq task types and queues shared between the API and the worker.
const (
	TypeProcessBookCover = "book:process_cover"

	QueueBook = "book"
)

// ProcessBookCoverPayload is the JSON payload for a cover processing task.
type ProcessBookCoverPayload struct {
	BookID      int64  `json:"book_id"`
	OriginalKey string `json:"original_key"`
}
