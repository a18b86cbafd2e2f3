package domain

// MessageKind classifies a queued message for processing cost.
type MessageKind string

const (
	KindText   MessageKind = "text"
	KindImage  MessageKind = "image"
	KindFile   MessageKind = "file"
	KindSystem MessageKind = "system"
)

// QueuedMessage is one message waiting in a conversation queue.
type QueuedMessage struct {
	ID           string      `json:"id"`
	Conversation string      `json:"conversation_id"`
	Sender       string      `json:"sender_id"`
	Content      string      `json:"content"`
	Timestamp    uint64      `json:"timestamp"`
	Kind         MessageKind `json:"kind"`
}
