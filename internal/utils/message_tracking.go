package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// MessageTracker correlates an in-flight analysis batch with the Kafka
// message it arrived on, keyed by the batch's leading content ID.
// Entries are consumed on retrieval: one commit per tracked message.
type MessageTracker struct {
	messages sync.Map
}

func (t *MessageTracker) Track(contentID string, msg *kafka.Message) {
	t.messages.Store(contentID, msg)
}

// Take returns and removes the tracked message for a content ID.
func (t *MessageTracker) Take(contentID string) (*kafka.Message, bool) {
	msg, ok := t.messages.LoadAndDelete(contentID)
	if !ok {
		return nil, false
	}
	return msg.(*kafka.Message), true
}

var batchTracker MessageTracker

func TrackMessage(contentID string, msg *kafka.Message) {
	batchTracker.Track(contentID, msg)
}

func GetMessageForContent(contentID string) (*kafka.Message, bool) {
	return batchTracker.Take(contentID)
}
