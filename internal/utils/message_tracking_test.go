package utils

import (
	"testing"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTrackerConsumesOnTake(t *testing.T) {
	var tracker MessageTracker
	msg := &kafka.Message{Key: []byte("content-42")}

	tracker.Track("content-42", msg)

	got, ok := tracker.Take("content-42")
	require.True(t, ok)
	assert.Same(t, msg, got)

	// Consumed: a second take finds nothing.
	_, ok = tracker.Take("content-42")
	assert.False(t, ok)
}

func TestMessageTrackerUnknownContentID(t *testing.T) {
	var tracker MessageTracker

	got, ok := tracker.Take("never-tracked")
	assert.False(t, ok)
	assert.Nil(t, got)
}
