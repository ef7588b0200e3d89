package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyServerErrorExhaustsRetries(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewHuggingFaceClient(server.URL + "/")
	scores, err := client.Classify(context.Background(), "some/model", "token", "text")

	require.Error(t, err)
	assert.Nil(t, scores)
	assert.EqualValues(t, MAX_RETRIES, hits.Load())
}

func TestClassifyClientErrorDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "bad input", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	client := NewHuggingFaceClient(server.URL + "/")
	_, err := client.Classify(context.Background(), "some/model", "token", "text")

	require.Error(t, err)
	assert.EqualValues(t, 1, hits.Load())
}
