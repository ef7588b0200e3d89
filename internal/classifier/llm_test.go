package classifier

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

func llmServer(t *testing.T, verdict string) *openai.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, verdict)
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestLLMVerdictMapsToDegenerateDistribution(t *testing.T) {
	out := NewLLM(llmServer(t, "Positive."), "").Classify(context.Background(), "love this")

	require.True(t, out.OK)
	assert.Equal(t, models.LabelPositive, out.Scores.Top().Label)
	assert.InDelta(t, 1.0, out.Scores.Get(models.LabelPositive), 1e-9)
	assert.InDelta(t, 0.0, out.Scores.Get(models.LabelNegative), 1e-9)
}

func TestLLMUnmappableVerdictIsFailure(t *testing.T) {
	out := NewLLM(llmServer(t, "ambivalent"), "").Classify(context.Background(), "hm")

	assert.False(t, out.OK)
}

func TestLLMTransportErrorIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(cfg)

	out := NewLLM(client, "").Classify(context.Background(), "hm")

	assert.False(t, out.OK)
}
