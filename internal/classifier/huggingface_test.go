package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

func staticToken(token string) func() string {
	return func() string { return token }
}

func inferenceServer(t *testing.T, handler http.HandlerFunc) *clients.HuggingFaceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return clients.NewHuggingFaceClient(server.URL + "/")
}

func respond(w http.ResponseWriter, scores []models.RawClassScore) {
	json.NewEncoder(w).Encode(models.InferenceResponse{scores})
}

func TestRobertaMapsGenericLabels(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []models.RawClassScore{
			{Label: "LABEL_2", Score: 0.9},
			{Label: "LABEL_1", Score: 0.07},
			{Label: "LABEL_0", Score: 0.03},
		})
	})

	out := NewRoberta(gateway, "", staticToken("token")).Classify(context.Background(), "love it")

	require.True(t, out.OK)
	require.Len(t, out.Scores, 3)
	assert.Equal(t, models.LabelPositive, out.Scores.Top().Label)
	assert.InDelta(t, 0.9, out.Scores.Get(models.LabelPositive), 1e-9)
	assert.InDelta(t, 0.07, out.Scores.Get(models.LabelNeutral), 1e-9)
	assert.InDelta(t, 0.03, out.Scores.Get(models.LabelNegative), 1e-9)
}

func TestStarsAccumulateIntoClasses(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []models.RawClassScore{
			{Label: "5 stars", Score: 0.5},
			{Label: "4 stars", Score: 0.3},
			{Label: "3 stars", Score: 0.05},
			{Label: "2 stars", Score: 0.05},
			{Label: "1 star", Score: 0.1},
		})
	})

	out := NewStars(gateway, "", staticToken("token")).Classify(context.Background(), "pretty nice")

	require.True(t, out.OK)
	assert.InDelta(t, 0.8, out.Scores.Get(models.LabelPositive), 1e-9)
	assert.InDelta(t, 0.05, out.Scores.Get(models.LabelNeutral), 1e-9)
	assert.InDelta(t, 0.15, out.Scores.Get(models.LabelNegative), 1e-9)
}

func TestUnmappedLabelsAreDropped(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []models.RawClassScore{
			{Label: "LABEL_2", Score: 0.6},
			{Label: "LABEL_7", Score: 0.4},
		})
	})

	out := NewRoberta(gateway, "", staticToken("token")).Classify(context.Background(), "hm")

	require.True(t, out.OK)
	assert.InDelta(t, 0.6, out.Scores.Get(models.LabelPositive), 1e-9)
	assert.InDelta(t, 0.0, out.Scores.Get(models.LabelNegative), 1e-9)
}

func TestClassifySendsAuthAndBody(t *testing.T) {
	var gotAuth string
	var gotReq models.InferenceRequest

	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		respond(w, []models.RawClassScore{{Label: "LABEL_1", Score: 1}})
	})

	out := NewRoberta(gateway, "", staticToken("secret")).Classify(context.Background(), "plain text")

	require.True(t, out.OK)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "plain text", gotReq.Inputs)
}

func TestClassifyNonOKStatusIsFailure(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	out := NewRoberta(gateway, "", staticToken("token")).Classify(context.Background(), "text")

	assert.False(t, out.OK)
}

func TestClassifyMalformedPayloadIsFailure(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"loading"}`))
	})

	out := NewRoberta(gateway, "", staticToken("token")).Classify(context.Background(), "text")

	assert.False(t, out.OK)
}

func TestClassifyEmptyResultIsFailure(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	out := NewStars(gateway, "", staticToken("token")).Classify(context.Background(), "text")

	assert.False(t, out.OK)
}

func TestTokenSourceReadPerCall(t *testing.T) {
	gateway := inferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []models.RawClassScore{{Label: "LABEL_1", Score: 1}})
	})

	calls := 0
	adapter := NewRoberta(gateway, "", func() string {
		calls++
		return "token"
	})

	adapter.Classify(context.Background(), "one")
	adapter.Classify(context.Background(), "two")

	assert.Equal(t, 2, calls)
}

func TestDefaultModels(t *testing.T) {
	assert.Equal(t, DefaultPrimaryModel, NewRoberta(nil, "", staticToken("")).model)
	assert.Equal(t, DefaultSecondaryModel, NewStars(nil, "", staticToken("")).model)
	assert.Equal(t, "custom/model", NewRoberta(nil, "custom/model", staticToken("")).model)
}
