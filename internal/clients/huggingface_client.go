package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

var (
	huggingFaceInstance *HuggingFaceClient
	huggingFaceOnce     sync.Once
)

type HuggingFaceClient struct {
	Client  *http.Client
	BaseURL string

	cache *ValkeyClient
}

func GetHuggingFaceClient() *HuggingFaceClient {
	huggingFaceOnce.Do(func() {
		baseURL := os.Getenv("HF_API_BASE_URL")
		if baseURL == "" {
			baseURL = HF_API_BASE_URL
		}
		slog.Info("[HuggingFaceClient] Initializing Client",
			slog.Duration("timeout", CLASSIFY_TIMEOUT),
			slog.String("base_url", baseURL))
		huggingFaceInstance = NewHuggingFaceClient(baseURL)
	})
	return huggingFaceInstance
}

// NewHuggingFaceClient builds a non-singleton client; tests point it
// at an httptest server.
func NewHuggingFaceClient(baseURL string) *HuggingFaceClient {
	return &HuggingFaceClient{
		Client: &http.Client{
			Timeout: CLASSIFY_TIMEOUT,
		},
		BaseURL: baseURL,
	}
}

// SetCache attaches an optional Valkey response cache. A nil cache
// disables caching.
func (h *HuggingFaceClient) SetCache(cache *ValkeyClient) {
	h.cache = cache
}

// Classify posts text to a hosted model and returns its ranked label
// list. Transport failures, non-2xx statuses, and malformed payloads
// all come back as errors; the classifier adapters turn them into
// failure outcomes so nothing past the gateway ever sees them.
func (h *HuggingFaceClient) Classify(ctx context.Context, model, token, text string) ([]models.RawClassScore, error) {
	if h.cache != nil {
		if scores, ok := h.cache.LookupInference(ctx, model, text); ok {
			return scores, nil
		}
	}

	start := time.Now()

	body, err := json.Marshal(models.InferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, CLASSIFY_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.doWithRetry(ctx, req, body)
	if err != nil {
		slog.Warn("[HuggingFaceClient] Request failed after retries",
			slog.String("model", model),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("[HuggingFaceClient] Non-2xx response",
			slog.String("model", model),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out models.InferenceResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		slog.Warn("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("model", model),
			getPreview(respBody))
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return nil, fmt.Errorf("empty classification for model %s", model)
	}

	slog.Info("[HuggingFaceClient] Classification successful",
		slog.String("model", model),
		slog.Duration("elapsed", time.Since(start)))

	if h.cache != nil {
		if err := h.cache.CacheInference(ctx, model, text, out[0]); err != nil {
			slog.Warn("[HuggingFaceClient] Failed to cache response",
				slog.String("error", err.Error()))
		}
	}

	return out[0], nil
}

// AnalyzerHealthCheck probes a model with a trivial input so the
// health monitor can flip its readiness flag.
func (h *HuggingFaceClient) AnalyzerHealthCheck(ctx context.Context, model, token string) bool {
	_, err := h.Classify(ctx, model, token, "ok")
	return err == nil
}

// doWithRetry retries transport errors and 5xx responses with doubling
// backoff. The context deadline set by Classify bounds the whole loop.
func (h *HuggingFaceClient) doWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		req.Body = io.NopCloser(bytes.NewReader(body))
		resp, err = h.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Warn("[HuggingFaceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	// The last 5xx response's body is already closed; report it as an
	// error rather than handing back an unreadable response.
	if err == nil && resp != nil {
		err = fmt.Errorf("exhausted %d attempts, last status code %d", MAX_RETRIES, resp.StatusCode)
	}
	return nil, err
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
