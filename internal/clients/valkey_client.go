package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	VALKEY_INFERENCE_PREFIX = "sentiment:inference:"
	VALKEY_INFERENCE_TTL    = 86400
)

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		client, err := newValkeyConn()
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func newValkeyConn() (valkey.Client, error) {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if c := client.Do(ctx, client.B().Ping().Build()); c.Error() != nil {
		client.Close()
		return nil, c.Error()
	}

	return client, nil
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := newValkeyConn()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Error: Valkey client is not initilialized")
	}
	return valkeyInstance
}

// CacheInference stores a raw remote classification keyed by model and
// input text. Only remote responses are cached; combined results are
// never persisted.
func (vc *ValkeyClient) CacheInference(ctx context.Context, model, text string, scores []models.RawClassScore) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}

	key := inferenceKey(model, text)
	res := vc.DoWithRetry(ctx, vc.Client.B().Set().Key(key).Value(string(data)).ExSeconds(VALKEY_INFERENCE_TTL).Build(), 3)
	if err := res.Error(); err != nil {
		return err
	}

	slog.Info("[ValkeyClient] Cached inference response",
		slog.String("model", model))
	return nil
}

// LookupInference returns a previously cached classification, if any.
func (vc *ValkeyClient) LookupInference(ctx context.Context, model, text string) ([]models.RawClassScore, bool) {
	key := inferenceKey(model, text)
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(key).Build(), 3)

	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return nil, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var scores []models.RawClassScore
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, false
	}
	return scores, true
}

func inferenceKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return VALKEY_INFERENCE_PREFIX + hex.EncodeToString(sum[:])
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
