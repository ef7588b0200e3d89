package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorAnalyzerHealth probes a hosted model on a fixed cadence and
// flips the shared readiness flag so callers can prefer the local
// estimator when the remote side is degraded.
func MonitorAnalyzerHealth(ctx context.Context, model string, token func() string, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := clients.GetHuggingFaceClient().AnalyzerHealthCheck(ctx, model, token())
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Analyzer is unhealthy",
					slog.String("model", model))
			}
		}
	}
}
