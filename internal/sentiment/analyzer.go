// Package sentiment holds the scoring core: the local lexicon
// estimator, the ensemble combiner, the keyword extractor, and the
// Analyzer service that ties them to the remote classifier adapters.
package sentiment

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IT-VAX/SentimentAnalysis/internal/classifier"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

const (
	// Batch analysis runs this many texts concurrently, then pauses
	// between groups to respect remote rate limits.
	BATCH_GROUP_SIZE = 3
	BATCH_PAUSE      = 2 * time.Second
)

// Config is built once by the composition root and handed to New.
// There is no implicit global state: one process, one Analyzer, one
// explicitly owned configuration.
type Config struct {
	Token     string
	Ensemble  bool
	Primary   classifier.Classifier
	Secondary classifier.Classifier
	Local     LocalBackend

	// RemoteHealthy, when set, is the health monitor's readiness flag;
	// while it reads false the remote classifiers are skipped entirely.
	RemoteHealthy *atomic.Bool
}

// Analyzer is the process-wide sentiment service. Credential and
// ensemble mode are mutable at runtime behind a read-mostly lock;
// everything else is fixed at construction.
type Analyzer struct {
	mu        sync.RWMutex
	token     string
	ensemble  bool
	primary   classifier.Classifier
	secondary classifier.Classifier

	local         LocalBackend
	remoteHealthy *atomic.Bool
}

func New(cfg Config) *Analyzer {
	local := cfg.Local
	if local == nil {
		local = EstimateLocal
	}
	return &Analyzer{
		token:         cfg.Token,
		ensemble:      cfg.Ensemble,
		primary:       cfg.Primary,
		secondary:     cfg.Secondary,
		local:         local,
		remoteHealthy: cfg.RemoteHealthy,
	}
}

// SetClassifiers wires the remote adapters. Adapters read the
// credential through Credential, so they are usually constructed
// after the Analyzer and attached here.
func (a *Analyzer) SetClassifiers(primary, secondary classifier.Classifier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.primary = primary
	a.secondary = secondary
}

func (a *Analyzer) SetCredential(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

func (a *Analyzer) Credential() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *Analyzer) SetEnsemble(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensemble = enabled
}

// AnalyzeOne classifies a single text. It always returns a valid
// 3-class distribution: remote failures, missing credentials, and
// zero-signal inputs all degrade to defined outputs, never errors.
func (a *Analyzer) AnalyzeOne(ctx context.Context, text string) models.Distribution {
	normalized, markers := normalizer.Normalize(text)

	a.mu.RLock()
	token := a.token
	ensemble := a.ensemble
	primary := a.primary
	secondary := a.secondary
	a.mu.RUnlock()

	// Without a credential, or while the health monitor reports the
	// remote side down, remote calls are never attempted.
	if token == "" || primary == nil || !a.remoteAvailable() {
		return a.local(text, markers)
	}

	// Both calls settle independently; one failing never cancels the
	// other. The combiner runs only after both outcomes are known.
	var primaryOut, secondaryOut classifier.Outcome
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		primaryOut = primary.Classify(ctx, normalized)
	}()

	if ensemble && secondary != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			secondaryOut = secondary.Classify(ctx, normalized)
		}()
	}

	wg.Wait()

	return Combine(primaryOut, secondaryOut, text, markers, a.local)
}

// remoteAvailable reports the health monitor's view of the remote
// side; without a monitor attached the remote is assumed reachable.
func (a *Analyzer) remoteAvailable() bool {
	return a.remoteHealthy == nil || a.remoteHealthy.Load()
}

// AnalyzeBatch analyzes texts in groups of BATCH_GROUP_SIZE with a
// BATCH_PAUSE between groups. Output order always matches input
// order regardless of per-item completion order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) []models.Distribution {
	results := make([]models.Distribution, len(texts))

	for start := 0; start < len(texts); start += BATCH_GROUP_SIZE {
		end := start + BATCH_GROUP_SIZE
		if end > len(texts) {
			end = len(texts)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = a.AnalyzeOne(ctx, texts[i])
			}(i)
		}
		wg.Wait()

		if end < len(texts) {
			time.Sleep(BATCH_PAUSE)
		}
	}

	return results
}

// ExtractKeywords explains an already-decided label for a text.
func (a *Analyzer) ExtractKeywords(text string, label models.SentimentLabel) []string {
	return ExtractKeywords(text, label)
}
