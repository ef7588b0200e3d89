package sentiment

import (
	"log/slog"

	"github.com/IT-VAX/SentimentAnalysis/internal/classifier"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

// Ensemble weights. The 70/30 split is a design choice, not a learned
// parameter: the primary model is the higher-precision general-purpose
// one, so it carries most of the weight.
const (
	primaryWeight   = 0.7
	secondaryWeight = 0.3
)

// Combine reconciles the settled outcomes of both remote calls into
// one distribution, falling back to the local backend when neither
// succeeded. It always returns a full 3-entry distribution:
//
//   - both OK      → weighted ensemble fusion
//   - primary OK   → primary as-is
//   - secondary OK → secondary as-is (its vocabulary was already
//     mapped by the adapter)
//   - neither      → local backend
func Combine(primary, secondary classifier.Outcome, raw string, m normalizer.Markers, local LocalBackend) models.Distribution {
	switch {
	case primary.OK && secondary.OK:
		return fuse(primary.Scores, secondary.Scores)
	case primary.OK:
		return primary.Scores
	case secondary.OK:
		return secondary.Scores
	default:
		slog.Warn("[Combiner] No remote classifier available, using local estimator")
		return local(raw, m)
	}
}

// fuse accumulates the weighted per-label sums. The result need not
// sum to 1; only the ranking matters downstream.
func fuse(primary, secondary models.Distribution) models.Distribution {
	scores := make(map[models.SentimentLabel]float64, len(models.CanonicalLabels))
	for _, label := range models.CanonicalLabels {
		scores[label] = primaryWeight*primary.Get(label) + secondaryWeight*secondary.Get(label)
	}
	return models.NewDistribution(scores)
}
