// Package classifier models each remote sentiment backend as an
// adapter that speaks its own label vocabulary on the wire but only
// ever emits the canonical 3-class space. Failure is a value, not an
// error: a failed call settles as a not-OK Outcome and the combiner
// decides what to do with it.
package classifier

import (
	"context"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

// Outcome is the result of one classification attempt. When OK is
// false the Scores field is meaningless; an OK outcome always carries
// a full 3-entry distribution. This keeps a legitimately low-scoring
// classification distinguishable from a failed call.
type Outcome struct {
	OK     bool
	Scores models.Distribution
}

func Success(scores models.Distribution) Outcome {
	return Outcome{OK: true, Scores: scores}
}

func Failure() Outcome {
	return Outcome{}
}

type Classifier interface {
	Name() string
	Classify(ctx context.Context, text string) Outcome
}
