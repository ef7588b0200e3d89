package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IT-VAX/SentimentAnalysis/internal/classifier"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

func dist(pos, neu, neg float64) models.Distribution {
	return models.NewDistribution(map[models.SentimentLabel]float64{
		models.LabelPositive: pos,
		models.LabelNeutral:  neu,
		models.LabelNegative: neg,
	})
}

func TestCombineEnsembleFusion(t *testing.T) {
	primary := classifier.Success(dist(0.9, 0.05, 0.05))
	// A 5-star verdict mapped to positive by the adapter.
	secondary := classifier.Success(dist(0.8, 0, 0))

	got := Combine(primary, secondary, "", normalizer.Markers{}, EstimateLocal)

	require.Len(t, got, 3)
	assert.Equal(t, models.LabelPositive, got.Top().Label)
	assert.InDelta(t, 0.9*0.7+0.8*0.3, got.Top().Score, 1e-9) // 0.87
	assert.InDelta(t, 0.05*0.7, got.Get(models.LabelNeutral), 1e-9)
	assert.InDelta(t, 0.05*0.7, got.Get(models.LabelNegative), 1e-9)
}

func TestCombinePrimaryOnly(t *testing.T) {
	primary := classifier.Success(dist(0.1, 0.2, 0.7))

	got := Combine(primary, classifier.Failure(), "", normalizer.Markers{}, EstimateLocal)

	assert.Equal(t, primary.Scores, got)
	assert.Equal(t, models.LabelNegative, got.Top().Label)
}

func TestCombineSecondaryOnly(t *testing.T) {
	secondary := classifier.Success(dist(0.75, 0.25, 0))

	got := Combine(classifier.Failure(), secondary, "", normalizer.Markers{}, EstimateLocal)

	assert.Equal(t, secondary.Scores, got)
}

func TestCombineBothFailedFallsBackToLocal(t *testing.T) {
	localCalled := false
	local := func(raw string, m normalizer.Markers) models.Distribution {
		localCalled = true
		return dist(0.5, 0.3, 0.2)
	}

	got := Combine(classifier.Failure(), classifier.Failure(), "whatever", normalizer.Markers{}, local)

	assert.True(t, localCalled)
	assert.Equal(t, models.LabelPositive, got.Top().Label)
	require.Len(t, got, 3)
}

func TestCombineNeverReturnsEmpty(t *testing.T) {
	got := Combine(classifier.Failure(), classifier.Failure(), "", normalizer.Markers{}, EstimateLocal)

	require.Len(t, got, 3)
	for _, cs := range got {
		assert.GreaterOrEqual(t, cs.Score, 0.0)
	}
}
