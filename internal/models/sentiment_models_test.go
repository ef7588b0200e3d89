package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistributionFillsAllClasses(t *testing.T) {
	dist := NewDistribution(map[SentimentLabel]float64{LabelPositive: 0.7})

	require.Len(t, dist, 3)
	assert.Equal(t, ClassScore{Label: LabelPositive, Score: 0.7}, dist[0])
	assert.Equal(t, 0.0, dist.Get(LabelNeutral))
	assert.Equal(t, 0.0, dist.Get(LabelNegative))
}

func TestNewDistributionTieBreaksByCanonicalOrder(t *testing.T) {
	dist := NewDistribution(map[SentimentLabel]float64{
		LabelPositive: 0.5,
		LabelNeutral:  0.5,
		LabelNegative: 0.5,
	})

	assert.Equal(t, LabelPositive, dist[0].Label)
	assert.Equal(t, LabelNeutral, dist[1].Label)
	assert.Equal(t, LabelNegative, dist[2].Label)
}

func TestTopOnEmptyDistribution(t *testing.T) {
	var dist Distribution
	assert.Equal(t, LabelNeutral, dist.Top().Label)
}
