package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "check this out", RemoveLinks("check this [out](https://example.com/page)"))
	assert.Equal(t, "see  now", RemoveLinks("see https://example.com now"))
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Heading\n\nsome **bold** text")

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "**")
	assert.Contains(t, got, "bold")
}

func TestVaderBackendPolarity(t *testing.T) {
	dist := VaderBackend("I absolutely love this, it is wonderful", normalizer.Markers{})
	assert.Equal(t, models.LabelPositive, dist.Top().Label)

	dist = VaderBackend("best product ever, amazing quality", normalizer.Markers{})
	assert.Equal(t, models.LabelPositive, dist.Top().Label)

	dist = VaderBackend("this is horrible and I hate it", normalizer.Markers{})
	assert.Equal(t, models.LabelNegative, dist.Top().Label)

	dist = VaderBackend("the report covers the third quarter", normalizer.Markers{})
	assert.Equal(t, models.LabelNeutral, dist.Top().Label)
}

func TestVaderBackendAgreesWithCompoundVerdict(t *testing.T) {
	texts := []string{
		"I absolutely love this, it is wonderful",
		"best product ever, amazing quality",
		"this is horrible and I hate it",
		"the meeting starts at noon",
	}

	for _, text := range texts {
		_, wantLabel := AnalyzeWithVADER(text)
		dist := VaderBackend(text, normalizer.Markers{})

		require.Len(t, dist, 3, "text %q", text)
		assert.Equal(t, wantLabel, dist.Top().Label, "text %q", text)

		sum := 0.0
		for i, cs := range dist {
			assert.GreaterOrEqual(t, cs.Score, 0.0)
			if i > 0 {
				assert.GreaterOrEqual(t, dist[i-1].Score, cs.Score)
			}
			sum += cs.Score
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "text %q", text)
	}
}

func TestAnalyzeWithVADERThresholds(t *testing.T) {
	compound, label := AnalyzeWithVADER("what a fantastic day")
	assert.Equal(t, models.LabelPositive, label)
	assert.GreaterOrEqual(t, compound, 0.20)

	_, label = AnalyzeWithVADER("the report covers the third quarter")
	assert.Equal(t, models.LabelNeutral, label)
}
