package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

var vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// VaderBackend is an alternative LocalBackend built on VADER. It
// ignores the normalizer cues since VADER handles negation and
// boosting itself. The verdict comes from the compound score: the
// per-token Positive/Neutral/Negative proportions measure lexicon
// occupancy, not sentiment, and would rank almost any text neutral.
func VaderBackend(raw string, _ normalizer.Markers) models.Distribution {
	compound, label := AnalyzeWithVADER(raw)
	strength := math.Abs(compound)

	scores := make(map[models.SentimentLabel]float64, 3)
	switch label {
	case models.LabelPositive, models.LabelNegative:
		winner := 0.5 + strength/2
		rest := 1 - winner
		scores[label] = winner
		scores[models.LabelNeutral] = rest * 0.75
		if label == models.LabelPositive {
			scores[models.LabelNegative] = rest * 0.25
		} else {
			scores[models.LabelPositive] = rest * 0.25
		}
	default:
		scores[models.LabelNeutral] = 1 - strength
		if compound >= 0 {
			scores[models.LabelPositive] = strength * 0.75
			scores[models.LabelNegative] = strength * 0.25
		} else {
			scores[models.LabelNegative] = strength * 0.75
			scores[models.LabelPositive] = strength * 0.25
		}
	}

	return models.NewDistribution(scores)
}

// AnalyzeWithVADER returns the compound score and the label it maps
// to under the usual ±0.20 thresholds.
func AnalyzeWithVADER(text string) (float64, models.SentimentLabel) {
	plainText := ConvertMarkdownToText(text)

	scores := vaderAnalyzer.PolarityScores(plainText)
	compound := scores.Compound

	var label models.SentimentLabel
	if compound >= 0.20 {
		label = models.LabelPositive
	} else if compound <= -0.20 {
		label = models.LabelNegative
	} else {
		label = models.LabelNeutral
	}

	return compound, label
}
