package classifier

import (
	"context"
	"log/slog"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

const (
	DefaultPrimaryModel   = "cardiffnlp/twitter-roberta-base-sentiment"
	DefaultSecondaryModel = "nlptown/bert-base-multilingual-uncased-sentiment"
)

// robertaVocabulary maps the generic LABEL_n scheme (and the spelled
// out variant newer checkpoints emit) to canonical labels.
var robertaVocabulary = map[string]models.SentimentLabel{
	"LABEL_0":  models.LabelNegative,
	"LABEL_1":  models.LabelNeutral,
	"LABEL_2":  models.LabelPositive,
	"negative": models.LabelNegative,
	"neutral":  models.LabelNeutral,
	"positive": models.LabelPositive,
}

// starsVocabulary maps 1-5 star ratings to canonical labels.
var starsVocabulary = map[string]models.SentimentLabel{
	"1 star":  models.LabelNegative,
	"2 stars": models.LabelNegative,
	"3 stars": models.LabelNeutral,
	"4 stars": models.LabelPositive,
	"5 stars": models.LabelPositive,
}

// HFClassifier calls one hosted model through the HuggingFace gateway
// and applies its vocabulary mapping. The credential is read through a
// token source at call time so a reconfigured credential takes effect
// without rebuilding adapters.
type HFClassifier struct {
	name       string
	model      string
	vocabulary map[string]models.SentimentLabel
	gateway    *clients.HuggingFaceClient
	token      func() string
}

func NewRoberta(gateway *clients.HuggingFaceClient, model string, token func() string) *HFClassifier {
	if model == "" {
		model = DefaultPrimaryModel
	}
	return &HFClassifier{
		name:       "roberta",
		model:      model,
		vocabulary: robertaVocabulary,
		gateway:    gateway,
		token:      token,
	}
}

func NewStars(gateway *clients.HuggingFaceClient, model string, token func() string) *HFClassifier {
	if model == "" {
		model = DefaultSecondaryModel
	}
	return &HFClassifier{
		name:       "stars",
		model:      model,
		vocabulary: starsVocabulary,
		gateway:    gateway,
		token:      token,
	}
}

func (c *HFClassifier) Name() string { return c.name }

func (c *HFClassifier) Classify(ctx context.Context, text string) Outcome {
	raw, err := c.gateway.Classify(ctx, c.model, c.token(), text)
	if err != nil {
		slog.Warn("[Classifier] Remote classification failed",
			slog.String("classifier", c.name),
			slog.String("error", err.Error()))
		return Failure()
	}
	return Success(c.mapScores(raw))
}

// mapScores folds raw vocabulary entries into canonical labels.
// Several raw labels may map to the same class (star ratings do), so
// scores accumulate. Unmapped labels are dropped, not defaulted.
func (c *HFClassifier) mapScores(raw []models.RawClassScore) models.Distribution {
	scores := make(map[models.SentimentLabel]float64, len(models.CanonicalLabels))
	for _, rs := range raw {
		label, ok := c.vocabulary[rs.Label]
		if !ok {
			slog.Warn("[Classifier] Dropping unmapped label",
				slog.String("classifier", c.name),
				slog.String("label", rs.Label))
			continue
		}
		scores[label] += rs.Score
	}
	return models.NewDistribution(scores)
}
