package sentiment

import (
	"strings"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

const (
	sentimentWordWeight = 0.4
	neutralWordWeight   = 0.3
	neutralBase         = 0.3

	comparativeWeight = 0.2
	cueWeight         = 0.1
	emojiWeight       = 0.5
	excitementWeight  = 0.3

	intensifierFactor       = 1.3
	diminisherFactor        = 0.8
	diminisherNeutralFactor = 1.2
)

// defaultDistribution is the uninformative-text prior returned when a
// text carries no sentiment signal at all.
var defaultDistribution = models.Distribution{
	{Label: models.LabelNeutral, Score: 0.6},
	{Label: models.LabelPositive, Score: 0.25},
	{Label: models.LabelNegative, Score: 0.15},
}

// TextFeatures is the running state of one local estimation pass.
type TextFeatures struct {
	Positive float64
	Negative float64
	Neutral  float64

	Negation    bool
	Intensifier bool
	Diminisher  bool
}

// LocalBackend is a heuristic that produces a full distribution from
// raw text plus the normalizer's cue record. It must never fail.
type LocalBackend func(raw string, m normalizer.Markers) models.Distribution

// EstimateLocal is the default LocalBackend: a deterministic lexicon
// heuristic used whenever no remote classifier result is available.
func EstimateLocal(raw string, m normalizer.Markers) models.Distribution {
	f, hasSignal := computeFeatures(raw, m)
	if !hasSignal {
		return defaultDistribution
	}

	// Context adjustments apply in this fixed order: negation flips
	// polarity first, intensity scales whatever polarity won the flip,
	// and a diminisher hedges both poles toward neutral.
	if f.Negation {
		f.Positive, f.Negative = f.Negative, f.Positive
	}
	if f.Intensifier {
		if f.Positive >= f.Negative {
			f.Positive *= intensifierFactor
		} else {
			f.Negative *= intensifierFactor
		}
	}
	if f.Diminisher {
		f.Positive *= diminisherFactor
		f.Negative *= diminisherFactor
		f.Neutral *= diminisherNeutralFactor
	}

	sum := f.Positive + f.Negative + f.Neutral
	if sum == 0 {
		return defaultDistribution
	}

	return models.NewDistribution(map[models.SentimentLabel]float64{
		models.LabelPositive: f.Positive / sum,
		models.LabelNeutral:  f.Neutral / sum,
		models.LabelNegative: f.Negative / sum,
	})
}

// computeFeatures scans the case-folded raw text against the fixed
// word lists and folds in the normalizer's cues. The second return
// reports whether anything scored at all: the base neutral prior does
// not count as signal, so a text with no matches falls through to the
// default distribution instead of collapsing to pure neutral.
func computeFeatures(raw string, m normalizer.Markers) (TextFeatures, bool) {
	f := TextFeatures{
		Neutral:     neutralBase,
		Negation:    m.Negation,
		Intensifier: m.Intensifier,
		Diminisher:  m.Diminisher,
	}
	hasSignal := false

	folded := strings.ToLower(raw)

	for _, re := range positiveWordRes {
		if n := len(re.FindAllStringIndex(folded, -1)); n > 0 {
			f.Positive += float64(n) * sentimentWordWeight
			hasSignal = true
		}
	}
	for _, re := range negativeWordRes {
		if n := len(re.FindAllStringIndex(folded, -1)); n > 0 {
			f.Negative += float64(n) * sentimentWordWeight
			hasSignal = true
		}
	}
	for _, re := range neutralWordRes {
		if n := len(re.FindAllStringIndex(folded, -1)); n > 0 {
			f.Neutral += float64(n) * neutralWordWeight
			hasSignal = true
		}
	}

	for _, sentence := range splitSentences(folded) {
		if strings.Contains(sentence, "better than") {
			f.Positive += comparativeWeight
			hasSignal = true
		}
		if strings.Contains(sentence, "worse than") {
			f.Negative += comparativeWeight
			hasSignal = true
		}

		words := strings.Fields(sentence)
		for _, cue := range conditionalWords {
			if containsWord(words, cue) {
				f.Neutral += cueWeight
				hasSignal = true
			}
		}
		if len(words) > 0 && containsWord(questionWords, words[0]) {
			f.Neutral += cueWeight
			hasSignal = true
		}
	}

	if m.PositiveEmoji {
		f.Positive += emojiWeight
		hasSignal = true
	}
	if m.NegativeEmoji {
		f.Negative += emojiWeight
		hasSignal = true
	}
	if m.NeutralEmoji {
		f.Neutral += emojiWeight
		hasSignal = true
	}

	if m.Excitement {
		if f.Positive >= f.Negative {
			f.Positive += excitementWeight
		} else {
			f.Negative += excitementWeight
		}
		hasSignal = true
	}

	return f, hasSignal
}

// splitSentences splits on terminal punctuation and drops empty
// segments.
func splitSentences(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(segments))
	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func containsWord(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}
