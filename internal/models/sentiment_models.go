package models

import "sort"

type SentimentLabel string

const (
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
	LabelPositive SentimentLabel = "positive"
)

// CanonicalLabels is the fixed 3-class space every classifier
// vocabulary is mapped into.
var CanonicalLabels = []SentimentLabel{LabelPositive, LabelNeutral, LabelNegative}

type ClassScore struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// Distribution holds one ClassScore per canonical label, sorted
// descending by score.
type Distribution []ClassScore

// Top returns the highest ranked entry.
func (d Distribution) Top() ClassScore {
	if len(d) == 0 {
		return ClassScore{Label: LabelNeutral}
	}
	return d[0]
}

// Get returns the score for a label, 0 when absent.
func (d Distribution) Get(label SentimentLabel) float64 {
	for _, cs := range d {
		if cs.Label == label {
			return cs.Score
		}
	}
	return 0
}

// NewDistribution builds a full 3-entry distribution from per-label
// scores. Labels missing from the map come out as 0 so the caller
// always sees all three classes. Sorting is stable over the canonical
// label order, so ties rank positive before neutral before negative.
func NewDistribution(scores map[SentimentLabel]float64) Distribution {
	dist := make(Distribution, 0, len(CanonicalLabels))
	for _, label := range CanonicalLabels {
		dist = append(dist, ClassScore{Label: label, Score: scores[label]})
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Score > dist[j].Score
	})
	return dist
}
