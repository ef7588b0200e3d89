package models

import "time"

type AnalysisRequest struct {
	ContentID string `json:"content_id"`
	Text      string `json:"text"`
}

type AnalysisResult struct {
	ContentID      string         `json:"content_id"`
	Text           string         `json:"text"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
	SentimentScore float64        `json:"sentiment_score"`
	Distribution   Distribution   `json:"distribution"`
	Keywords       []string       `json:"keywords,omitempty"`
	AnalyzedAt     time.Time      `json:"analyzed_at"`
}
