package clients

import "time"

const (
	// One classification attempt, retries included, never runs longer
	// than this.
	CLASSIFY_TIMEOUT = 15 * time.Second

	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 500 * time.Millisecond

	USER_AGENT = "sentiment-analysis-client/1.0 (+https://github.com/IT-VAX/SentimentAnalysis)"

	HF_API_BASE_URL = "https://api-inference.huggingface.co/models/"
)
