package kafka_client

import "time"

const (
	KAFKA_TOPIC_SENTIMENT_REQUESTS = "sentiment-requests" // batched texts awaiting analysis
	KAFKA_TOPIC_SENTIMENT_RESULTS  = "sentiment-results"  // batched analysis results for storage
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
