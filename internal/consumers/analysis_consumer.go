package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients/kafka_client"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/sentiment"
	"github.com/IT-VAX/SentimentAnalysis/internal/utils"
)

var resultBuffer = utils.NewBatchBuffer[models.AnalysisResult]()

// NewAnalysisConsumer returns a consumer loop bound to the given
// Analyzer; the loop reads request batches, analyzes them in input
// order, and forwards results for storage.
func NewAnalysisConsumer(analyzer *sentiment.Analyzer) func(ctx context.Context, consumer *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		startAnalysisConsumer(ctx, consumer, analyzer)
	}
}

func startAnalysisConsumer(ctx context.Context, consumer *kafka.Consumer, analyzer *sentiment.Analyzer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[AnalysisConsumer] Listening for analysis requests")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[AnalysisConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var requests []models.AnalysisRequest
			if err := utils.DeserializeFromJSON(msg.Value, &requests); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(requests) == 0 {
				continue
			}

			utils.TrackMessage(requests[0].ContentID, msg)

			texts := make([]string, len(requests))
			for i, request := range requests {
				texts[i] = request.Text
			}

			distributions := analyzer.AnalyzeBatch(ctx, texts)

			for i, request := range requests {
				top := distributions[i].Top()
				resultBuffer.Add(models.AnalysisResult{
					ContentID:      request.ContentID,
					Text:           request.Text,
					SentimentLabel: top.Label,
					SentimentScore: top.Score,
					Distribution:   distributions[i],
					Keywords:       analyzer.ExtractKeywords(request.Text, top.Label),
					AnalyzedAt:     time.Now().UTC(),
				})
			}

			sendResultsForStorage(committer)
		}
	}
}

func sendResultsForStorage(committer *kafka_client.KafkaCommitHandler) {
	batch := resultBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_SENTIMENT_RESULTS, batch[0].ContentID, batch)
		if err == nil {
			break
		}
		slog.Warn("[AnalysisConsumer] Batch publishing Failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	for _, result := range batch {
		trackedMsg, found := utils.GetMessageForContent(result.ContentID)
		if found {
			if err := committer.Commit(trackedMsg); err != nil {
				slog.Warn("[AnalysisConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
