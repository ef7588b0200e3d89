package consumers

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients/kafka_client"
	"github.com/IT-VAX/SentimentAnalysis/internal/db"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/utils"
)

// StartResultsConsumer persists finished analysis batches.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ResultsConsumer] Listening for analysis results")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ResultsConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var results []models.AnalysisResult
			if err := utils.DeserializeFromJSON(msg.Value, &results); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(results) == 0 {
				continue
			}

			if err := db.BatchInsertAnalysisResults(ctx, results); err != nil {
				slog.Error("[ResultsConsumer] Failed to store results",
					slog.String("error", err.Error()))
				continue
			}

			if err := committer.Commit(msg); err != nil {
				slog.Warn("[ResultsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
