package kafka_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/IT-VAX/SentimentAnalysis/internal/utils"
)

var producer *kafka.Producer

func InitProducer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     cfg.Broker,
		"security.protocol":                     "PLAINTEXT",
		"api.version.request":                   "true",
		"enable.idempotence":                    true,
		"acks":                                  "all",
		"max.in.flight.requests.per.connection": 1,
		"transactional.id":                      "sentiment-analysis-producer-1",
	})
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	if err := p.InitTransactions(context.Background()); err != nil {
		return fmt.Errorf("[KafkaClient] Failed to init transactions: %w", err)
	}

	producer = p
	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return nil
}

func CloseProducer() {
	slog.Info("[KafkaClient] Shutting down Kafka producer...")
	if producer != nil {
		slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
		if remaining := producer.Flush(5000); remaining > 0 {
			slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
				slog.Int("remaining", remaining))
		}
		producer.Close()
		slog.Info("[KafkaClient] Kafka producer shut down")
	}
}

// PublishToKafka sends one JSON payload transactionally.
func PublishToKafka(topic string, key string, payload interface{}) error {
	if err := producer.BeginTransaction(); err != nil {
		return fmt.Errorf("[KafkaClient] failed to begin transaction: %w", err)
	}

	jsonData, err := utils.SerializeToJSON(payload)
	if err != nil {
		if abortErr := producer.AbortTransaction(context.Background()); abortErr != nil {
			return fmt.Errorf("[KafkaClient] failed to abort transaction after marshal error: %w", abortErr)
		}
		return err
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          jsonData,
	}

	for i := 0; i < 3; i++ {
		err = producer.Produce(msg, nil)
		if err == nil {
			break
		}
		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1))
	}
	if err != nil {
		if abortErr := producer.AbortTransaction(context.Background()); abortErr != nil {
			return fmt.Errorf("[KafkaClient] failed to abort transaction after produce error: %w", abortErr)
		}
		return err
	}

	var commitErr error
	for i := 0; i < 3; i++ {
		commitErr = producer.CommitTransaction(context.Background())
		if commitErr == nil {
			break
		}
		slog.Warn("[KafkaClient] Failed to commit transaction, retrying...",
			slog.Int("attempt", i+1))
	}
	if commitErr != nil {
		return fmt.Errorf("[KafkaClient] failed to commit transaction after 3 retries: %w", commitErr)
	}

	slog.Info("[KafkaClient] Published message to Kafka transactionally",
		slog.String("topic", topic),
		slog.String("key", key))

	return nil
}
