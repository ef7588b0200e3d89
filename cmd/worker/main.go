package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/IT-VAX/SentimentAnalysis/config"
	"github.com/IT-VAX/SentimentAnalysis/internal/classifier"
	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
	"github.com/IT-VAX/SentimentAnalysis/internal/clients/kafka_client"
	"github.com/IT-VAX/SentimentAnalysis/internal/consumers"
	"github.com/IT-VAX/SentimentAnalysis/internal/logging"
	"github.com/IT-VAX/SentimentAnalysis/internal/monitoring"
	"github.com/IT-VAX/SentimentAnalysis/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	analyzerHealthy := &atomic.Bool{}
	analyzerHealthy.Store(true)

	analyzer := buildAnalyzer(analyzerHealthy)

	primaryModel := os.Getenv("HF_PRIMARY_MODEL")
	if primaryModel == "" {
		primaryModel = classifier.DefaultPrimaryModel
	}
	go monitoring.MonitorAnalyzerHealth(ctx, primaryModel, analyzer.Credential, analyzerHealthy)

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_SENTIMENT_REQUESTS,
		consumers.NewAnalysisConsumer(analyzer))
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_SENTIMENT_RESULTS,
		consumers.StartResultsConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}

// buildAnalyzer is the composition root; the health monitor's flag is
// handed to the Analyzer so a degraded remote routes straight to the
// local estimator.
func buildAnalyzer(healthy *atomic.Bool) *sentiment.Analyzer {
	var local sentiment.LocalBackend
	if os.Getenv("SENTIMENT_LOCAL_BACKEND") == "vader" {
		local = sentiment.VaderBackend
	}

	analyzer := sentiment.New(sentiment.Config{
		Token:         os.Getenv("HUGGINGFACE_API_TOKEN"),
		Ensemble:      os.Getenv("SENTIMENT_ENSEMBLE") != "false",
		Local:         local,
		RemoteHealthy: healthy,
	})

	gateway := clients.GetHuggingFaceClient()
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		gateway.SetCache(clients.InitValkey())
	}

	primary := classifier.NewRoberta(gateway, os.Getenv("HF_PRIMARY_MODEL"), analyzer.Credential)

	var secondary classifier.Classifier
	if os.Getenv("CLASSIFIER_SECONDARY") == "llm" {
		secondary = classifier.NewLLM(clients.GetOpenAIClient().Client, os.Getenv("OPENAI_MODEL"))
	} else {
		secondary = classifier.NewStars(gateway, os.Getenv("HF_SECONDARY_MODEL"), analyzer.Credential)
	}

	analyzer.SetClassifiers(primary, secondary)
	return analyzer
}
