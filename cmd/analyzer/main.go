package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/IT-VAX/SentimentAnalysis/config"
	"github.com/IT-VAX/SentimentAnalysis/internal/classifier"
	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
	"github.com/IT-VAX/SentimentAnalysis/internal/logging"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/sentiment"
)

type output struct {
	Text         string                `json:"text"`
	Label        models.SentimentLabel `json:"label"`
	Distribution models.Distribution   `json:"distribution"`
	Keywords     []string              `json:"keywords,omitempty"`
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyzer := buildAnalyzer()

	texts := os.Args[1:]
	if len(texts) == 0 {
		texts = readLines(os.Stdin)
	}
	if len(texts) == 0 {
		slog.Error("[Main] No input texts; pass texts as arguments or on stdin")
		os.Exit(1)
	}

	distributions := analyzer.AnalyzeBatch(ctx, texts)

	encoder := json.NewEncoder(os.Stdout)
	for i, text := range texts {
		top := distributions[i].Top()
		out := output{
			Text:         text,
			Label:        top.Label,
			Distribution: distributions[i],
			Keywords:     analyzer.ExtractKeywords(text, top.Label),
		}
		if err := encoder.Encode(out); err != nil {
			slog.Error("[Main] Failed to encode result",
				slog.String("error", err.Error()))
		}
	}
}

// buildAnalyzer is the composition root: every knob comes from the
// environment, the Analyzer owns the resulting config.
func buildAnalyzer() *sentiment.Analyzer {
	var local sentiment.LocalBackend
	if os.Getenv("SENTIMENT_LOCAL_BACKEND") == "vader" {
		local = sentiment.VaderBackend
	}

	analyzer := sentiment.New(sentiment.Config{
		Token:    os.Getenv("HUGGINGFACE_API_TOKEN"),
		Ensemble: os.Getenv("SENTIMENT_ENSEMBLE") != "false",
		Local:    local,
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

func readLines(f *os.File) []string {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
