package classifier

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

const llmSystemPrompt = "You are a sentiment classifier. " +
	"Reply with exactly one word: positive, negative, or neutral."

// LLMClassifier asks a chat model for a one-word verdict and maps it
// to a degenerate distribution. Useful as a drop-in secondary backend
// when no star-rated model is available.
type LLMClassifier struct {
	client *openai.Client
	model  string
}

func NewLLM(client *openai.Client, model string) *LLMClassifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &LLMClassifier{client: client, model: model}
}

func (c *LLMClassifier) Name() string { return "llm" }

func (c *LLMClassifier) Classify(ctx context.Context, text string) Outcome {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		MaxTokens:   4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llmSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		slog.Warn("[Classifier] LLM classification failed",
			slog.String("error", err.Error()))
		return Failure()
	}
	if len(resp.Choices) == 0 {
		return Failure()
	}

	word := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	word = strings.Trim(word, ".!")

	switch models.SentimentLabel(word) {
	case models.LabelPositive, models.LabelNegative, models.LabelNeutral:
		return Success(models.NewDistribution(map[models.SentimentLabel]float64{
			models.SentimentLabel(word): 1.0,
		}))
	default:
		slog.Warn("[Classifier] LLM returned unmappable verdict",
			slog.String("verdict", word))
		return Failure()
	}
}
