package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/IT-VAX/SentimentAnalysis/internal/clients"
	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

const ANALYSIS_RESULTS_TABLE_NAME = "SentimentResults"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertAnalysisResults writes results in DynamoDB-sized chunks
// of 25, retrying unprocessed items with doubling backoff.
func BatchInsertAnalysisResults(ctx context.Context, results []models.AnalysisResult) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(results); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(results) {
			end = len(results)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, result := range results[i:end] {
			item, err := ResultToDynamoDBItem(result)
			if err != nil {
				slog.Error("[DynamoDB] Failed to marshal result",
					slog.String("content_id", result.ContentID),
					slog.String("error", err.Error()))
				continue
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{
					Item: item,
				},
			})
		}
		if len(writeRequests) == 0 {
			continue
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				ANALYSIS_RESULTS_TABLE_NAME: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write analysis results: %w", err)
		}

		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[DynamoDB] Retrying unprocessed result items...",
				slog.Int("attempt", retryCount+1),
				slog.Int("remaining", len(out.UnprocessedItems[ANALYSIS_RESULTS_TABLE_NAME])))

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Retry error %w", err)
			}

			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some result items failed after retries",
				slog.Int("remaining", len(out.UnprocessedItems[ANALYSIS_RESULTS_TABLE_NAME])))
		}
	}

	slog.Info("[DynamoDB] Successfully stored analysis results",
		slog.Int("count", len(results)))
	return nil
}

// GetRecentResults scans the results table; paginated because the
// table is TTL-bounded but can still exceed one page.
func GetRecentResults(ctx context.Context) ([]models.AnalysisResult, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var results []models.AnalysisResult
	input := &dynamodb.ScanInput{
		TableName: aws.String(ANALYSIS_RESULTS_TABLE_NAME),
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for results failed: %w", err)
		}
		var page []models.AnalysisResult
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal result page", slog.String("error", err.Error()))
			return nil, err
		}
		results = append(results, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved results", slog.Int("count", len(results)))
	return results, nil
}

func ResultToDynamoDBItem(result models.AnalysisResult) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(result)
	if err != nil {
		return nil, err
	}

	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}
	item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Add(24*time.Hour).Unix())}

	return item, nil
}
