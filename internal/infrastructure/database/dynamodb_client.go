package database

import (
	"context"
	"fmt"
	"log/slog"

	appconfig "cfr_notifier/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient builds the DynamoDB client from the AWS config group.
//
// Static credentials are used when both keys are set, or when an endpoint
// override points at DynamoDB Local (which ignores them but the SDK still
// requires some). Otherwise the default chain applies (Lambda role, profile).
func NewDynamoDBClient(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func loadAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	case cfg.DynamoDBEndpoint != "":
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	if cfg.DynamoDBEndpoint != "" {
		slog.Info("[database] using dynamodb endpoint override", "endpoint", cfg.DynamoDBEndpoint)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
