package database

import (
	"context"

	appconfig "cctv_estimator/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
)

// ConnectDynamoDB creates the DynamoDB and DynamoDB Streams clients used in
// shared storage mode.
//
// With DYNAMODB_ENDPOINT set (e.g. http://dynamodb:8000) both clients talk
// to that endpoint, which is how DynamoDB Local is used in development.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, *dynamodbstreams.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	ddb := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	streams := dynamodbstreams.NewFromConfig(awsCfg, func(o *dynamodbstreams.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return ddb, streams, nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
