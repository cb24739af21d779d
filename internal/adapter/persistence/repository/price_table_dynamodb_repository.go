package repository

import (
	"context"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/pricing"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const pricingSettingsID = "pricing"

type priceTableItem struct {
	ID        string           `dynamodbav:"id"`
	Fields    map[string]int64 `dynamodbav:"fields"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// PriceTableDynamoRepository stores the shared price table as a single item
// of the settings table.
//
// Table requirements:
//   - PK: id (string)
//
// Item id "pricing" holds the flattened table in the "fields" map.

type PriceTableDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	logger    logger.Logger
}

var _ interfaces.IPriceTableRepository = (*PriceTableDynamoRepository)(nil)

func NewPriceTableDynamoRepository(ddb DynamoDBAPI, tableName string, log logger.Logger) *PriceTableDynamoRepository {
	return &PriceTableDynamoRepository{ddb: ddb, tableName: tableName, logger: log}
}

func (r *PriceTableDynamoRepository) Load(ctx context.Context) (entities.PriceTable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: pricingSettingsID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceTable{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultPriceTable(), nil
	}

	var it struct {
		Fields map[string]any `dynamodbav:"fields"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		r.logger.Warn("[pricing][dynamodb] stored price table unreadable, using defaults", zap.Error(err))
		return entities.DefaultPriceTable(), nil
	}
	return pricing.Rebuild(it.Fields), nil
}

func (r *PriceTableDynamoRepository) Save(ctx context.Context, table entities.PriceTable) error {
	av, err := attributevalue.MarshalMap(priceTableItem{
		ID:        pricingSettingsID,
		Fields:    pricing.Flatten(table),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
