package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DynamoDB caps a transaction at 100 operations.
const maxTransactItems = 100

type inquiryItem struct {
	ID              string                      `dynamodbav:"id"`
	Type            string                      `dynamodbav:"type"`
	Status          string                      `dynamodbav:"status"`
	CreatedAt       string                      `dynamodbav:"created_at"`
	CustomerName    string                      `dynamodbav:"customer_name,omitempty"`
	CustomerPhone   string                      `dynamodbav:"customer_phone,omitempty"`
	Message         string                      `dynamodbav:"message,omitempty"`
	SelectedProduct string                      `dynamodbav:"selected_product,omitempty"`
	EstimateDetails *entities.EstimateBreakdown `dynamodbav:"estimate_details,omitempty"`
}

// InquiryDynamoRepository is the shared inquiry strategy.
//
// Table requirements:
//   - PK: id (string)
//   - Stream (NEW_IMAGE or KEYS_ONLY) when other instances must see changes
//
// The repository assigns id and created_at. Subscribers on this process are
// refreshed after its own writes; Refresh is called by the stream watcher
// for writes made elsewhere.

type InquiryDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	clock     *monotonicClock
	feed      *inquiryFeed
	logger    logger.Logger
}

var (
	_ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)
	_ interfaces.IInquiryImporter   = (*InquiryDynamoRepository)(nil)
)

func NewInquiryDynamoRepository(ddb DynamoDBAPI, tableName string, log logger.Logger) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		clock:     newMonotonicClock(time.Now),
		feed:      newInquiryFeed(),
		logger:    log,
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, in entities.NewInquiry) (entities.Inquiry, error) {
	created := entities.Inquiry{
		ID:              uuid.NewString(),
		Type:            in.Type,
		Status:          entities.InquiryStatusPending,
		CreatedAt:       r.clock.next(),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Message:         in.Message,
		SelectedProduct: in.SelectedProduct,
		EstimateDetails: in.EstimateDetails,
	}
	av, err := attributevalue.MarshalMap(toInquiryItem(created))
	if err != nil {
		return entities.Inquiry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	r.Refresh(ctx)
	return created, nil
}

func (r *InquiryDynamoRepository) List(ctx context.Context) ([]entities.Inquiry, error) {
	out := []entities.Inquiry{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it inquiryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil || it.ID == "" {
				r.logger.Warn("[inquiry][dynamodb] skipping unreadable item",
					zap.String("id", keyOf(raw)), zap.Error(err))
				continue
			}
			out = append(out, fromInquiryItem(it))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InquiryDynamoRepository) Subscribe(ctx context.Context, listener interfaces.InquiryListener) (func(), error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	cancel := r.feed.subscribe(listener)
	listener(list)
	return cancel, nil
}

func (r *InquiryDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#status": "status"}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrInquiryNotFound
		}
		return err
	}
	r.Refresh(ctx)
	return nil
}

// Delete is idempotent: removing an id that does not exist succeeds.
func (r *InquiryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return err
	}
	r.Refresh(ctx)
	return nil
}

// ImportBatch writes inquiries with their existing ids and timestamps.
// Ids already present in the table are left alone, so a replay does not
// duplicate. Each chunk of up to 100 items is one transaction; when a later
// chunk fails the chunks already committed are deleted again, leaving the
// table as it was before the call.
func (r *InquiryDynamoRepository) ImportBatch(ctx context.Context, inquiries []entities.Inquiry) error {
	existing, err := r.existingIDs(ctx)
	if err != nil {
		return fmt.Errorf("read existing inquiry ids: %w", err)
	}

	var chunks [][]types.TransactWriteItem
	var chunkIDs [][]string
	var ops []types.TransactWriteItem
	var ids []string
	for _, in := range inquiries {
		if _, ok := existing[in.ID]; ok {
			continue
		}
		existing[in.ID] = struct{}{}

		av, err := attributevalue.MarshalMap(toInquiryItem(in))
		if err != nil {
			return fmt.Errorf("marshal inquiry %s: %w", in.ID, err)
		}
		ops = append(ops, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
		ids = append(ids, in.ID)
		if len(ops) == maxTransactItems {
			chunks, chunkIDs = append(chunks, ops), append(chunkIDs, ids)
			ops, ids = nil, nil
		}
	}
	if len(ops) > 0 {
		chunks, chunkIDs = append(chunks, ops), append(chunkIDs, ids)
	}
	if len(chunks) == 0 {
		return nil
	}

	var written []string
	for i, chunk := range chunks {
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: chunk}); err != nil {
			err = fmt.Errorf("import inquiries chunk %d/%d: %w", i+1, len(chunks), err)
			if rbErr := r.rollbackImport(context.WithoutCancel(ctx), written); rbErr != nil {
				r.logger.Error("[inquiry][dynamodb] import rollback failed",
					zap.Int("written", len(written)), zap.Error(rbErr))
				return errors.Join(err, rbErr)
			}
			return err
		}
		written = append(written, chunkIDs[i]...)
	}
	r.Refresh(ctx)
	return nil
}

func (r *InquiryDynamoRepository) existingIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			if id := keyOf(raw); id != "" {
				ids[id] = struct{}{}
			}
		}
	}
	return ids, nil
}

// rollbackImport deletes the items an unfinished import committed.
func (r *InquiryDynamoRepository) rollbackImport(ctx context.Context, ids []string) error {
	for start := 0; start < len(ids); start += maxTransactItems {
		end := min(start+maxTransactItems, len(ids))
		ops := make([]types.TransactWriteItem, 0, end-start)
		for _, id := range ids[start:end] {
			ops = append(ops, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			})
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops}); err != nil {
			return fmt.Errorf("rollback inquiries [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

// Refresh pushes a fresh snapshot to subscribers of this process. It is a
// no-op when nobody listens.
func (r *InquiryDynamoRepository) Refresh(ctx context.Context) {
	if !r.feed.active() {
		return
	}
	list, err := r.List(ctx)
	if err != nil {
		r.logger.Warn("[inquiry][dynamodb] refresh failed", zap.Error(err))
		return
	}
	r.feed.publish(list)
}

func toInquiryItem(in entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:              in.ID,
		Type:            string(in.Type),
		Status:          string(in.Status),
		CreatedAt:       in.CreatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Message:         in.Message,
		SelectedProduct: in.SelectedProduct,
		EstimateDetails: in.EstimateDetails,
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return coalesceInquiry(entities.Inquiry{
		ID:              it.ID,
		Type:            entities.InquiryType(it.Type),
		Status:          entities.InquiryStatus(it.Status),
		CreatedAt:       createdAt.UTC(),
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		Message:         it.Message,
		SelectedProduct: it.SelectedProduct,
		EstimateDetails: it.EstimateDetails,
	})
}
