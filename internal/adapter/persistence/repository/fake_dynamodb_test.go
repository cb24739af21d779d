package repository

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items of a single table keyed by the "id" attribute.
type fakeDynamoDB struct {
	mu          sync.Mutex
	items       map[string]map[string]types.AttributeValue
	transactErr error
	// failTransaction makes only the n-th TransactWriteItems call fail.
	failTransaction int
	transactions    int
	streamArn       *string
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Item)
	if _, exists := f.items[id]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("item exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, exists := f.items[keyOf(in.Key)]
	if !exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	item["status"] = in.ExpressionAttributeValues[":status"]
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamoDB) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions++
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	if f.failTransaction == f.transactions {
		return nil, &types.TransactionCanceledException{Message: aws.String("boom")}
	}
	for _, op := range in.TransactItems {
		if op.Put == nil || op.Put.ConditionExpression == nil {
			continue
		}
		if _, exists := f.items[keyOf(op.Put.Item)]; exists {
			return nil, &types.TransactionCanceledException{Message: aws.String("condition failed")}
		}
	}
	for _, op := range in.TransactItems {
		switch {
		case op.Put != nil:
			f.items[keyOf(op.Put.Item)] = op.Put.Item
		case op.Delete != nil:
			delete(f.items, keyOf(op.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamoDB) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:       in.TableName,
		LatestStreamArn: f.streamArn,
	}}, nil
}

func (f *fakeDynamoDB) put(item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[keyOf(item)] = item
}

func (f *fakeDynamoDB) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
