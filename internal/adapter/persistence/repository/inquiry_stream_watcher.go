package repository

import (
	"context"
	"errors"
	"time"

	"cctv_estimator/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"go.uber.org/zap"
)

const defaultStreamPoll = 2 * time.Second

// InquiryStreamWatcher tails the inquiries table stream and calls onChange
// whenever any instance wrote to the table.
type InquiryStreamWatcher struct {
	ddb       DynamoDBAPI
	streams   DynamoDBStreamsAPI
	tableName string
	poll      time.Duration
	onChange  func(ctx context.Context)
	logger    logger.Logger

	iterators map[string]*string
	closed    map[string]bool
}

func NewInquiryStreamWatcher(ddb DynamoDBAPI, streams DynamoDBStreamsAPI, tableName string, poll time.Duration, onChange func(ctx context.Context), log logger.Logger) *InquiryStreamWatcher {
	if poll <= 0 {
		poll = defaultStreamPoll
	}
	return &InquiryStreamWatcher{
		ddb:       ddb,
		streams:   streams,
		tableName: tableName,
		poll:      poll,
		onChange:  onChange,
		logger:    log,
		iterators: make(map[string]*string),
		closed:    make(map[string]bool),
	}
}

// Run blocks until ctx is done. A table without a stream is logged and Run
// returns nil right away.
func (w *InquiryStreamWatcher) Run(ctx context.Context) error {
	desc, err := w.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(w.tableName)})
	if err != nil {
		return err
	}
	if desc.Table == nil || desc.Table.LatestStreamArn == nil {
		w.logger.Warn("[inquiry][stream] table has no stream; cross-instance updates disabled", zap.String("table", w.tableName))
		return nil
	}
	arn := desc.Table.LatestStreamArn
	w.logger.Info("[inquiry][stream] watching", zap.String("stream_arn", aws.ToString(arn)))

	first := true
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()
	for {
		changed, err := w.pollOnce(ctx, arn, first)
		if err != nil && ctx.Err() == nil {
			w.logger.Warn("[inquiry][stream] poll failed", zap.Error(err))
		}
		first = false
		if changed {
			w.onChange(ctx)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// pollOnce discovers shards and drains one page of records from each. Shards
// present at start are read from LATEST; shards found later from
// TRIM_HORIZON so nothing written to them is missed.
func (w *InquiryStreamWatcher) pollOnce(ctx context.Context, arn *string, initial bool) (bool, error) {
	out, err := w.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{StreamArn: arn})
	if err != nil {
		return false, err
	}
	if out.StreamDescription != nil {
		for _, sh := range out.StreamDescription.Shards {
			id := aws.ToString(sh.ShardId)
			if id == "" || w.closed[id] {
				continue
			}
			if _, ok := w.iterators[id]; ok {
				continue
			}
			iterType := streamtypes.ShardIteratorTypeTrimHorizon
			if initial {
				iterType = streamtypes.ShardIteratorTypeLatest
			}
			it, err := w.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
				StreamArn:         arn,
				ShardId:           sh.ShardId,
				ShardIteratorType: iterType,
			})
			if err != nil {
				return false, err
			}
			w.iterators[id] = it.ShardIterator
		}
	}

	changed := false
	for id, iter := range w.iterators {
		if iter == nil {
			w.closed[id] = true
			delete(w.iterators, id)
			continue
		}
		rec, err := w.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{ShardIterator: iter})
		if err != nil {
			var expired *streamtypes.ExpiredIteratorException
			if errors.As(err, &expired) {
				delete(w.iterators, id)
				continue
			}
			return changed, err
		}
		if len(rec.Records) > 0 {
			changed = true
		}
		w.iterators[id] = rec.NextShardIterator
	}
	return changed, nil
}
