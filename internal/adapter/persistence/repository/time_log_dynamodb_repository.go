package repository

import (
	"context"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTimeLogsTableName = "time_logs"
	timeLogsTaskIDIndex      = "task_id-index"
	timeLogsOrderIDIndex     = "order_id-index"
)

type timeLogItem struct {
	ID        string `dynamodbav:"id"`
	TaskID    string `dynamodbav:"task_id"`
	OrderID   string `dynamodbav:"order_id"`
	Worker    string `dynamodbav:"worker"`
	StartedAt string `dynamodbav:"started_at"`
	EndedAt   string `dynamodbav:"ended_at,omitempty"`
}

// TimeLogDynamoRepository persists TimeLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: task_id-index (PK: task_id)
//   - GSI: order_id-index (PK: order_id)
//
// An open log simply lacks the ended_at attribute.
type TimeLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeLogRepository = (*TimeLogDynamoRepository)(nil)

func NewTimeLogDynamoRepository(ddb *dynamodb.Client) *TimeLogDynamoRepository {
	return &TimeLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_LOGS_TABLE", defaultTimeLogsTableName),
	}
}

func (r *TimeLogDynamoRepository) Create(ctx context.Context, l entities.TimeLog) (entities.TimeLog, error) {
	av, err := attributevalue.MarshalMap(toTimeLogItem(l))
	if err != nil {
		return entities.TimeLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.TimeLog{}, interfaces.ErrConditionFailed
		}
		return entities.TimeLog{}, err
	}
	return l, nil
}

func (r *TimeLogDynamoRepository) GetByID(ctx context.Context, id string) (entities.TimeLog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TimeLog{}, err
	}
	if len(out.Item) == 0 {
		return entities.TimeLog{}, nil
	}

	var it timeLogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TimeLog{}, err
	}
	return fromTimeLogItem(it), nil
}

func (r *TimeLogDynamoRepository) Put(ctx context.Context, l entities.TimeLog) (entities.TimeLog, error) {
	av, err := attributevalue.MarshalMap(toTimeLogItem(l))
	if err != nil {
		return entities.TimeLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.TimeLog{}, interfaces.ErrConditionFailed
		}
		return entities.TimeLog{}, err
	}
	return l, nil
}

func (r *TimeLogDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func (r *TimeLogDynamoRepository) ListByTaskID(ctx context.Context, taskID string) ([]entities.TimeLog, error) {
	return r.queryIndex(ctx, timeLogsTaskIDIndex, "task_id", taskID)
}

func (r *TimeLogDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.TimeLog, error) {
	return r.queryIndex(ctx, timeLogsOrderIDIndex, "order_id", orderID)
}

func (r *TimeLogDynamoRepository) List(ctx context.Context) ([]entities.TimeLog, error) {
	var logs []entities.TimeLog
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it timeLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			logs = append(logs, fromTimeLogItem(it))
		}
	}
	return logs, nil
}

func (r *TimeLogDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.TimeLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	logs := make([]entities.TimeLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timeLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromTimeLogItem(it))
	}
	return logs, nil
}

func toTimeLogItem(l entities.TimeLog) timeLogItem {
	return timeLogItem{
		ID:        l.ID,
		TaskID:    l.TaskID,
		OrderID:   l.OrderID,
		Worker:    l.Worker,
		StartedAt: fmtTime(l.StartedAt),
		EndedAt:   fmtTimePtr(l.EndedAt),
	}
}

func fromTimeLogItem(it timeLogItem) entities.TimeLog {
	return entities.TimeLog{
		ID:        it.ID,
		TaskID:    it.TaskID,
		OrderID:   it.OrderID,
		Worker:    it.Worker,
		StartedAt: parseTime(it.StartedAt),
		EndedAt:   parseTimePtr(it.EndedAt),
	}
}
