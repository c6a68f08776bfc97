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
	defaultCallsTableName = "calls"
	callsOrderIDIndex     = "order_id-index"
)

type callItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	Reason     string `dynamodbav:"reason"`
	CreatedBy  string `dynamodbav:"created_by"`
	Resolved   bool   `dynamodbav:"resolved"`
	ResolvedBy string `dynamodbav:"resolved_by,omitempty"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CallDynamoRepository persists Call (hold record) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Inserts happen inside ServiceOrderDynamoRepository.PlaceOnHold, in the
// same transaction as the status flip; this repository covers reads and
// resolution.
type CallDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICallRepository = (*CallDynamoRepository)(nil)

func NewCallDynamoRepository(ddb *dynamodb.Client) *CallDynamoRepository {
	return &CallDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALLS_TABLE", defaultCallsTableName),
	}
}

func (r *CallDynamoRepository) GetByID(ctx context.Context, id string) (entities.Call, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Call{}, err
	}
	if len(out.Item) == 0 {
		return entities.Call{}, nil
	}

	var it callItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Call{}, err
	}
	return fromCallItem(it), nil
}

func (r *CallDynamoRepository) Put(ctx context.Context, c entities.Call) (entities.Call, error) {
	av, err := attributevalue.MarshalMap(toCallItem(c))
	if err != nil {
		return entities.Call{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Call{}, interfaces.ErrConditionFailed
		}
		return entities.Call{}, err
	}
	return c, nil
}

func (r *CallDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Call, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(callsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	calls := make([]entities.Call, 0, len(out.Items))
	for _, raw := range out.Items {
		var it callItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		calls = append(calls, fromCallItem(it))
	}
	return calls, nil
}

func toCallItem(c entities.Call) callItem {
	return callItem{
		ID:         c.ID,
		OrderID:    c.OrderID,
		Reason:     c.Reason,
		CreatedBy:  c.CreatedBy,
		Resolved:   c.Resolved,
		ResolvedBy: c.ResolvedBy,
		ResolvedAt: fmtTimePtr(c.ResolvedAt),
		CreatedAt:  fmtTime(c.CreatedAt),
	}
}

func fromCallItem(it callItem) entities.Call {
	return entities.Call{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Reason:     it.Reason,
		CreatedBy:  it.CreatedBy,
		Resolved:   it.Resolved,
		ResolvedBy: it.ResolvedBy,
		ResolvedAt: parseTimePtr(it.ResolvedAt),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
