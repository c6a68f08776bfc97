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
	defaultTasksTableName = "tasks"
	tasksOrderIDIndex     = "order_id-index"
)

type taskItem struct {
	ID             string  `dynamodbav:"id"`
	OrderID        string  `dynamodbav:"order_id"`
	Title          string  `dynamodbav:"title"`
	Description    string  `dynamodbav:"description,omitempty"`
	Priority       string  `dynamodbav:"priority"`
	EstimatedHours float64 `dynamodbav:"estimated_hours"`
	Deadline       string  `dynamodbav:"deadline,omitempty"`
	AssignedTo     string  `dynamodbav:"assigned_to,omitempty"`
	Status         string  `dynamodbav:"status"`
	CreatedBy      string  `dynamodbav:"created_by"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Task{}, interfaces.ErrConditionFailed
		}
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) Put(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Task{}, interfaces.ErrConditionFailed
		}
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Task, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tasksOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(out.Items))
	for _, raw := range out.Items {
		var it taskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tasks = append(tasks, fromTaskItem(it))
	}
	return tasks, nil
}

func (r *TaskDynamoRepository) List(ctx context.Context, f interfaces.TaskFilter) ([]entities.Task, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	filter := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.AssignedTo != "" {
		filter = "#assigned_to = :assigned_to"
		names["#assigned_to"] = "assigned_to"
		values[":assigned_to"] = &types.AttributeValueMemberS{Value: f.AssignedTo}
	}
	if f.Status != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var tasks []entities.Task
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it taskItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tasks = append(tasks, fromTaskItem(it))
		}
	}
	return tasks, nil
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:             t.ID,
		OrderID:        t.OrderID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		Deadline:       fmtTimePtr(t.Deadline),
		AssignedTo:     t.AssignedTo,
		Status:         string(t.Status),
		CreatedBy:      t.CreatedBy,
		CreatedAt:      fmtTime(t.CreatedAt),
		UpdatedAt:      fmtTime(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:             it.ID,
		OrderID:        it.OrderID,
		Title:          it.Title,
		Description:    it.Description,
		Priority:       entities.TaskPriority(it.Priority),
		EstimatedHours: it.EstimatedHours,
		Deadline:       parseTimePtr(it.Deadline),
		AssignedTo:     it.AssignedTo,
		Status:         entities.TaskStatus(it.Status),
		CreatedBy:      it.CreatedBy,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
