package repository

import (
	"context"
	"fmt"
	"strconv"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"

	// budgetSeqKey is the id of the numbering counter row living in the
	// budgets table. Its "seq" attribute is bumped atomically.
	budgetSeqKey = "seq#budgets"
)

type budgetLineItem struct {
	ID          string  `dynamodbav:"id"`
	ServiceName string  `dynamodbav:"service_name"`
	Description string  `dynamodbav:"description,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	TotalPrice  float64 `dynamodbav:"total_price"`
}

type budgetItem struct {
	ID                   string           `dynamodbav:"id"`
	Number               string           `dynamodbav:"number"`
	ClientID             string           `dynamodbav:"client_id"`
	ClientName           string           `dynamodbav:"client_name"`
	ClientContact        string           `dynamodbav:"client_contact,omitempty"`
	ClientAddress        string           `dynamodbav:"client_address,omitempty"`
	Description          string           `dynamodbav:"description,omitempty"`
	TotalValue           float64          `dynamodbav:"total_value"`
	ValidUntil           string           `dynamodbav:"valid_until,omitempty"`
	Status               string           `dynamodbav:"status"`
	Items                []budgetLineItem `dynamodbav:"items"`
	ConvertedOrderNumber string           `dynamodbav:"converted_order_number,omitempty"`
	CreatedBy            string           `dynamodbav:"created_by"`
	CreatedAt            string           `dynamodbav:"created_at"`
	UpdatedAt            string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The numbering counter shares the table under a reserved id; counter rows
// carry no status attribute, which is how listings skip them.
type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Put(ctx context.Context, b entities.Budget, expected entities.BudgetStatus) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}
	return b, nil
}

// ApproveConversion is the commit point of a budget conversion: the status
// flip to approved and the minted order number land in one conditional
// write, guarded by the status the conversion read.
func (r *BudgetDynamoRepository) ApproveConversion(ctx context.Context, id string, orderNumber string, expected entities.BudgetStatus) (entities.Budget, error) {
	now := fmtTimeNow()
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :approved, #order_number = :order_number, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#order_number": "converted_order_number",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":     &types.AttributeValueMemberS{Value: string(expected)},
			":approved":     &types.AttributeValueMemberS{Value: string(entities.BudgetStatusApproved)},
			":order_number": &types.AttributeValueMemberS{Value: orderNumber},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error) {
	filter := "attribute_exists(#status)"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{}

	if f.Status != "" {
		filter += " AND #status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.CreatedBy != "" {
		filter += " AND #created_by = :created_by"
		names["#created_by"] = "created_by"
		values[":created_by"] = &types.AttributeValueMemberS{Value: f.CreatedBy}
	}

	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(filter),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}

	var budgets []entities.Budget
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	return budgets, nil
}

func (r *BudgetDynamoRepository) NextSequence(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: budgetSeqKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("unexpected counter attribute %T", out.Attributes["seq"])
	}
	return strconv.Atoi(n.Value)
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, budgetLineItem{
			ID:          it.ID,
			ServiceName: it.ServiceName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return budgetItem{
		ID:                   b.ID,
		Number:               b.Number,
		ClientID:             b.ClientID,
		ClientName:           b.Client.Name,
		ClientContact:        b.Client.Contact,
		ClientAddress:        b.Client.Address,
		Description:          b.Description,
		TotalValue:           b.TotalValue,
		ValidUntil:           fmtTimePtr(b.ValidUntil),
		Status:               string(b.Status),
		Items:                items,
		ConvertedOrderNumber: b.ConvertedOrderNumber,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            fmtTime(b.CreatedAt),
		UpdatedAt:            fmtTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.BudgetItem{
			ID:          li.ID,
			ServiceName: li.ServiceName,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}
	return entities.Budget{
		ID:       it.ID,
		Number:   it.Number,
		ClientID: it.ClientID,
		Client: entities.ClientSnapshot{
			Name:    it.ClientName,
			Contact: it.ClientContact,
			Address: it.ClientAddress,
		},
		Description:          it.Description,
		TotalValue:           it.TotalValue,
		ValidUntil:           parseTimePtr(it.ValidUntil),
		Status:               entities.BudgetStatus(it.Status),
		Items:                items,
		ConvertedOrderNumber: it.ConvertedOrderNumber,
		CreatedBy:            it.CreatedBy,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
