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
	defaultInvoicesTableName = "invoices"
	invoicesClientIDIndex    = "client_id-index"
)

type invoiceOrderItem struct {
	OrderID     string  `dynamodbav:"order_id"`
	OrderNumber string  `dynamodbav:"order_number"`
	SaleValue   float64 `dynamodbav:"sale_value"`
	Hours       float64 `dynamodbav:"hours"`
}

type invoiceExtraItem struct {
	Description string  `dynamodbav:"description"`
	Value       float64 `dynamodbav:"value"`
}

type invoiceItem struct {
	ID         string             `dynamodbav:"id"`
	ClientID   string             `dynamodbav:"client_id"`
	Orders     []invoiceOrderItem `dynamodbav:"orders"`
	Extras     []invoiceExtraItem `dynamodbav:"extras,omitempty"`
	TotalValue float64            `dynamodbav:"total_value"`
	TotalHours float64            `dynamodbav:"total_hours"`
	Void       bool               `dynamodbav:"void"`
	CreatedBy  string             `dynamodbav:"created_by"`
	CreatedAt  string             `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// The order snapshot is stored inline and never rewritten; voiding flips a
// flag, it does not touch the snapshot.
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, interfaces.ErrConditionFailed
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

// MarkVoid flips the void flag once; a second void attempt fails its
// condition.
func (r *InvoiceDynamoRepository) MarkVoid(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #void = :false"),
		UpdateExpression:    aws.String("SET #void = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#void": "void",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, interfaces.ErrConditionFailed
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	orders := make([]invoiceOrderItem, 0, len(inv.Orders))
	for _, o := range inv.Orders {
		orders = append(orders, invoiceOrderItem{
			OrderID:     o.OrderID,
			OrderNumber: o.OrderNumber,
			SaleValue:   o.SaleValue,
			Hours:       o.Hours,
		})
	}
	extras := make([]invoiceExtraItem, 0, len(inv.Extras))
	for _, e := range inv.Extras {
		extras = append(extras, invoiceExtraItem{Description: e.Description, Value: e.Value})
	}
	return invoiceItem{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		Orders:     orders,
		Extras:     extras,
		TotalValue: inv.TotalValue,
		TotalHours: inv.TotalHours,
		Void:       inv.Void,
		CreatedBy:  inv.CreatedBy,
		CreatedAt:  fmtTime(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	orders := make([]entities.InvoiceOrder, 0, len(it.Orders))
	for _, o := range it.Orders {
		orders = append(orders, entities.InvoiceOrder{
			OrderID:     o.OrderID,
			OrderNumber: o.OrderNumber,
			SaleValue:   o.SaleValue,
			Hours:       o.Hours,
		})
	}
	extras := make([]entities.InvoiceExtra, 0, len(it.Extras))
	for _, e := range it.Extras {
		extras = append(extras, entities.InvoiceExtra{Description: e.Description, Value: e.Value})
	}
	return entities.Invoice{
		ID:         it.ID,
		ClientID:   it.ClientID,
		Orders:     orders,
		Extras:     extras,
		TotalValue: it.TotalValue,
		TotalHours: it.TotalHours,
		Void:       it.Void,
		CreatedBy:  it.CreatedBy,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
