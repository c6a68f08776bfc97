package repository

import (
	"context"
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersBudgetIDIndex    = "budget_id-index"

	// Number-claim rows share the orders table under a prefixed id. A claim
	// row is written in the same transaction as its order, which is what
	// turns the allocator's best-effort pre-check into a hard guarantee.
	numberClaimPrefix = "number#"
)

type orderLineItem struct {
	ID          string  `dynamodbav:"id"`
	ServiceName string  `dynamodbav:"service_name"`
	Description string  `dynamodbav:"description,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	TotalPrice  float64 `dynamodbav:"total_price"`
}

type orderItem struct {
	ID            string          `dynamodbav:"id"`
	Number        string          `dynamodbav:"number"`
	BudgetID      string          `dynamodbav:"budget_id,omitempty"`
	ClientID      string          `dynamodbav:"client_id"`
	ClientName    string          `dynamodbav:"client_name"`
	ClientContact string          `dynamodbav:"client_contact,omitempty"`
	ClientAddress string          `dynamodbav:"client_address,omitempty"`
	Description   string          `dynamodbav:"description,omitempty"`
	SaleValue     float64         `dynamodbav:"sale_value"`
	Status        string          `dynamodbav:"status"`
	Urgency       string          `dynamodbav:"urgency"`
	AssignedTo    string          `dynamodbav:"assigned_to,omitempty"`
	Deadline      string          `dynamodbav:"deadline,omitempty"`
	ServiceStart  string          `dynamodbav:"service_start"`
	InvoiceID     string          `dynamodbav:"invoice_id,omitempty"`
	Items         []orderLineItem `dynamodbav:"items"`
	CreatedBy     string          `dynamodbav:"created_by"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

type numberClaimItem struct {
	ID      string `dynamodbav:"id"`
	Number  string `dynamodbav:"number"`
	OrderID string `dynamodbav:"order_id"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
//
// Claim rows carry no status attribute; listings filter on its presence to
// skip them. On-hold transitions also write to the calls table, inside the
// same transaction as the status flip.
type ServiceOrderDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	callsTable string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		callsTable: getenvDefault("CALLS_TABLE", defaultCallsTableName),
	}
}

// Create writes the order row and its number-claim row in one transaction.
// Losing the number race yields interfaces.ErrNumberTaken so the caller can
// resume probing.
func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	claimAV, err := attributevalue.MarshalMap(numberClaimItem{
		ID:      numberClaimPrefix + o.Number,
		Number:  o.Number,
		OrderID: o.ID,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     claimAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     orderAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if transactConditionFailed(err, 0) {
			return entities.ServiceOrder{}, interfaces.ErrNumberTaken
		}
		if transactAnyConditionFailed(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

// ExistsNumber checks the claim row, consistently, so the allocator's
// pre-check sees the latest committed claims.
func (r *ServiceOrderDynamoRepository) ExistsNumber(ctx context.Context, number string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: numberClaimPrefix + number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *ServiceOrderDynamoRepository) Put(ctx context.Context, o entities.ServiceOrder, expected entities.OrderStatus) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
			return entities.ServiceOrder{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, serviceStart *time.Time) (entities.ServiceOrder, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: fmtTimeNow()},
	}
	if serviceStart != nil {
		expr += ", #service_start = :service_start"
		names["#service_start"] = "service_start"
		values[":service_start"] = &types.AttributeValueMemberS{Value: fmtWindowTime(*serviceStart)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceOrder{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

// PlaceOnHold commits the call record and the on_hold flip atomically. If
// the order's status moved since the caller read it, or the call id already
// exists, the whole transaction is cancelled and nothing is written.
func (r *ServiceOrderDynamoRepository) PlaceOnHold(ctx context.Context, id string, from entities.OrderStatus, call entities.Call) (entities.ServiceOrder, error) {
	callAV, err := attributevalue.MarshalMap(toCallItem(call))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.callsTable),
					Item:                     callAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
					UpdateExpression:    aws.String("SET #status = :on_hold, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":from":       &types.AttributeValueMemberS{Value: string(from)},
						":on_hold":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusOnHold)},
						":updated_at": &types.AttributeValueMemberS{Value: fmtTimeNow()},
					},
				},
			},
		},
	})
	if err != nil {
		if transactAnyConditionFailed(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceOrder{}, err
	}

	return r.GetByID(ctx, id)
}

// ClaimForInvoice re-validates the billing precondition at commit time: the
// order must still be to_invoice and never claimed before.
func (r *ServiceOrderDynamoRepository) ClaimForInvoice(ctx context.Context, id, invoiceID string) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :to_invoice AND attribute_not_exists(#invoice_id)"),
		UpdateExpression:    aws.String("SET #status = :invoiced, #invoice_id = :iid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#invoice_id": "invoice_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to_invoice": &types.AttributeValueMemberS{Value: string(entities.OrderStatusToInvoice)},
			":invoiced":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusInvoiced)},
			":iid":        &types.AttributeValueMemberS{Value: invoiceID},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimeNow()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceOrder{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

// ReleaseFromInvoice is the compensation for ClaimForInvoice (failed invoice
// persist or voiding): only the claiming invoice may release, and only while
// the order is still invoiced. An order that moved past invoiced (completed,
// cancelled) keeps its status.
func (r *ServiceOrderDynamoRepository) ReleaseFromInvoice(ctx context.Context, id, invoiceID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #invoice_id = :iid AND #status = :invoiced"),
		UpdateExpression:    aws.String("SET #status = :to_invoice, #updated_at = :updated_at REMOVE #invoice_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#invoice_id": "invoice_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid":        &types.AttributeValueMemberS{Value: invoiceID},
			":invoiced":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusInvoiced)},
			":to_invoice": &types.AttributeValueMemberS{Value: string(entities.OrderStatusToInvoice)},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimeNow()},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context, f interfaces.OrderFilter) ([]entities.ServiceOrder, error) {
	filter := "attribute_exists(#status)"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{}

	if f.ClientID != "" {
		filter += " AND #client_id = :client_id"
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: f.ClientID}
	}
	if f.Status != "" {
		filter += " AND #status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.ServiceStartFrom != nil {
		filter += " AND #service_start >= :ss_from"
		names["#service_start"] = "service_start"
		values[":ss_from"] = &types.AttributeValueMemberS{Value: fmtWindowTime(*f.ServiceStartFrom)}
	}
	if f.ServiceStartTo != nil {
		filter += " AND #service_start <= :ss_to"
		names["#service_start"] = "service_start"
		values[":ss_to"] = &types.AttributeValueMemberS{Value: fmtWindowTime(*f.ServiceStartTo)}
	}
	if f.NotInvoiced {
		filter += " AND attribute_not_exists(#invoice_id)"
		names["#invoice_id"] = "invoice_id"
	}

	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(filter),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}

	var orders []entities.ServiceOrder
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItem{
			ID:          it.ID,
			ServiceName: it.ServiceName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return orderItem{
		ID:            o.ID,
		Number:        o.Number,
		BudgetID:      o.BudgetID,
		ClientID:      o.ClientID,
		ClientName:    o.Client.Name,
		ClientContact: o.Client.Contact,
		ClientAddress: o.Client.Address,
		Description:   o.Description,
		SaleValue:     o.SaleValue,
		Status:        string(o.Status),
		Urgency:       string(o.Urgency),
		AssignedTo:    o.AssignedTo,
		Deadline:      fmtTimePtr(o.Deadline),
		ServiceStart:  fmtWindowTime(o.ServiceStart),
		InvoiceID:     o.InvoiceID,
		Items:         items,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     fmtTime(o.CreatedAt),
		UpdatedAt:     fmtTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	items := make([]entities.ServiceOrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.ServiceOrderItem{
			ID:          li.ID,
			ServiceName: li.ServiceName,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}
	return entities.ServiceOrder{
		ID:       it.ID,
		Number:   it.Number,
		BudgetID: it.BudgetID,
		ClientID: it.ClientID,
		Client: entities.ClientSnapshot{
			Name:    it.ClientName,
			Contact: it.ClientContact,
			Address: it.ClientAddress,
		},
		Description:  it.Description,
		SaleValue:    it.SaleValue,
		Status:       entities.OrderStatus(it.Status),
		Urgency:      entities.OrderUrgency(it.Urgency),
		AssignedTo:   it.AssignedTo,
		Deadline:     parseTimePtr(it.Deadline),
		ServiceStart: parseTime(it.ServiceStart),
		InvoiceID:    it.InvoiceID,
		Items:        items,
		CreatedBy:    it.CreatedBy,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
