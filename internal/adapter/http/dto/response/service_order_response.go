package response

import (
	"time"

	"serralheria_os/internal/domain/entities"
)

type OrderItemResponse struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type ServiceOrderResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	BudgetID     string              `json:"budget_id,omitempty"`
	Client       ClientResponse      `json:"client"`
	Description  string              `json:"description,omitempty"`
	SaleValue    float64             `json:"sale_value"`
	Status       string              `json:"status"`
	Urgency      string              `json:"urgency"`
	AssignedTo   string              `json:"assigned_to,omitempty"`
	Deadline     *time.Time          `json:"deadline,omitempty"`
	ServiceStart time.Time           `json:"service_start"`
	InvoiceID    string              `json:"invoice_id,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	CreatedBy    string              `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			ServiceName: it.ServiceName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return ServiceOrderResponse{
		ID:       o.ID,
		Number:   o.Number,
		BudgetID: o.BudgetID,
		Client: ClientResponse{
			ID:      o.ClientID,
			Name:    o.Client.Name,
			Contact: o.Client.Contact,
			Address: o.Client.Address,
		},
		Description:  o.Description,
		SaleValue:    o.SaleValue,
		Status:       string(o.Status),
		Urgency:      string(o.Urgency),
		AssignedTo:   o.AssignedTo,
		Deadline:     o.Deadline,
		ServiceStart: o.ServiceStart,
		InvoiceID:    o.InvoiceID,
		Items:        items,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type CallResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	Reason     string     `json:"reason"`
	CreatedBy  string     `json:"created_by"`
	Resolved   bool       `json:"resolved"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromCall(c entities.Call) CallResponse {
	return CallResponse{
		ID:         c.ID,
		OrderID:    c.OrderID,
		Reason:     c.Reason,
		CreatedBy:  c.CreatedBy,
		Resolved:   c.Resolved,
		ResolvedBy: c.ResolvedBy,
		ResolvedAt: c.ResolvedAt,
		CreatedAt:  c.CreatedAt,
	}
}

func FromCalls(calls []entities.Call) []CallResponse {
	out := make([]CallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, FromCall(c))
	}
	return out
}
