package request

import (
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
)

type OrderItemPayload struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

func (p OrderItemPayload) ToInput() usecase.OrderItemInput {
	return usecase.OrderItemInput{
		ServiceName: p.ServiceName,
		Description: p.Description,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
	}
}

type ConvertBudgetRequest struct {
	BudgetID string `json:"budget_id" binding:"required"`
}

type CreateOrderRequest struct {
	Client      ClientPayload      `json:"client" binding:"required"`
	Description string             `json:"description"`
	SaleValue   float64            `json:"sale_value"`
	Urgency     string             `json:"urgency"`
	AssignedTo  string             `json:"assigned_to"`
	Deadline    *time.Time         `json:"deadline"`
	Items       []OrderItemPayload `json:"items"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, p.ToInput())
	}
	return usecase.CreateOrderInput{
		ClientID:    r.Client.ID,
		Client:      r.Client.Snapshot(),
		Description: r.Description,
		SaleValue:   r.SaleValue,
		Urgency:     entities.OrderUrgency(r.Urgency),
		AssignedTo:  r.AssignedTo,
		Deadline:    r.Deadline,
		Items:       items,
	}
}

type UpdateOrderRequest struct {
	Description  *string    `json:"description"`
	Urgency      *string    `json:"urgency"`
	AssignedTo   *string    `json:"assigned_to"`
	Deadline     *time.Time `json:"deadline"`
	ServiceStart *time.Time `json:"service_start"`
	SaleValue    *float64   `json:"sale_value"`
}

func (r UpdateOrderRequest) ToInput() usecase.UpdateOrderInput {
	in := usecase.UpdateOrderInput{
		Description:  r.Description,
		AssignedTo:   r.AssignedTo,
		Deadline:     r.Deadline,
		ServiceStart: r.ServiceStart,
		SaleValue:    r.SaleValue,
	}
	if r.Urgency != nil {
		u := entities.OrderUrgency(*r.Urgency)
		in.Urgency = &u
	}
	return in
}

// ChangeOrderStatusRequest drives the status machine. Reason is required
// only when the target status is on_hold; it becomes the hold call.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
