package response

import (
	"time"

	"serralheria_os/internal/domain/entities"
)

type InvoiceOrderResponse struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	SaleValue   float64 `json:"sale_value"`
	Hours       float64 `json:"hours"`
}

type InvoiceExtraResponse struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type InvoiceResponse struct {
	ID         string                 `json:"id"`
	ClientID   string                 `json:"client_id"`
	Orders     []InvoiceOrderResponse `json:"orders"`
	Extras     []InvoiceExtraResponse `json:"extras,omitempty"`
	TotalValue float64                `json:"total_value"`
	TotalHours float64                `json:"total_hours"`
	Void       bool                   `json:"void"`
	CreatedBy  string                 `json:"created_by"`
	CreatedAt  time.Time              `json:"created_at"`

	// DroppedOrders lists candidate orders another invoice claimed first.
	DroppedOrders []string `json:"dropped_orders,omitempty"`

	// RetainedOrders lists orders a void could not release because they
	// already moved past invoiced.
	RetainedOrders []string `json:"retained_orders,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	orders := make([]InvoiceOrderResponse, 0, len(inv.Orders))
	for _, o := range inv.Orders {
		orders = append(orders, InvoiceOrderResponse{
			OrderID:     o.OrderID,
			OrderNumber: o.OrderNumber,
			SaleValue:   o.SaleValue,
			Hours:       o.Hours,
		})
	}
	extras := make([]InvoiceExtraResponse, 0, len(inv.Extras))
	for _, e := range inv.Extras {
		extras = append(extras, InvoiceExtraResponse{Description: e.Description, Value: e.Value})
	}
	return InvoiceResponse{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		Orders:     orders,
		Extras:     extras,
		TotalValue: inv.TotalValue,
		TotalHours: inv.TotalHours,
		Void:       inv.Void,
		CreatedBy:  inv.CreatedBy,
		CreatedAt:  inv.CreatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
