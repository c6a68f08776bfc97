package entities

import "time"

// InvoiceOrder is the frozen snapshot of one billed order: id, number, sale
// value and the hours accumulated at invoicing time. It never re-derives
// from live order state.
type InvoiceOrder struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	SaleValue   float64 `json:"sale_value"`
	Hours       float64 `json:"hours"`
}

// InvoiceExtra is a manually added line (e.g. "Deslocamento").
type InvoiceExtra struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// Invoice is a frozen billing snapshot over a set of orders plus extras.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// An order referenced by a non-void invoice is never selectable again;
// voiding releases its orders back to to_invoice.
type Invoice struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"client_id"`
	Orders     []InvoiceOrder `json:"orders"`
	Extras     []InvoiceExtra `json:"extras,omitempty"`
	TotalValue float64        `json:"total_value"`
	TotalHours float64        `json:"total_hours"`
	Void       bool           `json:"void"`
	CreatedBy  string         `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ComputeTotals re-derives the stored totals from the frozen snapshot.
// Recomputing must always reproduce TotalValue/TotalHours (round-trip
// invariant).
func (inv Invoice) ComputeTotals() (value float64, hours float64) {
	for _, o := range inv.Orders {
		value += o.SaleValue
		hours += o.Hours
	}
	for _, e := range inv.Extras {
		value += e.Value
	}
	return value, hours
}
