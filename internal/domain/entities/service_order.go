package entities

import "time"

// OrderStatus represents the production lifecycle of a service order (OS).
//
// The shop floor moves orders between states manually, so there is no strict
// linear transition table. Two rules are enforced at construction time:
//   - terminal states (completed, cancelled) are frozen;
//   - "invoiced" is written only by the invoice aggregator, never by a
//     manual status change.
//
// The on-hold reason rule is an operation-level precondition owned by the
// order use case, not encoded here.

type OrderStatus string

const (
	OrderStatusReceived             OrderStatus = "received"
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusProduction           OrderStatus = "production"
	OrderStatusOnHold               OrderStatus = "on_hold"
	OrderStatusStopped              OrderStatus = "stopped"
	OrderStatusQualityControl       OrderStatus = "quality_control"
	OrderStatusReadyForPickup       OrderStatus = "ready_for_pickup"
	OrderStatusReadyForShipment     OrderStatus = "ready_for_shipment"
	OrderStatusAwaitingInstallation OrderStatus = "awaiting_installation"
	OrderStatusInTransit            OrderStatus = "in_transit"
	OrderStatusDelivered            OrderStatus = "delivered"
	OrderStatusToInvoice            OrderStatus = "to_invoice"
	OrderStatusInvoiced             OrderStatus = "invoiced"
	OrderStatusCompleted            OrderStatus = "completed"
	OrderStatusCancelled            OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPending, OrderStatusProduction,
		OrderStatusOnHold, OrderStatusStopped, OrderStatusQualityControl,
		OrderStatusReadyForPickup, OrderStatusReadyForShipment,
		OrderStatusAwaitingInstallation, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusToInvoice, OrderStatusInvoiced,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal states never transition again. Orders are never deleted, only
// terminally statused.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Open reports whether the order still counts as in-flight for reporting.
func (s OrderStatus) Open() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return false
	}
	return true
}

// CanTransitionTo applies the construction-time rules above. It deliberately
// allows any other pairing, preserving the operational flexibility of manual
// transitions.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	if !to.Valid() || s.Terminal() {
		return false
	}
	if to == OrderStatusInvoiced {
		return false
	}
	return to != s
}

type OrderUrgency string

const (
	OrderUrgencyLow    OrderUrgency = "low"
	OrderUrgencyMedium OrderUrgency = "medium"
	OrderUrgencyHigh   OrderUrgency = "high"
)

func (u OrderUrgency) Valid() bool {
	return u == OrderUrgencyLow || u == OrderUrgencyMedium || u == OrderUrgencyHigh
}

// ServiceOrderItem mirrors BudgetItem but is independently mutable after the
// conversion: editing an order never rewrites the source budget.
type ServiceOrderItem struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// SameContent compares the billable identity of two lines, used by the
// idempotent item re-sync after a partially failed conversion.
func (it ServiceOrderItem) SameContent(name string, quantity int, unitPrice float64) bool {
	return it.ServiceName == name && it.Quantity == quantity && it.UnitPrice == unitPrice
}

// ServiceOrder is a unit of billable work tracked through production.
//
// Storage model (DynamoDB):
//   - PK: id (plus a number-claim row sharing the table, see repository)
//   - GSI1 (number-index): number
//   - GSI2 (budget_id-index): budget_id
//
// Sale value semantics: when the order carries items, SaleValue is the sum
// of item totals and is recomputed on every item write. An itemless order
// keeps an independently set sale value. Consumers must not assume either.
type ServiceOrder struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	BudgetID    string         `json:"budget_id,omitempty"`
	ClientID    string         `json:"client_id"`
	Client      ClientSnapshot `json:"client"`
	Description string         `json:"description,omitempty"`
	SaleValue   float64        `json:"sale_value"`
	Status      OrderStatus    `json:"status"`
	Urgency     OrderUrgency   `json:"urgency"`
	AssignedTo  string         `json:"assigned_to,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`

	// ServiceStart anchors invoice window selection. It defaults to the
	// creation time and is stamped again on the first move into production.
	ServiceStart time.Time `json:"service_start"`

	// InvoiceID is set when the order is frozen into an invoice; a set value
	// makes the order non-selectable for any further billing.
	InvoiceID string `json:"invoice_id,omitempty"`

	Items []ServiceOrderItem `json:"items"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *ServiceOrder) HasItems() bool {
	return len(o.Items) > 0
}

// RecomputeSaleValue re-derives SaleValue from the item lines. It is a no-op
// for itemless orders, whose sale value is set directly.
func (o *ServiceOrder) RecomputeSaleValue() {
	if !o.HasItems() {
		return
	}
	total := 0.0
	for i := range o.Items {
		o.Items[i].TotalPrice = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
		total += o.Items[i].TotalPrice
	}
	o.SaleValue = total
}
