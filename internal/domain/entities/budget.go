package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - A budget becomes "approved" exactly when it is converted into a
//     service order; the conversion flow is the only writer of that status.
//   - Until then it is mutated only by its owning user.

type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
	BudgetStatusExpired  BudgetStatus = "expired"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusPending, BudgetStatusSent,
		BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired:
		return true
	}
	return false
}

// Editable reports whether the budget may still be mutated by its owner.
func (s BudgetStatus) Editable() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusPending, BudgetStatusSent:
		return true
	}
	return false
}

// Convertible reports whether the budget may be turned into a service order.
// Drafts must be sent (or at least pending) first.
func (s BudgetStatus) Convertible() bool {
	return s == BudgetStatusPending || s == BudgetStatusSent
}

// ClientSnapshot is a copy of the client's contact data at the time the
// document was written. It is never a reference: later changes to the client
// record do not rewrite issued budgets, orders or invoices.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// BudgetItem is one quoted line. TotalPrice is always Quantity × UnitPrice;
// it is recomputed on every write and never trusted from input.
type BudgetItem struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Budget is a quote owned by a user, convertible into a ServiceOrder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number
//
// Number is human readable and unique (ORC-0007 style), minted from an
// atomic counter.
type Budget struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	ClientID    string         `json:"client_id"`
	Client      ClientSnapshot `json:"client"`
	Description string         `json:"description,omitempty"`
	TotalValue  float64        `json:"total_value"`
	ValidUntil  *time.Time     `json:"valid_until,omitempty"`
	Status      BudgetStatus   `json:"status"`
	Items       []BudgetItem   `json:"items"`

	// ConvertedOrderNumber records which order this budget produced, once
	// approved. It makes re-running a conversion idempotent.
	ConvertedOrderNumber string `json:"converted_order_number,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecomputeTotals enforces the line-item invariant (total = qty × unit) and
// refreshes the budget total as the sum of its lines.
func (b *Budget) RecomputeTotals() {
	total := 0.0
	for i := range b.Items {
		b.Items[i].TotalPrice = float64(b.Items[i].Quantity) * b.Items[i].UnitPrice
		total += b.Items[i].TotalPrice
	}
	b.TotalValue = total
}
