package entities

import "time"

// Call is the hold record that makes every on_hold transition auditable.
// An order cannot enter on_hold without one; the call and the status flip
// commit in the same storage transaction.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Call struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	Reason     string     `json:"reason"`
	CreatedBy  string     `json:"created_by"`
	Resolved   bool       `json:"resolved"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
