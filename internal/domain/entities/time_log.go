package entities

import "time"

// TimeLog is a worked interval against a task, the source of truth for
// billed hours. An open log (no end time) contributes zero to every
// aggregate until it is closed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (task_id-index): task_id
//   - GSI2 (order_id-index): order_id (denormalized for order-level sums)
type TimeLog struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"task_id"`
	OrderID   string     `json:"order_id"`
	Worker    string     `json:"worker"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

func (l TimeLog) Closed() bool {
	return l.EndedAt != nil
}

// HoursWorked is (end − start) in hours for a closed log, zero otherwise.
func (l TimeLog) HoursWorked() float64 {
	if l.EndedAt == nil {
		return 0
	}
	h := l.EndedAt.Sub(l.StartedAt).Hours()
	if h < 0 {
		return 0
	}
	return h
}
