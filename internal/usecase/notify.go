package usecase

import (
	"context"

	"serralheria_os/internal/usecase/interfaces"
)

// Entity tags used by the change-notification hints.
const (
	entityBudget  = "budget"
	entityOrder   = "service_order"
	entityTask    = "task"
	entityTimeLog = "time_log"
	entityCall    = "call"
	entityInvoice = "invoice"
)

// notify emits a changed-entity hint after a successful mutation. The
// notifier is optional; core behavior never depends on it.
func notify(ctx context.Context, n interfaces.INotifier, entity, id, action string) {
	if n == nil {
		return
	}
	n.EntityChanged(ctx, entity, id, action)
}
