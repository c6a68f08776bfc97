package interfaces

import (
	"context"
	"time"

	"serralheria_os/internal/domain/entities"
)

// OrderFilter narrows order listings. Zero values mean "any".
type OrderFilter struct {
	ClientID         string
	Status           entities.OrderStatus
	ServiceStartFrom *time.Time
	ServiceStartTo   *time.Time
	NotInvoiced      bool
}

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Concurrency contract:
//   - Create writes the order row and a number-claim row in one transaction;
//     a lost race on the number yields ErrNumberTaken.
//   - Every update is conditioned on the status the caller read; a stale
//     status yields ErrConditionFailed.
//   - PlaceOnHold commits the call record and the status flip atomically;
//     if either condition fails, nothing is written.
//   - ClaimForInvoice succeeds only while the order is still to_invoice and
//     unreferenced by any invoice (at-most-once billing).
//   - ReleaseFromInvoice undoes a claim only while the order is still
//     invoiced and still references the releasing invoice; an order that
//     moved past invoiced keeps its status.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)
	Put(ctx context.Context, o entities.ServiceOrder, expected entities.OrderStatus) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, serviceStart *time.Time) (entities.ServiceOrder, error)
	PlaceOnHold(ctx context.Context, id string, from entities.OrderStatus, call entities.Call) (entities.ServiceOrder, error)
	ClaimForInvoice(ctx context.Context, id, invoiceID string) (entities.ServiceOrder, error)
	ReleaseFromInvoice(ctx context.Context, id, invoiceID string) error
	List(ctx context.Context, f OrderFilter) ([]entities.ServiceOrder, error)
}
