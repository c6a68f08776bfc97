package interfaces

import (
	"context"

	"serralheria_os/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are immutable snapshots; the only mutation is voiding.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error)
	MarkVoid(ctx context.Context, id string) (entities.Invoice, error)
}
