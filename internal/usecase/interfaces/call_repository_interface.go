package interfaces

import (
	"context"

	"serralheria_os/internal/domain/entities"
)

// ICallRepository abstracts DynamoDB persistence for Call (hold records).
//
// Calls are created only inside IServiceOrderRepository.PlaceOnHold, so this
// interface covers reads and resolution.
type ICallRepository interface {
	GetByID(ctx context.Context, id string) (entities.Call, error)
	Put(ctx context.Context, c entities.Call) (entities.Call, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Call, error)
}
