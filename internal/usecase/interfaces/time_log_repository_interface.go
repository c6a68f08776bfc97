package interfaces

import (
	"context"

	"serralheria_os/internal/domain/entities"
)

// ITimeLogRepository abstracts DynamoDB persistence for TimeLog.
//
// Aggregates are always recomputed from the logs returned here; there is no
// denormalized hours counter anywhere.
type ITimeLogRepository interface {
	Create(ctx context.Context, l entities.TimeLog) (entities.TimeLog, error)
	GetByID(ctx context.Context, id string) (entities.TimeLog, error)
	Put(ctx context.Context, l entities.TimeLog) (entities.TimeLog, error)
	Delete(ctx context.Context, id string) error
	ListByTaskID(ctx context.Context, taskID string) ([]entities.TimeLog, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.TimeLog, error)
	List(ctx context.Context) ([]entities.TimeLog, error)
}
