package interfaces

import (
	"context"

	"serralheria_os/internal/domain/entities"
)

// TaskFilter narrows task listings. Zero values mean "any".
type TaskFilter struct {
	AssignedTo string
	Status     entities.TaskStatus
}

// ITaskRepository abstracts DynamoDB persistence for Task.
type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	Put(ctx context.Context, t entities.Task) (entities.Task, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Task, error)
	List(ctx context.Context, f TaskFilter) ([]entities.Task, error)
}
