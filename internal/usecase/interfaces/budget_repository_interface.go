package interfaces

import (
	"context"

	"serralheria_os/internal/domain/entities"
)

// BudgetFilter narrows budget listings. Zero values mean "any".
type BudgetFilter struct {
	Status    entities.BudgetStatus
	CreatedBy string
}

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Put replaces the whole document but only if the stored status still equals
// expected; a stale status yields ErrConditionFailed. ApproveConversion is
// the single writer of the approved status and records the minted order
// number on the budget in the same conditional write.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Put(ctx context.Context, b entities.Budget, expected entities.BudgetStatus) (entities.Budget, error)
	ApproveConversion(ctx context.Context, id string, orderNumber string, expected entities.BudgetStatus) (entities.Budget, error)
	List(ctx context.Context, f BudgetFilter) ([]entities.Budget, error)

	// NextSequence returns the next value of the budget numbering counter
	// (atomic, never reused).
	NextSequence(ctx context.Context) (int, error)
}
