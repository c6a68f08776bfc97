package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBudgetID      = errors.New("invalid budget id")
	ErrInvalidBudgetInput   = errors.New("invalid budget payload")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrBudgetNotEditable    = errors.New("budget is no longer editable")
	ErrNotBudgetOwner       = errors.New("budget belongs to another user")
	ErrBudgetStale          = errors.New("budget changed since it was read")
	ErrInvalidBudgetStatus  = errors.New("invalid budget status")
	ErrBudgetStatusReserved = errors.New("approved is set only by conversion")
)

// IBudgetUseCase exposes quote operations: CRUD, manual status moves and the
// numbering that the order allocator later derives from.
type IBudgetUseCase interface {
	Create(ctx context.Context, actor string, in CreateBudgetInput) (entities.Budget, error)
	Update(ctx context.Context, actor, id string, in UpdateBudgetInput) (entities.Budget, error)
	UpdateStatus(ctx context.Context, actor, id string, to entities.BudgetStatus) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error)
}

type BudgetItemInput struct {
	ServiceName string
	Description string
	Quantity    int
	UnitPrice   float64
}

type CreateBudgetInput struct {
	ClientID    string
	Client      entities.ClientSnapshot
	Description string
	ValidUntil  *time.Time
	// Pending skips the draft stage so the budget is immediately convertible.
	Pending bool
	Items   []BudgetItemInput
}

// UpdateBudgetInput carries partial edits; nil fields are left untouched.
type UpdateBudgetInput struct {
	Client      *entities.ClientSnapshot
	Description *string
	ValidUntil  *time.Time
	Items       *[]BudgetItemInput
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	notifier    interfaces.INotifier
	quotePrefix string
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, notifier interfaces.INotifier, quotePrefix string) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, notifier: notifier, quotePrefix: quotePrefix}
}

func (u *BudgetUseCase) Create(ctx context.Context, actor string, in CreateBudgetInput) (entities.Budget, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Budget{}, fmt.Errorf("%w: missing actor", ErrInvalidBudgetInput)
	}
	if strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.Client.Name) == "" {
		return entities.Budget{}, fmt.Errorf("%w: client is required", ErrInvalidBudgetInput)
	}
	items, err := buildBudgetItems(in.Items)
	if err != nil {
		return entities.Budget{}, err
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	status := entities.BudgetStatusDraft
	if in.Pending {
		status = entities.BudgetStatusPending
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:          uuid.NewString(),
		Number:      fmt.Sprintf("%s-%04d", u.quotePrefix, seq),
		ClientID:    strings.TrimSpace(in.ClientID),
		Client:      in.Client,
		Description: strings.TrimSpace(in.Description),
		ValidUntil:  in.ValidUntil,
		Status:      status,
		Items:       items,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.RecomputeTotals()

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	notify(ctx, u.notifier, entityBudget, created.ID, "created")
	return created, nil
}

func (u *BudgetUseCase) Update(ctx context.Context, actor, id string, in UpdateBudgetInput) (entities.Budget, error) {
	b, err := u.getEditable(ctx, actor, id)
	if err != nil {
		return entities.Budget{}, err
	}

	if in.Client != nil {
		if strings.TrimSpace(in.Client.Name) == "" {
			return entities.Budget{}, fmt.Errorf("%w: client name is required", ErrInvalidBudgetInput)
		}
		b.Client = *in.Client
	}
	if in.Description != nil {
		b.Description = strings.TrimSpace(*in.Description)
	}
	if in.ValidUntil != nil {
		b.ValidUntil = in.ValidUntil
	}
	if in.Items != nil {
		items, err := buildBudgetItems(*in.Items)
		if err != nil {
			return entities.Budget{}, err
		}
		b.Items = items
	}
	b.RecomputeTotals()
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Put(ctx, b, b.Status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetStale
		}
		return entities.Budget{}, err
	}
	notify(ctx, u.notifier, entityBudget, updated.ID, "updated")
	return updated, nil
}

func (u *BudgetUseCase) UpdateStatus(ctx context.Context, actor, id string, to entities.BudgetStatus) (entities.Budget, error) {
	if !to.Valid() {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}
	if to == entities.BudgetStatusApproved {
		return entities.Budget{}, ErrBudgetStatusReserved
	}

	b, err := u.getEditable(ctx, actor, id)
	if err != nil {
		return entities.Budget{}, err
	}

	prior := b.Status
	b.Status = to
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Put(ctx, b, prior)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetStale
		}
		return entities.Budget{}, err
	}
	notify(ctx, u.notifier, entityBudget, updated.ID, "status_changed")
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidBudgetStatus
	}
	return u.repo.List(ctx, f)
}

func (u *BudgetUseCase) getEditable(ctx context.Context, actor, id string) (entities.Budget, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Budget{}, fmt.Errorf("%w: missing actor", ErrInvalidBudgetInput)
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if !b.Status.Editable() {
		return entities.Budget{}, ErrBudgetNotEditable
	}
	if b.CreatedBy != actor {
		return entities.Budget{}, ErrNotBudgetOwner
	}
	return b, nil
}

func buildBudgetItems(in []BudgetItemInput) ([]entities.BudgetItem, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidBudgetInput)
	}
	items := make([]entities.BudgetItem, 0, len(in))
	for _, it := range in {
		name := strings.TrimSpace(it.ServiceName)
		if name == "" {
			return nil, fmt.Errorf("%w: item service name is required", ErrInvalidBudgetInput)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %q quantity must be >= 1", ErrInvalidBudgetInput, name)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item %q unit price must be >= 0", ErrInvalidBudgetInput, name)
		}
		items = append(items, entities.BudgetItem{
			ID:          uuid.NewString(),
			ServiceName: name,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  float64(it.Quantity) * it.UnitPrice,
		})
	}
	return items, nil
}
