package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderInput    = errors.New("invalid order payload")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderStale           = errors.New("order status changed since it was read")
	ErrUnknownOrderStatus   = errors.New("unknown order status")
	ErrInvalidOrderStatus   = errors.New("invalid order status transition")
	ErrOrderTerminal        = errors.New("order is in a terminal status")
	ErrStatusSetByInvoicing = errors.New("invoiced is set only by the invoice aggregator")
	ErrHoldReasonRequired   = errors.New("a reason is required to place an order on hold")
	ErrBudgetNotConvertible = errors.New("budget is not convertible")
	ErrOrderItemNotFound    = errors.New("order item not found")
	ErrSaleValueFromItems   = errors.New("sale value is derived from items and cannot be set directly")
	ErrInvalidCallID        = errors.New("invalid call id")
	ErrCallNotFound         = errors.New("call not found")
	ErrCallAlreadyResolved  = errors.New("call already resolved")
)

// IServiceOrderUseCase owns the order lifecycle: conversion from budgets,
// the status machine (including the on-hold reason protocol) and item edits.
type IServiceOrderUseCase interface {
	ConvertBudget(ctx context.Context, actor, budgetID string) (entities.ServiceOrder, error)
	Create(ctx context.Context, actor string, in CreateOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, f interfaces.OrderFilter) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, actor, id string, in UpdateOrderInput) (entities.ServiceOrder, error)
	AddItem(ctx context.Context, actor, orderID string, in OrderItemInput) (entities.ServiceOrder, error)
	UpdateItem(ctx context.Context, actor, orderID, itemID string, in OrderItemInput) (entities.ServiceOrder, error)
	RemoveItem(ctx context.Context, actor, orderID, itemID string) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, actor, orderID string, to entities.OrderStatus, reason string) (entities.ServiceOrder, error)
	ListCalls(ctx context.Context, orderID string) ([]entities.Call, error)
	ResolveCall(ctx context.Context, actor, callID string) (entities.Call, error)
}

type CreateOrderInput struct {
	ClientID    string
	Client      entities.ClientSnapshot
	Description string
	SaleValue   float64
	Urgency     entities.OrderUrgency
	AssignedTo  string
	Deadline    *time.Time
	Items       []OrderItemInput
}

// UpdateOrderInput carries partial edits; nil fields are left untouched.
type UpdateOrderInput struct {
	Description  *string
	Urgency      *entities.OrderUrgency
	AssignedTo   *string
	Deadline     *time.Time
	ServiceStart *time.Time
	// SaleValue is accepted only while the order has no items; itemized
	// orders derive it from their lines.
	SaleValue *float64
}

type OrderItemInput struct {
	ServiceName string
	Description string
	Quantity    int
	UnitPrice   float64
}

type ServiceOrderUseCase struct {
	orders    interfaces.IServiceOrderRepository
	budgets   interfaces.IBudgetRepository
	calls     interfaces.ICallRepository
	allocator *OrderNumberAllocator
	notifier  interfaces.INotifier
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	budgets interfaces.IBudgetRepository,
	calls interfaces.ICallRepository,
	allocator *OrderNumberAllocator,
	notifier interfaces.INotifier,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:    orders,
		budgets:   budgets,
		calls:     calls,
		allocator: allocator,
		notifier:  notifier,
	}
}

// ConvertBudget turns an approved-to-be budget into a service order.
//
// The conversion is one failure unit. The order row and its number claim
// commit in a single transaction; the budget flip to approved is conditioned
// on the status the conversion read. If the flip fails after the order
// exists, re-running the conversion completes it idempotently: items are
// re-synced by content, never duplicated, and the same order is returned.
func (u *ServiceOrderUseCase) ConvertBudget(ctx context.Context, actor, budgetID string) (entities.ServiceOrder, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: missing actor", ErrInvalidOrderInput)
	}
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.ServiceOrder{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if b.ID == "" {
		return entities.ServiceOrder{}, ErrBudgetNotFound
	}

	// Recovery path: an order already exists for this budget (a previous
	// conversion lost its budget flip, or this is a plain re-run).
	if existing, err := u.orders.GetByBudgetID(ctx, budgetID); err != nil {
		return entities.ServiceOrder{}, err
	} else if existing.ID != "" {
		return u.completeConversion(ctx, b, existing)
	}

	if !b.Status.Convertible() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: status %s", ErrBudgetNotConvertible, b.Status)
	}

	base, err := u.allocator.DeriveBase(b.Number)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:           uuid.NewString(),
		BudgetID:     b.ID,
		ClientID:     b.ClientID,
		Client:       b.Client,
		Description:  b.Description,
		SaleValue:    b.TotalValue,
		Status:       entities.OrderStatusPending,
		Urgency:      entities.OrderUrgencyMedium,
		ServiceStart: now,
		Items:        copyBudgetItems(b.Items),
		CreatedBy:    actor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Allocate and insert. A concurrent conversion can win a number between
	// the pre-check and the transactional insert; resume from the losing
	// suffix. The probe cap bounds the whole loop.
	created := entities.ServiceOrder{}
	for suffix := 0; ; {
		number, s, err := u.allocator.Allocate(ctx, base, suffix)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		order.Number = number
		created, err = u.orders.Create(ctx, order)
		if err != nil {
			if errors.Is(err, interfaces.ErrNumberTaken) {
				log.Printf("[order][convert] number %s lost insert race, reprobing", number)
				suffix = s + 1
				continue
			}
			return entities.ServiceOrder{}, err
		}
		break
	}

	if _, err := u.budgets.ApproveConversion(ctx, b.ID, created.Number, b.Status); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// Order exists; a retry finds it via the budget reference and
			// completes the flip.
			return created, fmt.Errorf("order %s created but budget approval failed: %w", created.Number, ErrBudgetStale)
		}
		return created, err
	}

	log.Printf("[order][convert] budget %s -> order %s (%d items, value %.2f)", b.Number, created.Number, len(created.Items), created.SaleValue)
	notify(ctx, u.notifier, entityOrder, created.ID, "created")
	notify(ctx, u.notifier, entityBudget, b.ID, "status_changed")
	return created, nil
}

// completeConversion finishes a conversion that already produced an order:
// re-syncs missing items by content and flips the budget if still pending.
func (u *ServiceOrderUseCase) completeConversion(ctx context.Context, b entities.Budget, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	if syncOrderItemsFromBudget(&order, b) {
		order.UpdatedAt = time.Now().UTC()
		updated, err := u.orders.Put(ctx, order, order.Status)
		if err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				return entities.ServiceOrder{}, ErrOrderStale
			}
			return entities.ServiceOrder{}, err
		}
		order = updated
		notify(ctx, u.notifier, entityOrder, order.ID, "updated")
	}

	if b.Status != entities.BudgetStatusApproved {
		if _, err := u.budgets.ApproveConversion(ctx, b.ID, order.Number, b.Status); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				return order, fmt.Errorf("order %s exists but budget approval failed: %w", order.Number, ErrBudgetStale)
			}
			return order, err
		}
		notify(ctx, u.notifier, entityBudget, b.ID, "status_changed")
	}
	return order, nil
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, actor string, in CreateOrderInput) (entities.ServiceOrder, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: missing actor", ErrInvalidOrderInput)
	}
	if strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.Client.Name) == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: client is required", ErrInvalidOrderInput)
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = entities.OrderUrgencyMedium
	}
	if !urgency.Valid() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: urgency %q", ErrInvalidOrderInput, in.Urgency)
	}
	if in.SaleValue < 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: sale value must be >= 0", ErrInvalidOrderInput)
	}
	items, err := buildOrderItems(in.Items)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	seq, err := u.budgets.NextSequence(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	base := fmt.Sprintf("%s-%04d", u.allocator.orderPrefix, seq)

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:           uuid.NewString(),
		ClientID:     strings.TrimSpace(in.ClientID),
		Client:       in.Client,
		Description:  strings.TrimSpace(in.Description),
		SaleValue:    in.SaleValue,
		Status:       entities.OrderStatusPending,
		Urgency:      urgency,
		AssignedTo:   strings.TrimSpace(in.AssignedTo),
		Deadline:     in.Deadline,
		ServiceStart: now,
		Items:        items,
		CreatedBy:    actor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.RecomputeSaleValue()

	created := entities.ServiceOrder{}
	for suffix := 0; ; {
		number, s, err := u.allocator.Allocate(ctx, base, suffix)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		order.Number = number
		created, err = u.orders.Create(ctx, order)
		if err != nil {
			if errors.Is(err, interfaces.ErrNumberTaken) {
				suffix = s + 1
				continue
			}
			return entities.ServiceOrder{}, err
		}
		break
	}

	notify(ctx, u.notifier, entityOrder, created.ID, "created")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, f interfaces.OrderFilter) ([]entities.ServiceOrder, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, f.Status)
	}
	return u.orders.List(ctx, f)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, actor, id string, in UpdateOrderInput) (entities.ServiceOrder, error) {
	o, err := u.getMutable(ctx, actor, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if in.Description != nil {
		o.Description = strings.TrimSpace(*in.Description)
	}
	if in.Urgency != nil {
		if !in.Urgency.Valid() {
			return entities.ServiceOrder{}, fmt.Errorf("%w: urgency %q", ErrInvalidOrderInput, *in.Urgency)
		}
		o.Urgency = *in.Urgency
	}
	if in.AssignedTo != nil {
		o.AssignedTo = strings.TrimSpace(*in.AssignedTo)
	}
	if in.Deadline != nil {
		o.Deadline = in.Deadline
	}
	if in.ServiceStart != nil {
		o.ServiceStart = in.ServiceStart.UTC()
	}
	if in.SaleValue != nil {
		if o.HasItems() {
			return entities.ServiceOrder{}, ErrSaleValueFromItems
		}
		if *in.SaleValue < 0 {
			return entities.ServiceOrder{}, fmt.Errorf("%w: sale value must be >= 0", ErrInvalidOrderInput)
		}
		o.SaleValue = *in.SaleValue
	}
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Put(ctx, o, o.Status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.ServiceOrder{}, ErrOrderStale
		}
		return entities.ServiceOrder{}, err
	}
	notify(ctx, u.notifier, entityOrder, updated.ID, "updated")
	return updated, nil
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, actor, orderID string, in OrderItemInput) (entities.ServiceOrder, error) {
	o, err := u.getMutable(ctx, actor, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	item, err := buildOrderItem(in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o.Items = append(o.Items, item)
	return u.putWithItems(ctx, o)
}

func (u *ServiceOrderUseCase) UpdateItem(ctx context.Context, actor, orderID, itemID string, in OrderItemInput) (entities.ServiceOrder, error) {
	o, err := u.getMutable(ctx, actor, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	item, err := buildOrderItem(in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	found := false
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			item.ID = itemID
			o.Items[i] = item
			found = true
			break
		}
	}
	if !found {
		return entities.ServiceOrder{}, ErrOrderItemNotFound
	}
	return u.putWithItems(ctx, o)
}

func (u *ServiceOrderUseCase) RemoveItem(ctx context.Context, actor, orderID, itemID string) (entities.ServiceOrder, error) {
	o, err := u.getMutable(ctx, actor, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	kept := o.Items[:0]
	found := false
	for _, it := range o.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return entities.ServiceOrder{}, ErrOrderItemNotFound
	}
	o.Items = kept
	return u.putWithItems(ctx, o)
}

// ChangeStatus applies a manual status transition. Entering on_hold demands
// a reason and commits the call record with the flip atomically; a withheld
// reason leaves the order untouched and creates no call.
func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, actor, orderID string, to entities.OrderStatus, reason string) (entities.ServiceOrder, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: missing actor", ErrInvalidOrderInput)
	}
	if !to.Valid() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, to)
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status.Terminal() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s", ErrOrderTerminal, o.Status)
	}
	if to == entities.OrderStatusInvoiced {
		return entities.ServiceOrder{}, ErrStatusSetByInvoicing
	}
	if !o.Status.CanTransitionTo(to) {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidOrderStatus, o.Status, to)
	}

	if to == entities.OrderStatusOnHold {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return entities.ServiceOrder{}, ErrHoldReasonRequired
		}
		call := entities.Call{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Reason:    reason,
			CreatedBy: actor,
			CreatedAt: time.Now().UTC(),
		}
		updated, err := u.orders.PlaceOnHold(ctx, o.ID, o.Status, call)
		if err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				return entities.ServiceOrder{}, ErrOrderStale
			}
			return entities.ServiceOrder{}, err
		}
		log.Printf("[order][status] %s -> on_hold (call %s)", o.Number, call.ID)
		notify(ctx, u.notifier, entityOrder, updated.ID, "status_changed")
		notify(ctx, u.notifier, entityCall, call.ID, "created")
		return updated, nil
	}

	// First move into production anchors the invoice selection window.
	var serviceStart *time.Time
	if to == entities.OrderStatusProduction &&
		(o.Status == entities.OrderStatusReceived || o.Status == entities.OrderStatusPending) {
		now := time.Now().UTC()
		serviceStart = &now
	}

	updated, err := u.orders.UpdateStatus(ctx, o.ID, o.Status, to, serviceStart)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.ServiceOrder{}, ErrOrderStale
		}
		return entities.ServiceOrder{}, err
	}
	notify(ctx, u.notifier, entityOrder, updated.ID, "status_changed")
	return updated, nil
}

func (u *ServiceOrderUseCase) ListCalls(ctx context.Context, orderID string) ([]entities.Call, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.calls.ListByOrderID(ctx, orderID)
}

func (u *ServiceOrderUseCase) ResolveCall(ctx context.Context, actor, callID string) (entities.Call, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Call{}, fmt.Errorf("%w: missing actor", ErrInvalidOrderInput)
	}
	callID = strings.TrimSpace(callID)
	if callID == "" {
		return entities.Call{}, ErrInvalidCallID
	}

	c, err := u.calls.GetByID(ctx, callID)
	if err != nil {
		return entities.Call{}, err
	}
	if c.ID == "" {
		return entities.Call{}, ErrCallNotFound
	}
	if c.Resolved {
		return entities.Call{}, ErrCallAlreadyResolved
	}

	now := time.Now().UTC()
	c.Resolved = true
	c.ResolvedBy = actor
	c.ResolvedAt = &now

	updated, err := u.calls.Put(ctx, c)
	if err != nil {
		return entities.Call{}, err
	}
	notify(ctx, u.notifier, entityCall, updated.ID, "resolved")
	return updated, nil
}

func (u *ServiceOrderUseCase) getMutable(ctx context.Context, actor, id string) (entities.ServiceOrder, error) {
	if strings.TrimSpace(actor) == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: missing actor", ErrInvalidOrderInput)
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status.Terminal() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s", ErrOrderTerminal, o.Status)
	}
	return o, nil
}

func (u *ServiceOrderUseCase) putWithItems(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.RecomputeSaleValue()
	o.UpdatedAt = time.Now().UTC()
	updated, err := u.orders.Put(ctx, o, o.Status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.ServiceOrder{}, ErrOrderStale
		}
		return entities.ServiceOrder{}, err
	}
	notify(ctx, u.notifier, entityOrder, updated.ID, "items_changed")
	return updated, nil
}

func copyBudgetItems(items []entities.BudgetItem) []entities.ServiceOrderItem {
	out := make([]entities.ServiceOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServiceOrderItem{
			ID:          uuid.NewString(),
			ServiceName: it.ServiceName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return out
}

// syncOrderItemsFromBudget appends budget lines missing from the order,
// diffing by content (name, quantity, unit price) so a retry never
// duplicates already-migrated items.
func syncOrderItemsFromBudget(o *entities.ServiceOrder, b entities.Budget) bool {
	changed := false
	for _, bi := range b.Items {
		present := false
		for _, oi := range o.Items {
			if oi.SameContent(bi.ServiceName, bi.Quantity, bi.UnitPrice) {
				present = true
				break
			}
		}
		if !present {
			o.Items = append(o.Items, entities.ServiceOrderItem{
				ID:          uuid.NewString(),
				ServiceName: bi.ServiceName,
				Description: bi.Description,
				Quantity:    bi.Quantity,
				UnitPrice:   bi.UnitPrice,
				TotalPrice:  bi.TotalPrice,
			})
			changed = true
		}
	}
	if changed {
		o.RecomputeSaleValue()
	}
	return changed
}

func buildOrderItems(in []OrderItemInput) ([]entities.ServiceOrderItem, error) {
	if len(in) == 0 {
		return nil, nil
	}
	items := make([]entities.ServiceOrderItem, 0, len(in))
	for _, it := range in {
		item, err := buildOrderItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildOrderItem(in OrderItemInput) (entities.ServiceOrderItem, error) {
	name := strings.TrimSpace(in.ServiceName)
	if name == "" {
		return entities.ServiceOrderItem{}, fmt.Errorf("%w: item service name is required", ErrInvalidOrderInput)
	}
	if in.Quantity < 1 {
		return entities.ServiceOrderItem{}, fmt.Errorf("%w: item %q quantity must be >= 1", ErrInvalidOrderInput, name)
	}
	if in.UnitPrice < 0 {
		return entities.ServiceOrderItem{}, fmt.Errorf("%w: item %q unit price must be >= 0", ErrInvalidOrderInput, name)
	}
	return entities.ServiceOrderItem{
		ID:          uuid.NewString(),
		ServiceName: name,
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalPrice:  float64(in.Quantity) * in.UnitPrice,
	}, nil
}
