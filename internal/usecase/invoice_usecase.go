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
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidInvoiceInput = errors.New("invalid invoice payload")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceAlreadyVoid  = errors.New("invoice already void")

	// ErrNoBillableOrders is recoverable: the caller retries with another
	// window. It also covers the case where every candidate was invalidated
	// between selection and commit.
	ErrNoBillableOrders = errors.New("no billable orders in the window")
)

// IInvoiceUseCase aggregates a client's billable orders into frozen
// invoices and guarantees at-most-once billing per order.
type IInvoiceUseCase interface {
	Create(ctx context.Context, actor string, in CreateInvoiceInput) (InvoiceResult, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error)
	Void(ctx context.Context, actor, id string) (InvoiceVoidResult, error)
}

type InvoiceExtraInput struct {
	Description string
	Value       float64
}

type CreateInvoiceInput struct {
	ClientID string
	// From/To bound the service-start window of selected orders (inclusive).
	From   time.Time
	To     time.Time
	Extras []InvoiceExtraInput
}

// InvoiceResult reports the persisted invoice plus any orders that were
// selected but invalidated at commit time (status no longer to_invoice or
// already claimed by a concurrent invoice).
type InvoiceResult struct {
	Invoice       entities.Invoice
	DroppedOrders []string
}

// InvoiceVoidResult reports the voided invoice plus any orders that could not
// be released back to to_invoice (they moved past invoiced and keep their
// status).
type InvoiceVoidResult struct {
	Invoice        entities.Invoice
	RetainedOrders []string
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	orders   interfaces.IServiceOrderRepository
	logs     interfaces.ITimeLogRepository
	notifier interfaces.INotifier
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	orders interfaces.IServiceOrderRepository,
	logs interfaces.ITimeLogRepository,
	notifier interfaces.INotifier,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, orders: orders, logs: logs, notifier: notifier}
}

// Create selects the client's to_invoice orders inside the service-start
// window, claims each one (optimistic: the claim re-validates status and the
// absence of a prior invoice reference), freezes sale values and recomputed
// hours into the snapshot, and persists the invoice.
//
// Claims that fail are dropped and reported, not fatal. If the final
// persist fails, the claims are released best-effort so the orders become
// selectable again.
func (u *InvoiceUseCase) Create(ctx context.Context, actor string, in CreateInvoiceInput) (InvoiceResult, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return InvoiceResult{}, fmt.Errorf("%w: missing actor", ErrInvalidInvoiceInput)
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return InvoiceResult{}, fmt.Errorf("%w: client id is required", ErrInvalidInvoiceInput)
	}
	if in.From.IsZero() || in.To.IsZero() || in.To.Before(in.From) {
		return InvoiceResult{}, fmt.Errorf("%w: invalid window", ErrInvalidInvoiceInput)
	}
	for _, e := range in.Extras {
		if strings.TrimSpace(e.Description) == "" {
			return InvoiceResult{}, fmt.Errorf("%w: extra description is required", ErrInvalidInvoiceInput)
		}
		if e.Value < 0 {
			return InvoiceResult{}, fmt.Errorf("%w: extra value must be >= 0", ErrInvalidInvoiceInput)
		}
	}

	from := in.From.UTC()
	to := in.To.UTC()
	candidates, err := u.orders.List(ctx, interfaces.OrderFilter{
		ClientID:         clientID,
		Status:           entities.OrderStatusToInvoice,
		ServiceStartFrom: &from,
		ServiceStartTo:   &to,
		NotInvoiced:      true,
	})
	if err != nil {
		return InvoiceResult{}, err
	}
	if len(candidates) == 0 {
		return InvoiceResult{}, ErrNoBillableOrders
	}

	invoiceID := uuid.NewString()
	var snapshot []entities.InvoiceOrder
	var dropped []string

	for _, o := range candidates {
		claimed, err := u.orders.ClaimForInvoice(ctx, o.ID, invoiceID)
		if err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				log.Printf("[invoice][create] order %s invalidated between selection and commit, dropping", o.Number)
				dropped = append(dropped, o.Number)
				continue
			}
			u.releaseClaims(ctx, snapshot, invoiceID)
			return InvoiceResult{}, err
		}

		hours, err := u.workedHours(ctx, claimed.ID)
		if err != nil {
			u.releaseClaims(ctx, snapshot, invoiceID)
			_ = u.orders.ReleaseFromInvoice(ctx, claimed.ID, invoiceID)
			return InvoiceResult{}, err
		}

		snapshot = append(snapshot, entities.InvoiceOrder{
			OrderID:     claimed.ID,
			OrderNumber: claimed.Number,
			SaleValue:   claimed.SaleValue,
			Hours:       hours,
		})
	}

	if len(snapshot) == 0 {
		return InvoiceResult{DroppedOrders: dropped}, ErrNoBillableOrders
	}

	inv := entities.Invoice{
		ID:        invoiceID,
		ClientID:  clientID,
		Orders:    snapshot,
		CreatedBy: actor,
		CreatedAt: time.Now().UTC(),
	}
	for _, e := range in.Extras {
		inv.Extras = append(inv.Extras, entities.InvoiceExtra{
			Description: strings.TrimSpace(e.Description),
			Value:       e.Value,
		})
	}
	inv.TotalValue, inv.TotalHours = inv.ComputeTotals()

	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		u.releaseClaims(ctx, snapshot, invoiceID)
		return InvoiceResult{}, err
	}

	log.Printf("[invoice][create] client %s: %d orders, total %.2f, %.2fh (%d dropped)",
		clientID, len(created.Orders), created.TotalValue, created.TotalHours, len(dropped))
	notify(ctx, u.notifier, entityInvoice, created.ID, "created")
	for _, s := range snapshot {
		notify(ctx, u.notifier, entityOrder, s.OrderID, "status_changed")
	}
	return InvoiceResult{Invoice: created, DroppedOrders: dropped}, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInvoiceInput)
	}
	return u.invoices.ListByClientID(ctx, clientID)
}

// Void marks the invoice void and releases its orders back to to_invoice so
// they become billable again. Orders that already moved past invoiced keep
// their status and are reported as retained instead of being re-exposed for
// billing.
func (u *InvoiceUseCase) Void(ctx context.Context, actor, id string) (InvoiceVoidResult, error) {
	if strings.TrimSpace(actor) == "" {
		return InvoiceVoidResult{}, fmt.Errorf("%w: missing actor", ErrInvalidInvoiceInput)
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return InvoiceVoidResult{}, err
	}
	if inv.Void {
		return InvoiceVoidResult{}, ErrInvoiceAlreadyVoid
	}

	voided, err := u.invoices.MarkVoid(ctx, inv.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return InvoiceVoidResult{}, ErrInvoiceAlreadyVoid
		}
		return InvoiceVoidResult{}, err
	}

	released, retained := u.releaseClaims(ctx, voided.Orders, voided.ID)
	notify(ctx, u.notifier, entityInvoice, voided.ID, "voided")
	for _, o := range released {
		notify(ctx, u.notifier, entityOrder, o.OrderID, "status_changed")
	}
	return InvoiceVoidResult{Invoice: voided, RetainedOrders: retained}, nil
}

func (u *InvoiceUseCase) workedHours(ctx context.Context, orderID string) (float64, error) {
	logs, err := u.logs.ListByOrderID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, l := range logs {
		total += l.HoursWorked()
	}
	return total, nil
}

// releaseClaims is best-effort compensation. The release is conditioned on
// the order still being invoiced by this invoice; orders that moved past
// invoiced fail the condition, keep their status and are reported as
// retained.
func (u *InvoiceUseCase) releaseClaims(ctx context.Context, claimed []entities.InvoiceOrder, invoiceID string) (released []entities.InvoiceOrder, retained []string) {
	for _, s := range claimed {
		err := u.orders.ReleaseFromInvoice(ctx, s.OrderID, invoiceID)
		switch {
		case err == nil:
			released = append(released, s)
		case errors.Is(err, interfaces.ErrConditionFailed):
			log.Printf("[invoice][release] order %s moved past invoiced, leaving it untouched", s.OrderNumber)
			retained = append(retained, s.OrderNumber)
		default:
			log.Printf("[invoice][release] order %s: %v", s.OrderNumber, err)
			retained = append(retained, s.OrderNumber)
		}
	}
	return released, retained
}
