package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"
	mock_interfaces "serralheria_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type invoiceUseCaseMocks struct {
	invoices *mock_interfaces.MockIInvoiceRepository
	orders   *mock_interfaces.MockIServiceOrderRepository
	logs     *mock_interfaces.MockITimeLogRepository
}

func newInvoiceUseCase(ctrl *gomock.Controller) (*InvoiceUseCase, invoiceUseCaseMocks) {
	m := invoiceUseCaseMocks{
		invoices: mock_interfaces.NewMockIInvoiceRepository(ctrl),
		orders:   mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		logs:     mock_interfaces.NewMockITimeLogRepository(ctrl),
	}
	return NewInvoiceUseCase(m.invoices, m.orders, m.logs, nil), m
}

func billingWindow() (time.Time, time.Time) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func closedLogs(start time.Time, hours float64) []entities.TimeLog {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return []entities.TimeLog{{StartedAt: start, EndedAt: &end}}
}

func TestInvoiceUseCase_Create(t *testing.T) {
	from, to := billingWindow()

	t.Run("invalid window", func(t *testing.T) {
		uc, _ := newInvoiceUseCase(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{ClientID: "client-1", From: to, To: from})
		if !errors.Is(err, ErrInvalidInvoiceInput) {
			t.Fatalf("expected ErrInvalidInvoiceInput, got %v", err)
		}
	})

	t.Run("no billable orders in the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f interfaces.OrderFilter) ([]entities.ServiceOrder, error) {
				if f.ClientID != "client-1" || f.Status != entities.OrderStatusToInvoice || !f.NotInvoiced {
					t.Fatalf("unexpected filter: %+v", f)
				}
				if f.ServiceStartFrom == nil || f.ServiceStartTo == nil {
					t.Fatalf("expected a bounded window")
				}
				return nil, nil
			},
		)

		_, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{ClientID: "client-1", From: from, To: to})
		if !errors.Is(err, ErrNoBillableOrders) {
			t.Fatalf("expected ErrNoBillableOrders, got %v", err)
		}
	})

	t.Run("freezes sale values, hours and extras", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		o1 := entities.ServiceOrder{ID: "o-1", Number: "OS-0007", SaleValue: 195, Status: entities.OrderStatusToInvoice}
		o2 := entities.ServiceOrder{ID: "o-2", Number: "OS-0008", SaleValue: 80, Status: entities.OrderStatusToInvoice}

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{o1, o2}, nil)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-1", gomock.Any()).Return(o1, nil)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-2", gomock.Any()).Return(o2, nil)
		m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(closedLogs(from, 4.5), nil)
		m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-2").Return(nil, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.TotalValue != 325 {
					t.Fatalf("expected total 325, got %v", inv.TotalValue)
				}
				if inv.TotalHours != 4.5 {
					t.Fatalf("expected 4.5 hours, got %v", inv.TotalHours)
				}
				if len(inv.Orders) != 2 || inv.Orders[0].OrderNumber != "OS-0007" {
					t.Fatalf("unexpected snapshot: %+v", inv.Orders)
				}
				if len(inv.Extras) != 1 || inv.Extras[0].Description != "Deslocamento" {
					t.Fatalf("unexpected extras: %+v", inv.Extras)
				}
				return inv, nil
			},
		)

		res, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{
			ClientID: "client-1",
			From:     from,
			To:       to,
			Extras:   []InvoiceExtraInput{{Description: "Deslocamento", Value: 50}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.DroppedOrders) != 0 {
			t.Fatalf("expected no drops, got %v", res.DroppedOrders)
		}
	})

	t.Run("invalidated order is dropped, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		o1 := entities.ServiceOrder{ID: "o-1", Number: "OS-0007", SaleValue: 195, Status: entities.OrderStatusToInvoice}
		o2 := entities.ServiceOrder{ID: "o-2", Number: "OS-0008", SaleValue: 80, Status: entities.OrderStatusToInvoice}

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{o1, o2}, nil)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-1", gomock.Any()).Return(entities.ServiceOrder{}, interfaces.ErrConditionFailed)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-2", gomock.Any()).Return(o2, nil)
		m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-2").Return(nil, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if len(inv.Orders) != 1 || inv.Orders[0].OrderID != "o-2" {
					t.Fatalf("expected only o-2, got %+v", inv.Orders)
				}
				return inv, nil
			},
		)

		res, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{ClientID: "client-1", From: from, To: to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.DroppedOrders) != 1 || res.DroppedOrders[0] != "OS-0007" {
			t.Fatalf("expected OS-0007 dropped, got %v", res.DroppedOrders)
		}
	})

	t.Run("everything invalidated means nothing to bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		o1 := entities.ServiceOrder{ID: "o-1", Number: "OS-0007", Status: entities.OrderStatusToInvoice}

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{o1}, nil)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-1", gomock.Any()).Return(entities.ServiceOrder{}, interfaces.ErrConditionFailed)

		res, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{ClientID: "client-1", From: from, To: to})
		if !errors.Is(err, ErrNoBillableOrders) {
			t.Fatalf("expected ErrNoBillableOrders, got %v", err)
		}
		if len(res.DroppedOrders) != 1 {
			t.Fatalf("expected the drop reported, got %v", res.DroppedOrders)
		}
	})

	t.Run("persist failure releases every claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		o1 := entities.ServiceOrder{ID: "o-1", Number: "OS-0007", SaleValue: 195, Status: entities.OrderStatusToInvoice}

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{o1}, nil)
		m.orders.EXPECT().ClaimForInvoice(gomock.Any(), "o-1", gomock.Any()).Return(o1, nil)
		m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("db"))
		m.orders.EXPECT().ReleaseFromInvoice(gomock.Any(), "o-1", gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), "user-1", CreateInvoiceInput{ClientID: "client-1", From: from, To: to})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Void(t *testing.T) {
	t.Run("releases the billed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		inv := entities.Invoice{
			ID:       "inv-1",
			ClientID: "client-1",
			Orders: []entities.InvoiceOrder{
				{OrderID: "o-1", OrderNumber: "OS-0007"},
				{OrderID: "o-2", OrderNumber: "OS-0008"},
			},
		}
		voided := inv
		voided.Void = true

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		m.invoices.EXPECT().MarkVoid(gomock.Any(), "inv-1").Return(voided, nil)
		m.orders.EXPECT().ReleaseFromInvoice(gomock.Any(), "o-1", "inv-1").Return(nil)
		m.orders.EXPECT().ReleaseFromInvoice(gomock.Any(), "o-2", "inv-1").Return(nil)

		got, err := uc.Void(context.Background(), "user-1", "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Invoice.Void {
			t.Fatalf("expected void invoice")
		}
		if len(got.RetainedOrders) != 0 {
			t.Fatalf("expected no retained orders, got %v", got.RetainedOrders)
		}
	})

	t.Run("order that moved past invoiced is retained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		inv := entities.Invoice{
			ID:       "inv-1",
			ClientID: "client-1",
			Orders: []entities.InvoiceOrder{
				{OrderID: "o-1", OrderNumber: "OS-0007"},
				{OrderID: "o-2", OrderNumber: "OS-0008"},
			},
		}
		voided := inv
		voided.Void = true

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		m.invoices.EXPECT().MarkVoid(gomock.Any(), "inv-1").Return(voided, nil)
		// o-1 was completed after invoicing; the conditional release refuses
		// to flip it back to to_invoice.
		m.orders.EXPECT().ReleaseFromInvoice(gomock.Any(), "o-1", "inv-1").Return(interfaces.ErrConditionFailed)
		m.orders.EXPECT().ReleaseFromInvoice(gomock.Any(), "o-2", "inv-1").Return(nil)

		got, err := uc.Void(context.Background(), "user-1", "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Invoice.Void {
			t.Fatalf("expected void invoice")
		}
		if len(got.RetainedOrders) != 1 || got.RetainedOrders[0] != "OS-0007" {
			t.Fatalf("expected OS-0007 retained, got %v", got.RetainedOrders)
		}
	})

	t.Run("already void", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Void: true}, nil)

		_, err := uc.Void(context.Background(), "user-1", "inv-1")
		if !errors.Is(err, ErrInvoiceAlreadyVoid) {
			t.Fatalf("expected ErrInvoiceAlreadyVoid, got %v", err)
		}
	})

	t.Run("concurrent void maps to already void", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		m.invoices.EXPECT().MarkVoid(gomock.Any(), "inv-1").Return(entities.Invoice{}, interfaces.ErrConditionFailed)

		_, err := uc.Void(context.Background(), "user-1", "inv-1")
		if !errors.Is(err, ErrInvoiceAlreadyVoid) {
			t.Fatalf("expected ErrInvoiceAlreadyVoid, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.invoices.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Invoice{}, nil)

		_, err := uc.Void(context.Background(), "user-1", "ghost")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
