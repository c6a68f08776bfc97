package usecase

import (
	"context"
	"testing"
	"time"

	"serralheria_os/internal/domain/entities"
	mock_interfaces "serralheria_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportUseCaseMocks struct {
	orders *mock_interfaces.MockIServiceOrderRepository
	tasks  *mock_interfaces.MockITaskRepository
	logs   *mock_interfaces.MockITimeLogRepository
}

func newReportUseCase(ctrl *gomock.Controller) (*ReportUseCase, reportUseCaseMocks) {
	m := reportUseCaseMocks{
		orders: mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		tasks:  mock_interfaces.NewMockITaskRepository(ctrl),
		logs:   mock_interfaces.NewMockITimeLogRepository(ctrl),
	}
	return NewReportUseCase(m.orders, m.tasks, m.logs), m
}

func TestReportUseCase_StatusHistogram(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC) }

	orders := []entities.ServiceOrder{
		{ID: "o-1", Status: entities.OrderStatusPending, CreatedAt: day(1)},
		{ID: "o-2", Status: entities.OrderStatusPending, CreatedAt: day(10)},
		{ID: "o-3", Status: entities.OrderStatusProduction, CreatedAt: day(20)},
		{ID: "o-4", Status: entities.OrderStatusCompleted, CreatedAt: day(25)},
	}

	t.Run("unbounded counts everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCase(ctrl)

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders, nil)

		hist, err := uc.StatusHistogram(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hist[entities.OrderStatusPending] != 2 || hist[entities.OrderStatusProduction] != 1 || hist[entities.OrderStatusCompleted] != 1 {
			t.Fatalf("unexpected histogram: %v", hist)
		}
	})

	t.Run("window bounds by creation date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReportUseCase(ctrl)

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders, nil)

		from, to := day(5), day(22)
		hist, err := uc.StatusHistogram(context.Background(), &from, &to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hist[entities.OrderStatusPending] != 1 || hist[entities.OrderStatusProduction] != 1 {
			t.Fatalf("unexpected histogram: %v", hist)
		}
		if _, ok := hist[entities.OrderStatusCompleted]; ok {
			t.Fatalf("expected completed outside the window: %v", hist)
		}
	})
}

func TestReportUseCase_OpenOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newReportUseCase(ctrl)

	m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{
		{ID: "o-1", Status: entities.OrderStatusProduction},
		{ID: "o-2", Status: entities.OrderStatusDelivered},
		{ID: "o-3", Status: entities.OrderStatusCancelled},
	}, nil)

	open, err := uc.OpenOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 1 || open[0].ID != "o-1" {
		t.Fatalf("expected only o-1 open, got %+v", open)
	}
}

func TestReportUseCase_OpenTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newReportUseCase(ctrl)

	m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Task{
		{ID: "t-1", Status: entities.TaskStatusPending},
		{ID: "t-2", Status: entities.TaskStatusInProgress},
		{ID: "t-3", Status: entities.TaskStatusCompleted},
	}, nil)

	open, err := uc.OpenTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("expected two open tasks, got %d", len(open))
	}
}

func TestReportUseCase_WorkerProductivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newReportUseCase(ctrl)

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	end2 := start.Add(2 * time.Hour)
	end4 := start.Add(4 * time.Hour)

	m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Task{
		{ID: "t-1", AssignedTo: "joao", Status: entities.TaskStatusCompleted},
		{ID: "t-2", AssignedTo: "joao", Status: entities.TaskStatusInProgress},
		{ID: "t-3", AssignedTo: "maria", Status: entities.TaskStatusPending},
		{ID: "t-4", AssignedTo: "", Status: entities.TaskStatusPending},
	}, nil)
	m.logs.EXPECT().List(gomock.Any()).Return([]entities.TimeLog{
		{Worker: "joao", StartedAt: start, EndedAt: &end2},
		{Worker: "joao", StartedAt: start, EndedAt: &end4},
		{Worker: "joao", StartedAt: start}, // open, ignored
		{Worker: "maria", StartedAt: start},
	}, nil)

	rows, err := uc.WorkerProductivity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two workers, got %d", len(rows))
	}

	joao := rows[0]
	if joao.Worker != "joao" {
		t.Fatalf("expected sorted output, got %+v", rows)
	}
	if joao.TaskCount != 2 || joao.CompletedTasks != 1 {
		t.Fatalf("unexpected task counts: %+v", joao)
	}
	if joao.TotalHours != 6 || joao.AverageHours != 3 {
		t.Fatalf("unexpected hours: %+v", joao)
	}

	maria := rows[1]
	if maria.TotalHours != 0 || maria.AverageHours != 0 {
		t.Fatalf("expected zero hours for open logs only: %+v", maria)
	}
}

func TestReportUseCase_OrderExportRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newReportUseCase(ctrl)

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{
		{
			ID:        "o-2",
			Number:    "OS-0002",
			Client:    entities.ClientSnapshot{Name: "Oficina Silva"},
			Status:    entities.OrderStatusProduction,
			Urgency:   entities.OrderUrgencyHigh,
			SaleValue: 300,
			Items:     []entities.ServiceOrderItem{{ID: "i-1"}, {ID: "i-2"}},
		},
		{ID: "o-1", Number: "OS-0001", Status: entities.OrderStatusPending},
	}, nil)
	m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-2").Return([]entities.TimeLog{
		{StartedAt: start, EndedAt: &end},
	}, nil)
	m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)

	rows, err := uc.OrderExportRows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}
	if rows[0].Number != "OS-0001" {
		t.Fatalf("expected number-sorted rows, got %+v", rows)
	}
	if rows[1].ItemCount != 2 || rows[1].WorkedHours != 1.5 || rows[1].ClientName != "Oficina Silva" {
		t.Fatalf("unexpected row: %+v", rows[1])
	}
}
