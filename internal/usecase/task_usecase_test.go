package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"serralheria_os/internal/domain/entities"
	mock_interfaces "serralheria_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type taskUseCaseMocks struct {
	tasks  *mock_interfaces.MockITaskRepository
	logs   *mock_interfaces.MockITimeLogRepository
	orders *mock_interfaces.MockIServiceOrderRepository
}

func newTaskUseCase(ctrl *gomock.Controller) (*TaskUseCase, taskUseCaseMocks) {
	m := taskUseCaseMocks{
		tasks:  mock_interfaces.NewMockITaskRepository(ctrl),
		logs:   mock_interfaces.NewMockITimeLogRepository(ctrl),
		orders: mock_interfaces.NewMockIServiceOrderRepository(ctrl),
	}
	return NewTaskUseCase(m.tasks, m.logs, m.orders, nil), m
}

func TestTaskUseCase_Create(t *testing.T) {
	t.Run("order must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateTaskInput{OrderID: "o-1", Title: "Cortar"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("terminal order refuses new tasks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusCancelled}, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateTaskInput{OrderID: "o-1", Title: "Cortar"})
		if !errors.Is(err, ErrOrderTerminal) {
			t.Fatalf("expected ErrOrderTerminal, got %v", err)
		}
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusProduction}, nil)
		m.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task entities.Task) (entities.Task, error) {
				if task.Priority != entities.TaskPriorityMedium {
					t.Fatalf("expected medium priority, got %s", task.Priority)
				}
				if task.Status != entities.TaskStatusPending {
					t.Fatalf("expected pending status, got %s", task.Status)
				}
				return task, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", CreateTaskInput{OrderID: "o-1", Title: "Cortar"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTaskUseCase_OpenTimeLog(t *testing.T) {
	task := entities.Task{ID: "t-1", OrderID: "o-1", Title: "Cortar", Status: entities.TaskStatusInProgress}

	t.Run("one open log per worker per task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.tasks.EXPECT().GetByID(gomock.Any(), "t-1").Return(task, nil)
		m.logs.EXPECT().ListByTaskID(gomock.Any(), "t-1").Return([]entities.TimeLog{
			{ID: "l-1", TaskID: "t-1", Worker: "joao"},
		}, nil)

		_, err := uc.OpenTimeLog(context.Background(), "user-1", "t-1", "joao", nil)
		if !errors.Is(err, ErrTimeLogAlreadyOpen) {
			t.Fatalf("expected ErrTimeLogAlreadyOpen, got %v", err)
		}
	})

	t.Run("another worker may open in parallel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.tasks.EXPECT().GetByID(gomock.Any(), "t-1").Return(task, nil)
		m.logs.EXPECT().ListByTaskID(gomock.Any(), "t-1").Return([]entities.TimeLog{
			{ID: "l-1", TaskID: "t-1", Worker: "joao"},
		}, nil)
		m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.TimeLog) (entities.TimeLog, error) {
				if l.Worker != "maria" || l.OrderID != "o-1" || l.TaskID != "t-1" {
					t.Fatalf("unexpected log: %+v", l)
				}
				if l.EndedAt != nil {
					t.Fatalf("expected open log")
				}
				return l, nil
			},
		)

		l, err := uc.OpenTimeLog(context.Background(), "user-1", "t-1", "maria", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.StartedAt.IsZero() {
			t.Fatalf("expected start stamped")
		}
	})

	t.Run("closed logs do not block reopening", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		end := time.Now().UTC()
		m.tasks.EXPECT().GetByID(gomock.Any(), "t-1").Return(task, nil)
		m.logs.EXPECT().ListByTaskID(gomock.Any(), "t-1").Return([]entities.TimeLog{
			{ID: "l-1", TaskID: "t-1", Worker: "joao", EndedAt: &end},
		}, nil)
		m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.TimeLog) (entities.TimeLog, error) { return l, nil },
		)

		if _, err := uc.OpenTimeLog(context.Background(), "user-1", "t-1", "joao", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit start is honored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		m.tasks.EXPECT().GetByID(gomock.Any(), "t-1").Return(task, nil)
		m.logs.EXPECT().ListByTaskID(gomock.Any(), "t-1").Return(nil, nil)
		m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.TimeLog) (entities.TimeLog, error) {
				if !l.StartedAt.Equal(start) {
					t.Fatalf("expected start %v, got %v", start, l.StartedAt)
				}
				return l, nil
			},
		)

		if _, err := uc.OpenTimeLog(context.Background(), "user-1", "t-1", "joao", &start); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTaskUseCase_CloseTimeLog(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	open := entities.TimeLog{ID: "l-1", TaskID: "t-1", OrderID: "o-1", Worker: "joao", StartedAt: start}

	t.Run("closes with a valid end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.logs.EXPECT().GetByID(gomock.Any(), "l-1").Return(open, nil)
		m.logs.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.TimeLog) (entities.TimeLog, error) {
				if l.EndedAt == nil {
					t.Fatalf("expected end set")
				}
				return l, nil
			},
		)

		l, err := uc.CloseTimeLog(context.Background(), "user-1", "l-1", start.Add(4*time.Hour+30*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.HoursWorked() != 4.5 {
			t.Fatalf("expected 4.5 hours, got %v", l.HoursWorked())
		}
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.logs.EXPECT().GetByID(gomock.Any(), "l-1").Return(open, nil)

		_, err := uc.CloseTimeLog(context.Background(), "user-1", "l-1", start.Add(-time.Minute))
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("re-close is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		end := start.Add(2 * time.Hour)
		closed := open
		closed.EndedAt = &end
		m.logs.EXPECT().GetByID(gomock.Any(), "l-1").Return(closed, nil)

		_, err := uc.CloseTimeLog(context.Background(), "user-1", "l-1", start.Add(3*time.Hour))
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("missing log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.logs.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.TimeLog{}, nil)

		_, err := uc.CloseTimeLog(context.Background(), "user-1", "ghost", start)
		if !errors.Is(err, ErrTimeLogNotFound) {
			t.Fatalf("expected ErrTimeLogNotFound, got %v", err)
		}
	})
}

func TestTaskUseCase_DeleteTimeLog(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("open logs cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		m.logs.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.TimeLog{ID: "l-1", StartedAt: start}, nil)

		err := uc.DeleteTimeLog(context.Background(), "user-1", "l-1")
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("closed logs are deletable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		end := start.Add(time.Hour)
		m.logs.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.TimeLog{ID: "l-1", StartedAt: start, EndedAt: &end}, nil)
		m.logs.EXPECT().Delete(gomock.Any(), "l-1").Return(nil)

		if err := uc.DeleteTimeLog(context.Background(), "user-1", "l-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTaskUseCase_WorkedHours(t *testing.T) {
	t.Run("sums closed logs only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTaskUseCase(ctrl)

		start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		end1 := start.Add(2 * time.Hour)
		end2 := start.Add(90 * time.Minute)
		m.logs.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.TimeLog{
			{StartedAt: start, EndedAt: &end1},
			{StartedAt: start, EndedAt: &end2},
			{StartedAt: start}, // still open
		}, nil)

		hours, err := uc.WorkedHours(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hours != 3.5 {
			t.Fatalf("expected 3.5 hours, got %v", hours)
		}
	})

	t.Run("empty order id", func(t *testing.T) {
		uc, _ := newTaskUseCase(gomock.NewController(t))
		if _, err := uc.WorkedHours(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}
