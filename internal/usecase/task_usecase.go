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
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrInvalidTaskInput  = errors.New("invalid task payload")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTimeLogID  = errors.New("invalid time log id")
	ErrTimeLogNotFound   = errors.New("time log not found")
	ErrTimeLogAlreadyOpen = errors.New("worker already has an open time log on this task")

	// ErrInvalidTimeRange covers every time-log misuse: closing with
	// end < start, closing an already closed log, or deleting an open one.
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// ITaskUseCase exposes task CRUD and the time-log open/close protocol.
// Hours are derived from closed logs only; an open log contributes zero.
type ITaskUseCase interface {
	Create(ctx context.Context, actor string, in CreateTaskInput) (entities.Task, error)
	Update(ctx context.Context, actor, id string, in UpdateTaskInput) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Task, error)
	OpenTimeLog(ctx context.Context, actor, taskID, worker string, start *time.Time) (entities.TimeLog, error)
	CloseTimeLog(ctx context.Context, actor, logID string, end time.Time) (entities.TimeLog, error)
	DeleteTimeLog(ctx context.Context, actor, logID string) error
	ListTimeLogs(ctx context.Context, taskID string) ([]entities.TimeLog, error)
	WorkedHours(ctx context.Context, orderID string) (float64, error)
}

type CreateTaskInput struct {
	OrderID        string
	Title          string
	Description    string
	Priority       entities.TaskPriority
	EstimatedHours float64
	Deadline       *time.Time
	AssignedTo     string
}

// UpdateTaskInput carries partial edits; nil fields are left untouched.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	Priority       *entities.TaskPriority
	EstimatedHours *float64
	Deadline       *time.Time
	AssignedTo     *string
	Status         *entities.TaskStatus
}

type TaskUseCase struct {
	tasks    interfaces.ITaskRepository
	logs     interfaces.ITimeLogRepository
	orders   interfaces.IServiceOrderRepository
	notifier interfaces.INotifier
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(
	tasks interfaces.ITaskRepository,
	logs interfaces.ITimeLogRepository,
	orders interfaces.IServiceOrderRepository,
	notifier interfaces.INotifier,
) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, logs: logs, orders: orders, notifier: notifier}
}

func (u *TaskUseCase) Create(ctx context.Context, actor string, in CreateTaskInput) (entities.Task, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Task{}, fmt.Errorf("%w: missing actor", ErrInvalidTaskInput)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Task{}, fmt.Errorf("%w: title is required", ErrInvalidTaskInput)
	}
	if in.EstimatedHours < 0 {
		return entities.Task{}, fmt.Errorf("%w: estimated hours must be >= 0", ErrInvalidTaskInput)
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedium
	}
	if !priority.Valid() {
		return entities.Task{}, fmt.Errorf("%w: priority %q", ErrInvalidTaskInput, in.Priority)
	}

	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return entities.Task{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Task{}, err
	}
	if o.ID == "" {
		return entities.Task{}, ErrOrderNotFound
	}
	if o.Status.Terminal() {
		return entities.Task{}, fmt.Errorf("%w: %s", ErrOrderTerminal, o.Status)
	}

	now := time.Now().UTC()
	t := entities.Task{
		ID:             uuid.NewString(),
		OrderID:        orderID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Priority:       priority,
		EstimatedHours: in.EstimatedHours,
		Deadline:       in.Deadline,
		AssignedTo:     strings.TrimSpace(in.AssignedTo),
		Status:         entities.TaskStatusPending,
		CreatedBy:      actor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.tasks.Create(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	notify(ctx, u.notifier, entityTask, created.ID, "created")
	return created, nil
}

func (u *TaskUseCase) Update(ctx context.Context, actor, id string, in UpdateTaskInput) (entities.Task, error) {
	if strings.TrimSpace(actor) == "" {
		return entities.Task{}, fmt.Errorf("%w: missing actor", ErrInvalidTaskInput)
	}
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.Task{}, fmt.Errorf("%w: title is required", ErrInvalidTaskInput)
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return entities.Task{}, fmt.Errorf("%w: priority %q", ErrInvalidTaskInput, *in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.EstimatedHours != nil {
		if *in.EstimatedHours < 0 {
			return entities.Task{}, fmt.Errorf("%w: estimated hours must be >= 0", ErrInvalidTaskInput)
		}
		t.EstimatedHours = *in.EstimatedHours
	}
	if in.Deadline != nil {
		t.Deadline = in.Deadline
	}
	if in.AssignedTo != nil {
		t.AssignedTo = strings.TrimSpace(*in.AssignedTo)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.Task{}, fmt.Errorf("%w: status %q", ErrInvalidTaskInput, *in.Status)
		}
		t.Status = *in.Status
	}
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.tasks.Put(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	notify(ctx, u.notifier, entityTask, updated.ID, "updated")
	return updated, nil
}

func (u *TaskUseCase) GetByID(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	t, err := u.tasks.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Task, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.tasks.ListByOrderID(ctx, orderID)
}

func (u *TaskUseCase) OpenTimeLog(ctx context.Context, actor, taskID, worker string, start *time.Time) (entities.TimeLog, error) {
	if strings.TrimSpace(actor) == "" {
		return entities.TimeLog{}, fmt.Errorf("%w: missing actor", ErrInvalidTaskInput)
	}
	worker = strings.TrimSpace(worker)
	if worker == "" {
		return entities.TimeLog{}, fmt.Errorf("%w: worker is required", ErrInvalidTaskInput)
	}
	t, err := u.GetByID(ctx, taskID)
	if err != nil {
		return entities.TimeLog{}, err
	}

	existing, err := u.logs.ListByTaskID(ctx, t.ID)
	if err != nil {
		return entities.TimeLog{}, err
	}
	for _, l := range existing {
		if !l.Closed() && l.Worker == worker {
			return entities.TimeLog{}, ErrTimeLogAlreadyOpen
		}
	}

	startedAt := time.Now().UTC()
	if start != nil {
		startedAt = start.UTC()
	}
	l := entities.TimeLog{
		ID:        uuid.NewString(),
		TaskID:    t.ID,
		OrderID:   t.OrderID,
		Worker:    worker,
		StartedAt: startedAt,
	}

	created, err := u.logs.Create(ctx, l)
	if err != nil {
		return entities.TimeLog{}, err
	}
	notify(ctx, u.notifier, entityTimeLog, created.ID, "opened")
	return created, nil
}

// CloseTimeLog records the end of a worked interval. Validation happens
// before any write: a closed log cannot be re-closed and end must not
// precede start.
func (u *TaskUseCase) CloseTimeLog(ctx context.Context, actor, logID string, end time.Time) (entities.TimeLog, error) {
	if strings.TrimSpace(actor) == "" {
		return entities.TimeLog{}, fmt.Errorf("%w: missing actor", ErrInvalidTaskInput)
	}
	l, err := u.getTimeLog(ctx, logID)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if l.Closed() {
		return entities.TimeLog{}, fmt.Errorf("%w: log already closed", ErrInvalidTimeRange)
	}
	end = end.UTC()
	if end.Before(l.StartedAt) {
		return entities.TimeLog{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidTimeRange,
			end.Format(time.RFC3339), l.StartedAt.Format(time.RFC3339))
	}
	l.EndedAt = &end

	updated, err := u.logs.Put(ctx, l)
	if err != nil {
		return entities.TimeLog{}, err
	}
	notify(ctx, u.notifier, entityTimeLog, updated.ID, "closed")
	return updated, nil
}

func (u *TaskUseCase) DeleteTimeLog(ctx context.Context, actor, logID string) error {
	if strings.TrimSpace(actor) == "" {
		return fmt.Errorf("%w: missing actor", ErrInvalidTaskInput)
	}
	l, err := u.getTimeLog(ctx, logID)
	if err != nil {
		return err
	}
	if !l.Closed() {
		return fmt.Errorf("%w: close the log before removing it", ErrInvalidTimeRange)
	}
	if err := u.logs.Delete(ctx, l.ID); err != nil {
		return err
	}
	notify(ctx, u.notifier, entityTimeLog, l.ID, "deleted")
	return nil
}

func (u *TaskUseCase) ListTimeLogs(ctx context.Context, taskID string) ([]entities.TimeLog, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, ErrInvalidTaskID
	}
	return u.logs.ListByTaskID(ctx, taskID)
}

// WorkedHours sums every closed log of the order's tasks. Always recomputed
// from the logs, never read from a counter.
func (u *TaskUseCase) WorkedHours(ctx context.Context, orderID string) (float64, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return 0, ErrInvalidOrderID
	}
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

func (u *TaskUseCase) getTimeLog(ctx context.Context, logID string) (entities.TimeLog, error) {
	logID = strings.TrimSpace(logID)
	if logID == "" {
		return entities.TimeLog{}, ErrInvalidTimeLogID
	}
	l, err := u.logs.GetByID(ctx, logID)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if l.ID == "" {
		return entities.TimeLog{}, ErrTimeLogNotFound
	}
	return l, nil
}
