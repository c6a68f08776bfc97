package usecase

import (
	"context"
	"sort"
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase/interfaces"
)

// IReportUseCase is the pure read side: every figure is recomputed from the
// current order/task/log state per call. No cached counter is authoritative.
type IReportUseCase interface {
	StatusHistogram(ctx context.Context, from, to *time.Time) (map[entities.OrderStatus]int, error)
	OpenOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	OpenTasks(ctx context.Context) ([]entities.Task, error)
	WorkerProductivity(ctx context.Context) ([]WorkerProductivity, error)
	OrderExportRows(ctx context.Context) ([]OrderExportRow, error)
}

type WorkerProductivity struct {
	Worker         string
	TaskCount      int
	CompletedTasks int
	TotalHours     float64
	AverageHours   float64
}

// OrderExportRow is the fully resolved view handed to export collaborators
// (CSV and friends). The engine supplies data, never formatting.
type OrderExportRow struct {
	Number      string
	ClientName  string
	Status      string
	Urgency     string
	AssignedTo  string
	ItemCount   int
	SaleValue   float64
	WorkedHours float64
	CreatedAt   time.Time
}

type ReportUseCase struct {
	orders interfaces.IServiceOrderRepository
	tasks  interfaces.ITaskRepository
	logs   interfaces.ITimeLogRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IServiceOrderRepository,
	tasks interfaces.ITaskRepository,
	logs interfaces.ITimeLogRepository,
) *ReportUseCase {
	return &ReportUseCase{orders: orders, tasks: tasks, logs: logs}
}

// StatusHistogram counts orders per status, optionally bounded by creation
// date.
func (u *ReportUseCase) StatusHistogram(ctx context.Context, from, to *time.Time) (map[entities.OrderStatus]int, error) {
	orders, err := u.orders.List(ctx, interfaces.OrderFilter{})
	if err != nil {
		return nil, err
	}
	hist := make(map[entities.OrderStatus]int)
	for _, o := range orders {
		if from != nil && o.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && o.CreatedAt.After(*to) {
			continue
		}
		hist[o.Status]++
	}
	return hist, nil
}

func (u *ReportUseCase) OpenOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, err := u.orders.List(ctx, interfaces.OrderFilter{})
	if err != nil {
		return nil, err
	}
	open := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status.Open() {
			open = append(open, o)
		}
	}
	return open, nil
}

func (u *ReportUseCase) OpenTasks(ctx context.Context) ([]entities.Task, error) {
	tasks, err := u.tasks.List(ctx, interfaces.TaskFilter{})
	if err != nil {
		return nil, err
	}
	open := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status.Open() {
			open = append(open, t)
		}
	}
	return open, nil
}

// WorkerProductivity aggregates per assigned worker: task counts, completed
// counts and hours from closed logs. AverageHours is per closed log.
func (u *ReportUseCase) WorkerProductivity(ctx context.Context) ([]WorkerProductivity, error) {
	tasks, err := u.tasks.List(ctx, interfaces.TaskFilter{})
	if err != nil {
		return nil, err
	}
	logs, err := u.logs.List(ctx)
	if err != nil {
		return nil, err
	}

	byWorker := make(map[string]*WorkerProductivity)
	get := func(worker string) *WorkerProductivity {
		if worker == "" {
			return nil
		}
		p, ok := byWorker[worker]
		if !ok {
			p = &WorkerProductivity{Worker: worker}
			byWorker[worker] = p
		}
		return p
	}

	for _, t := range tasks {
		if p := get(t.AssignedTo); p != nil {
			p.TaskCount++
			if t.Status == entities.TaskStatusCompleted {
				p.CompletedTasks++
			}
		}
	}

	closedLogs := make(map[string]int)
	for _, l := range logs {
		if !l.Closed() {
			continue
		}
		if p := get(l.Worker); p != nil {
			p.TotalHours += l.HoursWorked()
			closedLogs[l.Worker]++
		}
	}
	for worker, p := range byWorker {
		if n := closedLogs[worker]; n > 0 {
			p.AverageHours = p.TotalHours / float64(n)
		}
	}

	out := make([]WorkerProductivity, 0, len(byWorker))
	for _, p := range byWorker {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Worker < out[j].Worker })
	return out, nil
}

func (u *ReportUseCase) OrderExportRows(ctx context.Context) ([]OrderExportRow, error) {
	orders, err := u.orders.List(ctx, interfaces.OrderFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([]OrderExportRow, 0, len(orders))
	for _, o := range orders {
		logs, err := u.logs.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		hours := 0.0
		for _, l := range logs {
			hours += l.HoursWorked()
		}
		rows = append(rows, OrderExportRow{
			Number:      o.Number,
			ClientName:  o.Client.Name,
			Status:      string(o.Status),
			Urgency:     string(o.Urgency),
			AssignedTo:  o.AssignedTo,
			ItemCount:   len(o.Items),
			SaleValue:   o.SaleValue,
			WorkedHours: hours,
			CreatedAt:   o.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })
	return rows, nil
}
