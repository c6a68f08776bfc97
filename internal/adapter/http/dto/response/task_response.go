package response

import (
	"time"

	"serralheria_os/internal/domain/entities"
)

type TaskResponse struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	AssignedTo     string     `json:"assigned_to,omitempty"`
	Status         string     `json:"status"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		OrderID:        t.OrderID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		Deadline:       t.Deadline,
		AssignedTo:     t.AssignedTo,
		Status:         string(t.Status),
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

type TimeLogResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	OrderID     string     `json:"order_id"`
	Worker      string     `json:"worker"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	HoursWorked float64    `json:"hours_worked"`
}

func FromTimeLog(l entities.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:          l.ID,
		TaskID:      l.TaskID,
		OrderID:     l.OrderID,
		Worker:      l.Worker,
		StartedAt:   l.StartedAt,
		EndedAt:     l.EndedAt,
		HoursWorked: l.HoursWorked(),
	}
}

func FromTimeLogs(logs []entities.TimeLog) []TimeLogResponse {
	out := make([]TimeLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromTimeLog(l))
	}
	return out
}

type WorkedHoursResponse struct {
	OrderID     string  `json:"order_id"`
	HoursWorked float64 `json:"hours_worked"`
}
