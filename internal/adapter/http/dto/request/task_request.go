package request

import (
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
)

type CreateTaskRequest struct {
	OrderID        string     `json:"order_id" binding:"required"`
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	Deadline       *time.Time `json:"deadline"`
	AssignedTo     string     `json:"assigned_to"`
}

func (r CreateTaskRequest) ToInput() usecase.CreateTaskInput {
	return usecase.CreateTaskInput{
		OrderID:        r.OrderID,
		Title:          r.Title,
		Description:    r.Description,
		Priority:       entities.TaskPriority(r.Priority),
		EstimatedHours: r.EstimatedHours,
		Deadline:       r.Deadline,
		AssignedTo:     r.AssignedTo,
	}
}

type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Priority       *string    `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
	Deadline       *time.Time `json:"deadline"`
	AssignedTo     *string    `json:"assigned_to"`
	Status         *string    `json:"status"`
}

func (r UpdateTaskRequest) ToInput() usecase.UpdateTaskInput {
	in := usecase.UpdateTaskInput{
		Title:          r.Title,
		Description:    r.Description,
		EstimatedHours: r.EstimatedHours,
		Deadline:       r.Deadline,
		AssignedTo:     r.AssignedTo,
	}
	if r.Priority != nil {
		p := entities.TaskPriority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := entities.TaskStatus(*r.Status)
		in.Status = &s
	}
	return in
}

type OpenTimeLogRequest struct {
	Worker    string     `json:"worker" binding:"required"`
	StartedAt *time.Time `json:"started_at"`
}

type CloseTimeLogRequest struct {
	EndedAt time.Time `json:"ended_at" binding:"required"`
}
