package response

import (
	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
)

type StatusHistogramResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func FromStatusHistogram(counts map[entities.OrderStatus]int) StatusHistogramResponse {
	out := StatusHistogramResponse{Counts: make(map[string]int, len(counts))}
	for status, n := range counts {
		out.Counts[string(status)] = n
		out.Total += n
	}
	return out
}

type WorkerProductivityResponse struct {
	Worker         string  `json:"worker"`
	TaskCount      int     `json:"task_count"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalHours     float64 `json:"total_hours"`
	AverageHours   float64 `json:"average_hours"`
}

func FromWorkerProductivity(rows []usecase.WorkerProductivity) []WorkerProductivityResponse {
	out := make([]WorkerProductivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, WorkerProductivityResponse{
			Worker:         r.Worker,
			TaskCount:      r.TaskCount,
			CompletedTasks: r.CompletedTasks,
			TotalHours:     r.TotalHours,
			AverageHours:   r.AverageHours,
		})
	}
	return out
}
