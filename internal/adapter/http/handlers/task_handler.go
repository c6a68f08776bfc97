package handlers

import (
	"errors"
	"net/http"

	request "serralheria_os/internal/adapter/http/dto/request"
	response "serralheria_os/internal/adapter/http/dto/response"
	"serralheria_os/internal/usecase"
	"serralheria_os/pkg"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks and their time logs.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid task payload"))
		return
	}

	t, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(t))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid task payload"))
		return
	}

	t, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(t))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(t))
}

func (h *TaskHandler) ListTasksByOrder(c *gin.Context) {
	tasks, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *TaskHandler) OpenTimeLog(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.OpenTimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid time log payload"))
		return
	}

	l, err := h.usecase.OpenTimeLog(c.Request.Context(), actor, c.Param("id"), payload.Worker, payload.StartedAt)
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTimeLog(l))
}

func (h *TaskHandler) CloseTimeLog(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.CloseTimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid time log payload"))
		return
	}

	l, err := h.usecase.CloseTimeLog(c.Request.Context(), actor, c.Param("log_id"), payload.EndedAt)
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimeLog(l))
}

func (h *TaskHandler) DeleteTimeLog(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	if err := h.usecase.DeleteTimeLog(c.Request.Context(), actor, c.Param("log_id")); err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListTimeLogs(c *gin.Context) {
	logs, err := h.usecase.ListTimeLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimeLogs(logs))
}

func (h *TaskHandler) GetWorkedHours(c *gin.Context) {
	orderID := c.Param("id")
	hours, err := h.usecase.WorkedHours(c.Request.Context(), orderID)
	if err != nil {
		abortWith(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.WorkedHoursResponse{OrderID: orderID, HoursWorked: hours})
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidTaskInput),
		errors.Is(err, usecase.ErrInvalidTimeLogID),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		return pkg.NewDomainErrorSimple("INVALID_TIME_RANGE", "Invalid time range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTimeLogNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Time log not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTimeLogAlreadyOpen),
		errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("CONFLICT", "Task cannot be changed in its current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
