package handlers

import (
	"errors"
	"net/http"

	request "serralheria_os/internal/adapter/http/dto/request"
	response "serralheria_os/internal/adapter/http/dto/response"
	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
	"serralheria_os/internal/usecase/interfaces"
	"serralheria_os/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for budgets (quotes).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid budget payload"))
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid budget payload"))
		return
	}

	b, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.UpdateBudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid status payload"))
		return
	}

	b, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("id"), entities.BudgetStatus(payload.Status))
	if err != nil {
		abortWith(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	f := interfaces.BudgetFilter{
		Status:    entities.BudgetStatus(c.Query("status")),
		CreatedBy: c.Query("created_by"),
	}
	budgets, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		abortWith(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetInput),
		errors.Is(err, usecase.ErrInvalidBudgetStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotBudgetOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Budget belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBudgetNotEditable),
		errors.Is(err, usecase.ErrBudgetStale),
		errors.Is(err, usecase.ErrBudgetStatusReserved):
		return pkg.NewDomainErrorSimple("CONFLICT", "Budget cannot be changed in its current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
