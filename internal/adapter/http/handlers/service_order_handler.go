package handlers

import (
	"errors"
	"net/http"
	"time"

	request "serralheria_os/internal/adapter/http/dto/request"
	response "serralheria_os/internal/adapter/http/dto/response"
	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
	"serralheria_os/internal/usecase/interfaces"
	"serralheria_os/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for service orders, their items,
// the status machine and hold calls.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) ConvertBudget(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.ConvertBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid conversion payload"))
		return
	}

	o, err := h.usecase.ConvertBudget(c.Request.Context(), actor, payload.BudgetID)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid order payload"))
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	f := interfaces.OrderFilter{
		ClientID:    c.Query("client_id"),
		Status:      entities.OrderStatus(c.Query("status")),
		NotInvoiced: c.Query("not_invoiced") == "true",
	}
	if from, ok := parseQueryTime(c.Query("service_start_from")); ok {
		f.ServiceStartFrom = from
	}
	if to, ok := parseQueryTime(c.Query("service_start_to")); ok {
		f.ServiceStartTo = to
	}

	orders, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid order payload"))
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) AddOrderItem(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.OrderItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid item payload"))
		return
	}

	o, err := h.usecase.AddItem(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) UpdateOrderItem(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.OrderItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid item payload"))
		return
	}

	o, err := h.usecase.UpdateItem(c.Request.Context(), actor, c.Param("id"), c.Param("item_id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) RemoveOrderItem(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	o, err := h.usecase.RemoveItem(c.Request.Context(), actor, c.Param("id"), c.Param("item_id"))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) ChangeOrderStatus(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid status payload"))
		return
	}

	o, err := h.usecase.ChangeStatus(c.Request.Context(), actor, c.Param("id"), entities.OrderStatus(payload.Status), payload.Reason)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) ListCalls(c *gin.Context) {
	calls, err := h.usecase.ListCalls(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalls(calls))
}

func (h *ServiceOrderHandler) ResolveCall(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	call, err := h.usecase.ResolveCall(c.Request.Context(), actor, c.Param("call_id"))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCall(call))
}

func parseQueryTime(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderInput),
		errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidCallID),
		errors.Is(err, usecase.ErrUnknownOrderStatus),
		errors.Is(err, usecase.ErrHoldReasonRequired):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderItemNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Order item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCallNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotConvertible),
		errors.Is(err, usecase.ErrBudgetStale),
		errors.Is(err, usecase.ErrOrderStale),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrOrderTerminal),
		errors.Is(err, usecase.ErrStatusSetByInvoicing),
		errors.Is(err, usecase.ErrSaleValueFromItems),
		errors.Is(err, usecase.ErrCallAlreadyResolved):
		return pkg.NewDomainErrorSimple("CONFLICT", "Order cannot be changed in its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrAllocationExhausted):
		return pkg.NewDomainErrorSimple("ALLOCATION_EXHAUSTED", "No free order number near the requested base", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
