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

// InvoiceHandler handles HTTP requests for invoice aggregation.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, invalidPayload("Invalid invoice payload"))
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	resp := response.FromInvoice(result.Invoice)
	resp.DroppedOrders = result.DroppedOrders
	c.JSON(http.StatusCreated, resp)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) ListInvoicesByClient(c *gin.Context) {
	invoices, err := h.usecase.ListByClientID(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	actor := actorFrom(c)
	if actor == "" {
		abortWith(c, errMissingActor)
		return
	}

	result, err := h.usecase.Void(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	resp := response.FromInvoice(result.Invoice)
	resp.RetainedOrders = result.RetainedOrders
	c.JSON(http.StatusOK, resp)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceInput):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoBillableOrders):
		return pkg.NewDomainErrorSimple("NO_BILLABLE_ORDERS", "No billable orders in the requested window", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceAlreadyVoid):
		return pkg.NewDomainErrorSimple("CONFLICT", "Invoice is already void", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
