package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serralheria_os/internal/adapter/http/handlers/mocks"
	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{"client_id":"client-1","from":"2025-03-01T00:00:00Z","to":"2025-04-01T00:00:00Z","extras":[{"description":"Deslocamento","value":50}]}`

	t.Run("missing actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success reports dropped orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.CreateInvoiceInput) (usecase.InvoiceResult, error) {
				if in.ClientID != "client-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected window: %+v", in)
				}
				return usecase.InvoiceResult{
					Invoice: entities.Invoice{
						ID:         "inv-1",
						ClientID:   "client-1",
						Orders:     []entities.InvoiceOrder{{OrderID: "o-2", OrderNumber: "OS-0008", SaleValue: 80}},
						Extras:     []entities.InvoiceExtra{{Description: "Deslocamento", Value: 50}},
						TotalValue: 130,
					},
					DroppedOrders: []string{"OS-0007"},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		dropped, ok := resp["dropped_orders"].([]any)
		if !ok || len(dropped) != 1 || dropped[0] != "OS-0007" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty window maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).
			Return(usecase.InvoiceResult{}, usecase.ErrNoBillableOrders)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "NO_BILLABLE_ORDERS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_VoidInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:id/void", h.VoidInvoice)

		uc.EXPECT().Void(gomock.Any(), "user-1", "inv-1").
			Return(usecase.InvoiceVoidResult{Invoice: entities.Invoice{ID: "inv-1", Void: true}}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/void", nil)
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reports retained orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:id/void", h.VoidInvoice)

		uc.EXPECT().Void(gomock.Any(), "user-1", "inv-1").
			Return(usecase.InvoiceVoidResult{
				Invoice:        entities.Invoice{ID: "inv-1", Void: true},
				RetainedOrders: []string{"OS-0007"},
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/void", nil)
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		retained, ok := resp["retained_orders"].([]any)
		if !ok || len(retained) != 1 || retained[0] != "OS-0007" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already void maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:id/void", h.VoidInvoice)

		uc.EXPECT().Void(gomock.Any(), "user-1", "inv-1").
			Return(usecase.InvoiceVoidResult{}, usecase.ErrInvoiceAlreadyVoid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/void", nil)
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
