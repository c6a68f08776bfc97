package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"serralheria_os/internal/adapter/http/handlers/mocks"
	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
	"serralheria_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.ClientID != "client-1" || in.Client.Name != "Oficina Silva" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Budget{ID: "b-1", Number: "ORC-0007", Status: entities.BudgetStatusDraft}, nil
			},
		)

		body := `{"client":{"id":"client-1","name":"Oficina Silva"},"items":[{"service_name":"Portão","quantity":2,"unit_price":150}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["number"] != "ORC-0007" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrInvalidBudgetInput)

		body := `{"client":{"id":"client-1","name":"Oficina Silva"},"items":[{"service_name":"Portão","quantity":2,"unit_price":150}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("other user's budget maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PUT("/v1/budgets/:id", h.UpdateBudget)

		uc.EXPECT().Update(gomock.Any(), "user-2", "b-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrNotBudgetOwner)

		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1", bytes.NewBufferString(`{"description":"novo"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("stale write maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PUT("/v1/budgets/:id", h.UpdateBudget)

		uc.EXPECT().Update(gomock.Any(), "user-1", "b-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetStale)

		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1", bytes.NewBufferString(`{"description":"novo"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudgetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved is reserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/status", h.UpdateBudgetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "b-1", entities.BudgetStatusApproved).
			Return(entities.Budget{}, usecase.ErrBudgetStatusReserved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:id", h.GetBudget)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query filters are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets", h.ListBudgets)

		expected := interfaces.BudgetFilter{Status: entities.BudgetStatusPending, CreatedBy: "user-1"}
		uc.EXPECT().List(gomock.Any(), expected).Return([]entities.Budget{{ID: "b-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets?status=pending&created_by=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets", h.ListBudgets)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
