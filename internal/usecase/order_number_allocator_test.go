package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "serralheria_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderNumberAllocator_DeriveBase(t *testing.T) {
	a := NewOrderNumberAllocator(nil, "ORC", "OS", 0)

	t.Run("swaps the quote prefix", func(t *testing.T) {
		base, err := a.DeriveBase("ORC-0007")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base != "OS-0007" {
			t.Fatalf("expected OS-0007, got %s", base)
		}
	})

	t.Run("prefixes manual numbers", func(t *testing.T) {
		base, err := a.DeriveBase("AVULSO-12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base != "OS-AVULSO-12" {
			t.Fatalf("expected OS-AVULSO-12, got %s", base)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		if _, err := a.DeriveBase("   "); !errors.Is(err, ErrInvalidBudgetNumber) {
			t.Fatalf("expected ErrInvalidBudgetNumber, got %v", err)
		}
	})
}

func TestOrderNumberAllocator_Allocate(t *testing.T) {
	t.Run("bare base when free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		a := NewOrderNumberAllocator(orders, "ORC", "OS", 10)

		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007").Return(false, nil)

		number, suffix, err := a.Allocate(context.Background(), "OS-0007", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "OS-0007" || suffix != 0 {
			t.Fatalf("expected OS-0007/0, got %s/%d", number, suffix)
		}
	})

	t.Run("probes suffixes until free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		a := NewOrderNumberAllocator(orders, "ORC", "OS", 10)

		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007").Return(true, nil)
		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007-1").Return(true, nil)
		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007-2").Return(false, nil)

		number, suffix, err := a.Allocate(context.Background(), "OS-0007", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "OS-0007-2" || suffix != 2 {
			t.Fatalf("expected OS-0007-2/2, got %s/%d", number, suffix)
		}
	})

	t.Run("resumes from a losing suffix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		a := NewOrderNumberAllocator(orders, "ORC", "OS", 10)

		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007-3").Return(false, nil)

		number, suffix, err := a.Allocate(context.Background(), "OS-0007", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "OS-0007-3" || suffix != 3 {
			t.Fatalf("expected OS-0007-3/3, got %s/%d", number, suffix)
		}
	})

	t.Run("exhausts at the probe cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		a := NewOrderNumberAllocator(orders, "ORC", "OS", 2)

		orders.EXPECT().ExistsNumber(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

		_, _, err := a.Allocate(context.Background(), "OS-0007", 0)
		if !errors.Is(err, ErrAllocationExhausted) {
			t.Fatalf("expected ErrAllocationExhausted, got %v", err)
		}
	})

	t.Run("repository error stops probing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		a := NewOrderNumberAllocator(orders, "ORC", "OS", 10)

		orders.EXPECT().ExistsNumber(gomock.Any(), "OS-0007").Return(false, errors.New("db"))

		_, _, err := a.Allocate(context.Background(), "OS-0007", 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
