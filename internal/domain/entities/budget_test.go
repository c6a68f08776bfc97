package entities

import "testing"

func TestBudgetStatus_Editable(t *testing.T) {
	editable := []BudgetStatus{BudgetStatusDraft, BudgetStatusPending, BudgetStatusSent}
	for _, s := range editable {
		if !s.Editable() {
			t.Fatalf("expected %s to be editable", s)
		}
	}
	frozen := []BudgetStatus{BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired}
	for _, s := range frozen {
		if s.Editable() {
			t.Fatalf("expected %s to not be editable", s)
		}
	}
}

func TestBudgetStatus_Convertible(t *testing.T) {
	if !BudgetStatusPending.Convertible() || !BudgetStatusSent.Convertible() {
		t.Fatalf("expected pending and sent to be convertible")
	}
	for _, s := range []BudgetStatus{BudgetStatusDraft, BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired} {
		if s.Convertible() {
			t.Fatalf("expected %s to not be convertible", s)
		}
	}
}

func TestBudgetStatus_Valid(t *testing.T) {
	if BudgetStatus("banana").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if !BudgetStatusDraft.Valid() {
		t.Fatalf("expected draft to be valid")
	}
}

func TestBudget_RecomputeTotals(t *testing.T) {
	b := Budget{
		Items: []BudgetItem{
			{ServiceName: "Portão", Quantity: 2, UnitPrice: 150, TotalPrice: 999},
			{ServiceName: "Grade", Quantity: 1, UnitPrice: 80.5},
		},
	}
	b.RecomputeTotals()

	if b.Items[0].TotalPrice != 300 {
		t.Fatalf("expected first line total 300, got %v", b.Items[0].TotalPrice)
	}
	if b.Items[1].TotalPrice != 80.5 {
		t.Fatalf("expected second line total 80.5, got %v", b.Items[1].TotalPrice)
	}
	if b.TotalValue != 380.5 {
		t.Fatalf("expected budget total 380.5, got %v", b.TotalValue)
	}
}

func TestBudget_RecomputeTotalsEmpty(t *testing.T) {
	b := Budget{TotalValue: 42}
	b.RecomputeTotals()
	if b.TotalValue != 0 {
		t.Fatalf("expected zero total for itemless budget, got %v", b.TotalValue)
	}
}
