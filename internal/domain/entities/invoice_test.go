package entities

import "testing"

func TestInvoice_ComputeTotals(t *testing.T) {
	inv := Invoice{
		Orders: []InvoiceOrder{
			{OrderNumber: "OS-0007", SaleValue: 195, Hours: 4.5},
			{OrderNumber: "OS-0008", SaleValue: 80},
		},
		Extras: []InvoiceExtra{
			{Description: "Deslocamento", Value: 50},
		},
	}

	value, hours := inv.ComputeTotals()
	if value != 325 {
		t.Fatalf("expected total value 325, got %v", value)
	}
	if hours != 4.5 {
		t.Fatalf("expected total hours 4.5, got %v", hours)
	}
}

func TestInvoice_ComputeTotalsReproducesStored(t *testing.T) {
	inv := Invoice{
		Orders: []InvoiceOrder{{SaleValue: 120.25, Hours: 2}},
		Extras: []InvoiceExtra{{Description: "Material extra", Value: 10.75}},
	}
	inv.TotalValue, inv.TotalHours = inv.ComputeTotals()

	value, hours := inv.ComputeTotals()
	if value != inv.TotalValue || hours != inv.TotalHours {
		t.Fatalf("recompute mismatch: %v/%v vs %v/%v", value, hours, inv.TotalValue, inv.TotalHours)
	}
}
