package response

import (
	"time"

	"serralheria_os/internal/domain/entities"
)

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type BudgetResponse struct {
	ID                   string               `json:"id"`
	Number               string               `json:"number"`
	Client               ClientResponse       `json:"client"`
	Description          string               `json:"description,omitempty"`
	TotalValue           float64              `json:"total_value"`
	ValidUntil           *time.Time           `json:"valid_until,omitempty"`
	Status               string               `json:"status"`
	Items                []BudgetItemResponse `json:"items"`
	ConvertedOrderNumber string               `json:"converted_order_number,omitempty"`
	CreatedBy            string               `json:"created_by"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			ServiceName: it.ServiceName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return BudgetResponse{
		ID:     b.ID,
		Number: b.Number,
		Client: ClientResponse{
			ID:      b.ClientID,
			Name:    b.Client.Name,
			Contact: b.Client.Contact,
			Address: b.Client.Address,
		},
		Description:          b.Description,
		TotalValue:           b.TotalValue,
		ValidUntil:           b.ValidUntil,
		Status:               string(b.Status),
		Items:                items,
		ConvertedOrderNumber: b.ConvertedOrderNumber,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
