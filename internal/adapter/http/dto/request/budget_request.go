package request

import (
	"time"

	"serralheria_os/internal/domain/entities"
	"serralheria_os/internal/usecase"
)

type ClientPayload struct {
	ID      string `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (p ClientPayload) Snapshot() entities.ClientSnapshot {
	return entities.ClientSnapshot{
		Name:    p.Name,
		Contact: p.Contact,
		Address: p.Address,
	}
}

type BudgetItemPayload struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type CreateBudgetRequest struct {
	Client      ClientPayload       `json:"client" binding:"required"`
	Description string              `json:"description"`
	ValidUntil  *time.Time          `json:"valid_until"`
	Pending     bool                `json:"pending"`
	Items       []BudgetItemPayload `json:"items"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		ClientID:    r.Client.ID,
		Client:      r.Client.Snapshot(),
		Description: r.Description,
		ValidUntil:  r.ValidUntil,
		Pending:     r.Pending,
		Items:       toBudgetItemInputs(r.Items),
	}
}

type UpdateBudgetRequest struct {
	Client      *ClientPayload       `json:"client"`
	Description *string              `json:"description"`
	ValidUntil  *time.Time           `json:"valid_until"`
	Items       *[]BudgetItemPayload `json:"items"`
}

func (r UpdateBudgetRequest) ToInput() usecase.UpdateBudgetInput {
	in := usecase.UpdateBudgetInput{
		Description: r.Description,
		ValidUntil:  r.ValidUntil,
	}
	if r.Client != nil {
		snap := r.Client.Snapshot()
		in.Client = &snap
	}
	if r.Items != nil {
		items := toBudgetItemInputs(*r.Items)
		in.Items = &items
	}
	return in
}

type UpdateBudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toBudgetItemInputs(payloads []BudgetItemPayload) []usecase.BudgetItemInput {
	items := make([]usecase.BudgetItemInput, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, usecase.BudgetItemInput{
			ServiceName: p.ServiceName,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
		})
	}
	return items
}
