package request

import (
	"time"

	"serralheria_os/internal/usecase"
)

type InvoiceExtraPayload struct {
	Description string  `json:"description" binding:"required"`
	Value       float64 `json:"value"`
}

// CreateInvoiceRequest selects every billable order of a client whose
// service start falls inside [from, to].
type CreateInvoiceRequest struct {
	ClientID string                `json:"client_id" binding:"required"`
	From     time.Time             `json:"from" binding:"required"`
	To       time.Time             `json:"to" binding:"required"`
	Extras   []InvoiceExtraPayload `json:"extras"`
}

func (r CreateInvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	extras := make([]usecase.InvoiceExtraInput, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, usecase.InvoiceExtraInput{
			Description: e.Description,
			Value:       e.Value,
		})
	}
	return usecase.CreateInvoiceInput{
		ClientID: r.ClientID,
		From:     r.From,
		To:       r.To,
		Extras:   extras,
	}
}
