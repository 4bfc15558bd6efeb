package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/renty/internal/billing"
)

type detailResponse struct {
	ID        uuid.UUID       `json:"id"`
	Label     string          `json:"label"`
	UnitPrice int64           `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    int64           `json:"amount"`
}

type invoiceResponse struct {
	ID          uuid.UUID        `json:"id"`
	ContractID  uuid.UUID        `json:"contract_id"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	Total       int64            `json:"total"`
	Status      billing.Status   `json:"status"`
	PaymentDate *time.Time       `json:"payment_date,omitempty"`
	Details     []detailResponse `json:"details,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(inv *billing.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:          inv.ID,
		ContractID:  inv.ContractID,
		Month:       inv.Month,
		Year:        inv.Year,
		Total:       inv.Total,
		Status:      inv.Status,
		PaymentDate: inv.PaymentDate,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}

	for _, d := range inv.Details {
		resp.Details = append(resp.Details, detailResponse{
			ID:        d.ID,
			Label:     d.Label,
			UnitPrice: d.UnitPrice,
			Quantity:  d.Quantity,
			Amount:    d.Amount,
		})
	}

	return resp
}

func toResponseList(invoices []*billing.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}

type summaryResponse struct {
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	InvoiceCount int   `json:"invoice_count"`
	BilledTotal  int64 `json:"billed_total"`
	PaidTotal    int64 `json:"paid_total"`
}

func toSummaryResponse(s *billing.Summary) summaryResponse {
	return summaryResponse{
		Month:        s.Month,
		Year:         s.Year,
		InvoiceCount: s.InvoiceCount,
		BilledTotal:  s.BilledTotal,
		PaidTotal:    s.PaidTotal,
	}
}
