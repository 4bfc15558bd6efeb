package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/contract"
)

type contractResponse struct {
	ID          uuid.UUID       `json:"id"`
	ApartmentID uuid.UUID       `json:"apartment_id"`
	ResidentID  uuid.UUID       `json:"resident_id"`
	Type        contract.Type   `json:"type"`
	Status      contract.Status `json:"status"`

	// Category is the derived temporal state, computed at read time.
	Category contract.Category `json:"category"`

	SignedDate  time.Time  `json:"signed_date"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	MonthlyRent int64      `json:"monthly_rent"`
	Deposit     int64      `json:"deposit"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *contract.Contract, now time.Time) contractResponse {
	return contractResponse{
		ID:          c.ID,
		ApartmentID: c.ApartmentID,
		ResidentID:  c.ResidentID,
		Type:        c.Type,
		Status:      c.Status,
		Category:    contract.Classify(c, now),
		SignedDate:  c.SignedDate,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRent: c.MonthlyRent,
		Deposit:     c.Deposit,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toResponseList(cs []*contract.Contract, now time.Time) []contractResponse {
	resp := make([]contractResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c, now)
	}

	return resp
}

type serviceLineResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"name"`
	UnitPrice   int64     `json:"unit_price"`
	AppliedFrom time.Time `json:"applied_from"`
}

func toServiceLineResponseList(lines []*contract.ServiceLine) []serviceLineResponse {
	resp := make([]serviceLineResponse, len(lines))
	for i, l := range lines {
		resp[i] = serviceLineResponse{
			ID:          l.ID,
			ServiceID:   l.ServiceID,
			Name:        l.Name,
			UnitPrice:   l.UnitPrice,
			AppliedFrom: l.AppliedFrom,
		}
	}

	return resp
}

type historyResponse struct {
	ID           uuid.UUID       `json:"id"`
	Action       contract.Action `json:"action"`
	ActorName    string          `json:"actor_name,omitempty"`
	Reason       string          `json:"reason,omitempty"`
	RefundAmount int64           `json:"refund_amount,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func toHistoryResponseList(entries []*contract.HistoryEntry) []historyResponse {
	resp := make([]historyResponse, len(entries))
	for i, h := range entries {
		resp[i] = historyResponse{
			ID:           h.ID,
			Action:       h.Action,
			ActorName:    h.ActorName,
			Reason:       h.Reason,
			RefundAmount: h.RefundAmount,
			OccurredAt:   h.OccurredAt,
		}
	}

	return resp
}
