package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusUnpaid   Status = "unpaid"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

// Invoice is the bill for one contract and one calendar period. At
// most one invoice exists per (contract, month, year); regenerating
// replaces the unpaid one.
type Invoice struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Month       int
	Year        int
	Total       int64 // whole đồng
	Status      Status
	PaymentDate *time.Time
	Details     []*Detail // loaded with the invoice
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Detail is one line of an invoice: the rent or a billed service.
// Amount is unit price times quantity, truncated to a whole currency
// unit.
type Detail struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Label     string
	UnitPrice int64
	Quantity  decimal.Decimal
	Amount    int64
}

// Selection is a service the caller enabled for the billing period.
// Quantity defaults to 1 and may be fractional for metered services.
type Selection struct {
	Label     string
	UnitPrice int64
	Quantity  decimal.Decimal
}
