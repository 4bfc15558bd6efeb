package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/contract"
)

// RentLabel is the line label used for the rent detail row.
const RentLabel = "rent"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Invoice, error)

	// MarkPaid and CancelInvoice update the status only while it is
	// still UNPAID; a lost race surfaces as a conflict.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) error
	CancelInvoice(ctx context.Context, id uuid.UUID) error

	Summarize(ctx context.Context, month, year int) (*Summary, error)

	BeginInvoice(ctx context.Context) (InvoiceTx, error)
}

// InvoiceTx writes the invoice header and its detail rows atomically.
type InvoiceTx interface {
	// GetByPeriod row-locks and returns the invoice for the period, or
	// a not-found error when none exists yet.
	GetByPeriod(ctx context.Context, contractID uuid.UUID, month, year int) (*Invoice, error)

	// UpsertInvoice inserts the header or, on the period unique key,
	// replaces the total of the existing unpaid one.
	UpsertInvoice(ctx context.Context, inv *Invoice) error

	ReplaceDetails(ctx context.Context, invoiceID uuid.UUID, details []*Detail) error

	Commit() error
	Rollback() error
}

// Summary aggregates a period's invoices. Canceled invoices are
// excluded from both the count and the revenue figures.
type Summary struct {
	Month        int
	Year         int
	InvoiceCount int
	BilledTotal  int64 // unpaid + paid
	PaidTotal    int64
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type GenerateParams struct {
	ContractID  uuid.UUID
	Month       int
	Year        int
	Selections  []Selection
	DebtAmount  int64 // carried-over balance, added on top of the lines
	IncludeRent bool
}

// Generate computes and persists the invoice for one contract and
// period. Regenerating an existing unpaid invoice replaces it; a paid
// or canceled invoice is never overwritten.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*Invoice, error) {
	if params.Month < 1 || params.Month > 12 {
		return nil, apperr.Validation("month must be 1..12, got %d", params.Month)
	}

	if params.Year < 2000 || params.Year > 2200 {
		return nil, apperr.Validation("year %d is out of range", params.Year)
	}

	if params.DebtAmount < 0 {
		return nil, apperr.Validation("debt must not be negative, got %d", params.DebtAmount)
	}

	for _, sel := range params.Selections {
		if sel.Label == "" {
			return nil, apperr.Validation("selection label is required")
		}

		if sel.UnitPrice < 0 {
			return nil, apperr.Validation("selection %q: unit price must not be negative", sel.Label)
		}

		if sel.Quantity.IsNegative() {
			return nil, apperr.Validation("selection %q: quantity must not be negative", sel.Label)
		}
	}

	c, err := s.repo.GetContract(ctx, params.ContractID)
	if err != nil {
		return nil, err
	}

	if params.IncludeRent && c.Type != contract.TypeRental {
		return nil, apperr.Validation("rent billing requested for a non-rental contract")
	}

	inv := &Invoice{
		ContractID: params.ContractID,
		Month:      params.Month,
		Year:       params.Year,
		Status:     StatusUnpaid,
	}

	var details []*Detail

	if params.IncludeRent && c.MonthlyRent > 0 {
		details = append(details, &Detail{
			Label:     RentLabel,
			UnitPrice: c.MonthlyRent,
			Quantity:  decimal.NewFromInt(1),
			Amount:    c.MonthlyRent,
		})
	}

	for _, sel := range params.Selections {
		qty := sel.Quantity
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}

		amount := lineAmount(sel.UnitPrice, qty)
		if amount == 0 {
			// Zero-amount lines produce no detail row.
			continue
		}

		details = append(details, &Detail{
			Label:     sel.Label,
			UnitPrice: sel.UnitPrice,
			Quantity:  qty,
			Amount:    amount,
		})
	}

	for _, d := range details {
		inv.Total += d.Amount
	}

	inv.Total += params.DebtAmount

	tx, err := s.repo.BeginInvoice(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin invoice: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.GetByPeriod(ctx, params.ContractID, params.Month, params.Year)
	if err == nil && existing.Status != StatusUnpaid {
		return nil, apperr.InvalidOperation("invoice for %d/%d is already %s", params.Month, params.Year, existing.Status)
	}

	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if err := tx.UpsertInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("upserting invoice: %w", err)
	}

	if err := tx.ReplaceDetails(ctx, inv.ID, details); err != nil {
		return nil, fmt.Errorf("writing details: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit invoice: %w", err)
	}

	for _, d := range details {
		d.InvoiceID = inv.ID
	}

	inv.Details = details

	return inv, nil
}

// lineAmount truncates unit price times quantity to a whole currency
// unit; đồng has no fractional unit.
func lineAmount(unitPrice int64, qty decimal.Decimal) int64 {
	return decimal.NewFromInt(unitPrice).Mul(qty).Truncate(0).IntPart()
}

// MarkPaid settles an unpaid invoice.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusUnpaid {
		return nil, apperr.InvalidOperation("invoice %s is %s", id, inv.Status)
	}

	if err := s.repo.MarkPaid(ctx, id, paymentDate); err != nil {
		return nil, err
	}

	inv.Status = StatusPaid
	inv.PaymentDate = &paymentDate

	return inv, nil
}

// Cancel voids an unpaid invoice. Canceled invoices are kept for audit
// but excluded from all aggregates.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusUnpaid {
		return nil, apperr.InvalidOperation("invoice %s is %s", id, inv.Status)
	}

	if err := s.repo.CancelInvoice(ctx, id); err != nil {
		return nil, err
	}

	inv.Status = StatusCanceled

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Invoice, error) {
	return s.repo.ListByContract(ctx, contractID)
}

func (s *Service) Summary(ctx context.Context, month, year int) (*Summary, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be 1..12, got %d", month)
	}

	return s.repo.Summarize(ctx, month, year)
}
