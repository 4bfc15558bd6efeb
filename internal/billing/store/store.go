package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/billing"
	"github.com/trungle-dev/renty/internal/contract"
	"github.com/trungle-dev/renty/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (*billing.Invoice, error) {
	var inv billing.Invoice

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.ContractID, &inv.Month, &inv.Year, &inv.Total,
		&statusStr, &inv.PaymentDate, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = billing.Status(statusStr)

	return &inv, nil
}

const selectInvoiceColumns = `
	id, contract_id, month, year, total, status, payment_date, created_at, updated_at
`

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.StoreError("getting invoice", err)
	}

	details, err := s.listDetails(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	inv.Details = details

	return inv, nil
}

func (s *Store) listDetails(ctx context.Context, invoiceID uuid.UUID) ([]*billing.Detail, error) {
	query := `
		SELECT id, invoice_id, label, unit_price, quantity, amount
		FROM invoice_details
		WHERE invoice_id = $1
		ORDER BY label ASC
	`

	rows, err := s.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, database.StoreError("listing invoice details", err)
	}
	defer rows.Close()

	var details []*billing.Detail

	for rows.Next() {
		var d billing.Detail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.Label, &d.UnitPrice, &d.Quantity, &d.Amount); err != nil {
			return nil, fmt.Errorf("scanning invoice detail: %w", err)
		}

		details = append(details, &d)
	}

	return details, rows.Err()
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `
		SELECT id, apartment_id, resident_id, type, status, signed_date,
		       start_date, end_date, monthly_rent, deposit, version,
		       created_at, updated_at, deleted_at
		FROM contracts
		WHERE id = $1 AND deleted_at IS NULL
	`

	var c contract.Contract

	var typeStr, statusStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ApartmentID, &c.ResidentID, &typeStr, &statusStr, &c.SignedDate,
		&c.StartDate, &c.EndDate, &c.MonthlyRent, &c.Deposit, &c.Version,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, database.StoreError("getting contract", err)
	}

	c.Type = contract.Type(typeStr)
	c.Status = contract.Status(statusStr)

	return &c, nil
}

func (s *Store) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE contract_id = $1
		ORDER BY year DESC, month DESC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, database.StoreError("listing invoices", err)
	}
	defer rows.Close()

	var invoices []*billing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// MarkPaid flips an invoice to paid only while it is still unpaid. A
// lost race with another settle or cancel surfaces as a conflict.
func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) error {
	query := `
		UPDATE invoices
		SET status = 'paid', payment_date = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'unpaid'
	`

	res, err := s.db.ExecContext(ctx, query, paymentDate, id)
	if err != nil {
		return database.StoreError("marking invoice paid", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.Conflict("invoice %s is no longer unpaid", id)
	}

	return nil
}

func (s *Store) CancelInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET status = 'canceled', updated_at = NOW()
		WHERE id = $1 AND status = 'unpaid'
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return database.StoreError("canceling invoice", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.Conflict("invoice %s is no longer unpaid", id)
	}

	return nil
}

func (s *Store) Summarize(ctx context.Context, month, year int) (*billing.Summary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(total) FILTER (WHERE status = 'paid'), 0)
		FROM invoices
		WHERE month = $1 AND year = $2 AND status <> 'canceled'
	`

	sum := &billing.Summary{Month: month, Year: year}

	err := s.db.QueryRowContext(ctx, query, month, year).
		Scan(&sum.InvoiceCount, &sum.BilledTotal, &sum.PaidTotal)
	if err != nil {
		return nil, database.StoreError("summarizing invoices", err)
	}

	return sum, nil
}

type invoiceTx struct {
	tx *sql.Tx
}

func (s *Store) BeginInvoice(ctx context.Context) (billing.InvoiceTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning invoice tx: %w", err)
	}

	return &invoiceTx{tx: dbTx}, nil
}

func (itx *invoiceTx) Commit() error   { return itx.tx.Commit() }
func (itx *invoiceTx) Rollback() error { return itx.tx.Rollback() }

func (itx *invoiceTx) GetByPeriod(ctx context.Context, contractID uuid.UUID, month, year int) (*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE contract_id = $1 AND month = $2 AND year = $3
		FOR UPDATE`

	inv, err := scanInvoice(itx.tx.QueryRowContext(ctx, query, contractID, month, year))
	if err != nil {
		return nil, database.StoreError("getting invoice by period", err)
	}

	return inv, nil
}

func (itx *invoiceTx) UpsertInvoice(ctx context.Context, inv *billing.Invoice) error {
	query := `
		INSERT INTO invoices (id, contract_id, month, year, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (contract_id, month, year) DO UPDATE
		SET total = EXCLUDED.total, status = EXCLUDED.status, payment_date = NULL, updated_at = NOW()
		RETURNING id, created_at
	`

	err := itx.tx.QueryRowContext(ctx, query,
		uuid.New(), inv.ContractID, inv.Month, inv.Year, inv.Total, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return database.StoreError("upserting invoice", err)
	}

	return nil
}

func (itx *invoiceTx) ReplaceDetails(ctx context.Context, invoiceID uuid.UUID, details []*billing.Detail) error {
	if _, err := itx.tx.ExecContext(ctx, `DELETE FROM invoice_details WHERE invoice_id = $1`, invoiceID); err != nil {
		return database.StoreError("clearing invoice details", err)
	}

	query := `
		INSERT INTO invoice_details (id, invoice_id, label, unit_price, quantity, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, d := range details {
		d.ID = uuid.New()

		if _, err := itx.tx.ExecContext(ctx, query, d.ID, invoiceID, d.Label, d.UnitPrice, d.Quantity, d.Amount); err != nil {
			return database.StoreError(fmt.Sprintf("inserting invoice detail %s", d.Label), err)
		}
	}

	return nil
}
