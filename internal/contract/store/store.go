package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/contract"
	"github.com/trungle-dev/renty/internal/database"
	"github.com/trungle-dev/renty/internal/property"
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

// scanContract reads a contract row from the scanner.
// Expected column order: id, apartment_id, resident_id, type, status, signed_date,
// start_date, end_date, monthly_rent, deposit, version, created_at, updated_at, deleted_at
func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var typeStr, statusStr string

	if err := s.Scan(
		&c.ID, &c.ApartmentID, &c.ResidentID, &typeStr, &statusStr, &c.SignedDate,
		&c.StartDate, &c.EndDate, &c.MonthlyRent, &c.Deposit, &c.Version,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Type = contract.Type(typeStr)
	c.Status = contract.Status(statusStr)

	return &c, nil
}

const selectContractColumns = `
	c.id, c.apartment_id, c.resident_id, c.type, c.status, c.signed_date,
	c.start_date, c.end_date, c.monthly_rent, c.deposit, c.version,
	c.created_at, c.updated_at, c.deleted_at
`

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.StoreError("getting contract", err)
	}

	return c, nil
}

func (s *Store) listContracts(ctx context.Context, query string, args ...any) ([]*contract.Contract, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.StoreError("listing contracts", err)
	}
	defer rows.Close()

	var cs []*contract.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		cs = append(cs, c)
	}

	return cs, rows.Err()
}

func (s *Store) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.apartment_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC`

	return s.listContracts(ctx, query, apartmentID)
}

func (s *Store) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		JOIN apartments a ON c.apartment_id = a.id
		JOIN floors f ON a.floor_id = f.id
		WHERE f.building_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC`

	return s.listContracts(ctx, query, buildingID)
}

func (s *Store) ListActive(ctx context.Context) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.status = 'active' AND c.deleted_at IS NULL
		ORDER BY c.end_date ASC NULLS LAST`

	return s.listContracts(ctx, query)
}

func (s *Store) ListServices(ctx context.Context, contractID uuid.UUID) ([]*contract.ServiceLine, error) {
	query := `
		SELECT id, contract_id, service_id, name, unit_price, applied_from
		FROM contract_services
		WHERE contract_id = $1
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, database.StoreError("listing service lines", err)
	}
	defer rows.Close()

	var lines []*contract.ServiceLine

	for rows.Next() {
		var l contract.ServiceLine
		if err := rows.Scan(&l.ID, &l.ContractID, &l.ServiceID, &l.Name, &l.UnitPrice, &l.AppliedFrom); err != nil {
			return nil, fmt.Errorf("scanning service line: %w", err)
		}

		lines = append(lines, &l)
	}

	return lines, rows.Err()
}

func (s *Store) ListHistory(ctx context.Context, contractID uuid.UUID) ([]*contract.HistoryEntry, error) {
	query := `
		SELECT id, contract_id, action, actor_name, reason, refund_amount, occurred_at
		FROM contract_history
		WHERE contract_id = $1
		ORDER BY occurred_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, database.StoreError("listing history", err)
	}
	defer rows.Close()

	var entries []*contract.HistoryEntry

	for rows.Next() {
		var h contract.HistoryEntry

		var actionStr string

		if err := rows.Scan(&h.ID, &h.ContractID, &actionStr, &h.ActorName, &h.Reason, &h.RefundAmount, &h.OccurredAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		h.Action = contract.Action(actionStr)

		entries = append(entries, &h)
	}

	return entries, rows.Err()
}

type lifecycleTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (contract.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning lifecycle tx: %w", err)
	}

	return &lifecycleTx{tx: dbTx}, nil
}

func (ltx *lifecycleTx) Commit() error   { return ltx.tx.Commit() }
func (ltx *lifecycleTx) Rollback() error { return ltx.tx.Rollback() }

func (ltx *lifecycleTx) CreateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (id, apartment_id, resident_id, type, status, signed_date, start_date, end_date, monthly_rent, deposit, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, NOW())
		RETURNING version, created_at
	`

	c.ID = uuid.New()

	err := ltx.tx.QueryRowContext(ctx, query,
		c.ID, c.ApartmentID, c.ResidentID, c.Type, c.Status, c.SignedDate,
		c.StartDate, c.EndDate, c.MonthlyRent, c.Deposit,
	).Scan(&c.Version, &c.CreatedAt)
	if err != nil {
		return database.StoreError("creating contract", err)
	}

	return nil
}

func (ltx *lifecycleTx) UpdateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		UPDATE contracts
		SET status = $1, start_date = $2, end_date = $3, monthly_rent = $4, deposit = $5,
		    version = version + 1, updated_at = NOW()
		WHERE id = $6 AND version = $7 AND deleted_at IS NULL
		RETURNING version
	`

	err := ltx.tx.QueryRowContext(ctx, query,
		c.Status, c.StartDate, c.EndDate, c.MonthlyRent, c.Deposit,
		c.ID, c.Version,
	).Scan(&c.Version)
	if err != nil {
		if err == sql.ErrNoRows {
			// Either the row is gone or a concurrent writer bumped the
			// version first.
			return apperr.Conflict("contract %s was modified concurrently", c.ID)
		}

		return database.StoreError("updating contract", err)
	}

	return nil
}

func (ltx *lifecycleTx) ReplaceServices(ctx context.Context, contractID uuid.UUID, lines []*contract.ServiceLine) error {
	if _, err := ltx.tx.ExecContext(ctx, `DELETE FROM contract_services WHERE contract_id = $1`, contractID); err != nil {
		return database.StoreError("clearing service lines", err)
	}

	query := `
		INSERT INTO contract_services (id, contract_id, service_id, name, unit_price, applied_from)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, l := range lines {
		l.ID = uuid.New()

		if _, err := ltx.tx.ExecContext(ctx, query, l.ID, contractID, l.ServiceID, l.Name, l.UnitPrice, l.AppliedFrom); err != nil {
			return database.StoreError(fmt.Sprintf("inserting service line %s", l.Name), err)
		}
	}

	return nil
}

func (ltx *lifecycleTx) AppendHistory(ctx context.Context, h *contract.HistoryEntry) error {
	query := `
		INSERT INTO contract_history (id, contract_id, action, actor_name, reason, refund_amount, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	h.ID = uuid.New()

	if _, err := ltx.tx.ExecContext(ctx, query, h.ID, h.ContractID, h.Action, h.ActorName, h.Reason, h.RefundAmount, h.OccurredAt); err != nil {
		return database.StoreError("appending history", err)
	}

	return nil
}

func (ltx *lifecycleTx) GetApartmentForUpdate(ctx context.Context, apartmentID uuid.UUID) (*contract.ApartmentState, error) {
	// The overlay columns come from the ancestors; FOR UPDATE OF a locks
	// only the apartment row.
	query := `
		SELECT a.id, a.status,
		       (f.status = 'maintenance' OR b.status = 'maintenance') AS under_overlay
		FROM apartments a
		JOIN floors f ON a.floor_id = f.id
		JOIN buildings b ON f.building_id = b.id
		WHERE a.id = $1 AND a.deleted_at IS NULL
		FOR UPDATE OF a
	`

	var state contract.ApartmentState

	var statusStr string

	err := ltx.tx.QueryRowContext(ctx, query, apartmentID).
		Scan(&state.ID, &statusStr, &state.UnderOverlay)
	if err != nil {
		return nil, database.StoreError("locking apartment", err)
	}

	state.Status = property.ApartmentStatus(statusStr)

	return &state, nil
}

func (ltx *lifecycleTx) SetApartmentStatus(ctx context.Context, apartmentID uuid.UUID, status property.ApartmentStatus, cause property.MaintenanceCause) error {
	query := `
		UPDATE apartments
		SET status = $1, maintenance_cause = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	if _, err := ltx.tx.ExecContext(ctx, query, status, cause, apartmentID); err != nil {
		return database.StoreError("updating apartment status", err)
	}

	return nil
}
