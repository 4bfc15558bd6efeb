package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

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

// scanApartment reads an apartment row from the scanner.
// Expected column order: id, floor_id, room_number, area, bedrooms, bathrooms,
// status, maintenance_cause, version, under_overlay, created_at, updated_at, deleted_at
func scanApartment(s scanner) (*property.Apartment, error) {
	var a property.Apartment

	var statusStr, causeStr string

	if err := s.Scan(
		&a.ID, &a.FloorID, &a.RoomNumber, &a.Area, &a.Bedrooms, &a.Bathrooms,
		&statusStr, &causeStr, &a.Version, &a.UnderOverlay,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	); err != nil {
		return nil, err
	}

	a.Status = property.ApartmentStatus(statusStr)
	a.MaintenanceCause = property.MaintenanceCause(causeStr)

	return &a, nil
}

// under_overlay is computed from the ancestors so the stored apartment
// status is never overwritten by a building cascade.
const selectApartmentColumns = `
	a.id, a.floor_id, a.room_number, a.area, a.bedrooms, a.bathrooms,
	a.status, a.maintenance_cause, a.version,
	(f.status = 'maintenance' OR b.status = 'maintenance') AS under_overlay,
	a.created_at, a.updated_at, a.deleted_at
`

const apartmentJoins = `
	FROM apartments a
	JOIN floors f ON a.floor_id = f.id
	JOIN buildings b ON f.building_id = b.id
`

func (s *Store) CreateBuilding(ctx context.Context, b *property.Building) error {
	query := `
		INSERT INTO buildings (id, name, status, manager_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	b.ID = uuid.New()

	err := s.db.QueryRowContext(ctx, query, b.ID, b.Name, b.Status, b.ManagerID).
		Scan(&b.CreatedAt)
	if err != nil {
		return database.StoreError("creating building", err)
	}

	return nil
}

func (s *Store) GetBuilding(ctx context.Context, id uuid.UUID) (*property.Building, error) {
	query := `
		SELECT id, name, status, manager_id, created_at, updated_at
		FROM buildings
		WHERE id = $1
	`

	var b property.Building

	var statusStr string

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.Name, &statusStr, &b.ManagerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, database.StoreError("getting building", err)
	}

	b.Status = property.BuildingStatus(statusStr)

	return &b, nil
}

func (s *Store) CreateFloor(ctx context.Context, f *property.Floor) error {
	return createFloor(ctx, s.db, f)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func createFloor(ctx context.Context, db execer, f *property.Floor) error {
	query := `
		INSERT INTO floors (id, building_id, number, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	f.ID = uuid.New()

	err := db.QueryRowContext(ctx, query, f.ID, f.BuildingID, f.Number, f.Status).
		Scan(&f.CreatedAt)
	if err != nil {
		return database.StoreError("creating floor", err)
	}

	return nil
}

func scanFloor(s scanner) (*property.Floor, error) {
	var f property.Floor

	var statusStr string

	if err := s.Scan(&f.ID, &f.BuildingID, &f.Number, &statusStr, &f.CreatedAt); err != nil {
		return nil, err
	}

	f.Status = property.FloorStatus(statusStr)

	return &f, nil
}

func (s *Store) GetFloor(ctx context.Context, id uuid.UUID) (*property.Floor, error) {
	query := `
		SELECT id, building_id, number, status, created_at
		FROM floors
		WHERE id = $1
	`

	f, err := scanFloor(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.StoreError("getting floor", err)
	}

	return f, nil
}

func (s *Store) GetFloorByNumber(ctx context.Context, buildingID uuid.UUID, number int) (*property.Floor, error) {
	query := `
		SELECT id, building_id, number, status, created_at
		FROM floors
		WHERE building_id = $1 AND number = $2
	`

	f, err := scanFloor(s.db.QueryRowContext(ctx, query, buildingID, number))
	if err != nil {
		return nil, database.StoreError("getting floor by number", err)
	}

	return f, nil
}

func (s *Store) ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*property.Floor, error) {
	query := `
		SELECT id, building_id, number, status, created_at
		FROM floors
		WHERE building_id = $1
		ORDER BY number ASC
	`

	rows, err := s.db.QueryContext(ctx, query, buildingID)
	if err != nil {
		return nil, database.StoreError("listing floors", err)
	}
	defer rows.Close()

	var floors []*property.Floor

	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning floor: %w", err)
		}

		floors = append(floors, f)
	}

	return floors, rows.Err()
}

func (s *Store) CreateApartment(ctx context.Context, a *property.Apartment) error {
	query := `
		INSERT INTO apartments (id, floor_id, room_number, area, bedrooms, bathrooms, status, maintenance_cause, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, NOW())
		RETURNING version, created_at
	`

	a.ID = uuid.New()

	err := s.db.QueryRowContext(ctx, query,
		a.ID, a.FloorID, a.RoomNumber, a.Area, a.Bedrooms, a.Bathrooms,
		a.Status, a.MaintenanceCause,
	).Scan(&a.Version, &a.CreatedAt)
	if err != nil {
		return database.StoreError("creating apartment", err)
	}

	return nil
}

func (s *Store) GetApartment(ctx context.Context, id uuid.UUID) (*property.Apartment, error) {
	query := `SELECT ` + selectApartmentColumns + apartmentJoins + `
		WHERE a.id = $1 AND a.deleted_at IS NULL`

	a, err := scanApartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.StoreError("getting apartment", err)
	}

	return a, nil
}

func (s *Store) ListApartmentsByFloor(ctx context.Context, floorID uuid.UUID) ([]*property.Apartment, error) {
	query := `SELECT ` + selectApartmentColumns + apartmentJoins + `
		WHERE a.floor_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.room_number ASC`

	rows, err := s.db.QueryContext(ctx, query, floorID)
	if err != nil {
		return nil, database.StoreError("listing apartments", err)
	}
	defer rows.Close()

	var apartments []*property.Apartment

	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning apartment: %w", err)
		}

		apartments = append(apartments, a)
	}

	return apartments, rows.Err()
}

func (s *Store) ListRoomNumbers(ctx context.Context, floorID uuid.UUID) ([]string, error) {
	query := `
		SELECT room_number
		FROM apartments
		WHERE floor_id = $1 AND deleted_at IS NULL
	`

	rows, err := s.db.QueryContext(ctx, query, floorID)
	if err != nil {
		return nil, database.StoreError("listing room numbers", err)
	}
	defer rows.Close()

	var numbers []string

	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning room number: %w", err)
		}

		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

func (s *Store) UpdateApartmentStatus(ctx context.Context, id uuid.UUID, status property.ApartmentStatus, cause property.MaintenanceCause) error {
	query := `
		UPDATE apartments
		SET status = $1, maintenance_cause = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, status, cause, id)
	if err != nil {
		return database.StoreError("updating apartment status", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return database.StoreError("updating apartment status", sql.ErrNoRows)
	}

	return nil
}

func (s *Store) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE apartments
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return database.StoreError("deleting apartment", err)
	}

	return nil
}

// buildingLockKey derives the advisory lock key for a building so that
// concurrent cascades and seeds over the same building serialize.
func buildingLockKey(buildingID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(buildingID[:])

	return int64(h.Sum64())
}

func (s *Store) beginLocked(ctx context.Context, buildingID uuid.UUID) (*sql.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", buildingLockKey(buildingID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring building lock: %w", err)
	}

	return dbTx, nil
}

type cascadeTx struct {
	tx         *sql.Tx
	buildingID uuid.UUID
}

func (s *Store) BeginCascade(ctx context.Context, buildingID uuid.UUID) (property.CascadeTx, error) {
	dbTx, err := s.beginLocked(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	return &cascadeTx{tx: dbTx, buildingID: buildingID}, nil
}

func (c *cascadeTx) Commit() error   { return c.tx.Commit() }
func (c *cascadeTx) Rollback() error { return c.tx.Rollback() }

func (c *cascadeTx) SetBuildingStatus(ctx context.Context, status property.BuildingStatus) error {
	query := `
		UPDATE buildings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := c.tx.ExecContext(ctx, query, status, c.buildingID); err != nil {
		return database.StoreError("setting building status", err)
	}

	return nil
}

func (c *cascadeTx) SetFloorStatuses(ctx context.Context, status property.FloorStatus) error {
	query := `
		UPDATE floors
		SET status = $1
		WHERE building_id = $2
	`

	if _, err := c.tx.ExecContext(ctx, query, status, c.buildingID); err != nil {
		return database.StoreError("setting floor statuses", err)
	}

	return nil
}

func (c *cascadeTx) MarkAvailableUnderMaintenance(ctx context.Context) error {
	query := `
		UPDATE apartments a
		SET status = 'maintenance', maintenance_cause = 'cascade', version = a.version + 1, updated_at = NOW()
		FROM floors f
		WHERE a.floor_id = f.id
		  AND f.building_id = $1
		  AND a.status = 'available'
		  AND a.deleted_at IS NULL
	`

	if _, err := c.tx.ExecContext(ctx, query, c.buildingID); err != nil {
		return database.StoreError("marking apartments under maintenance", err)
	}

	return nil
}

func (c *cascadeTx) ReleaseCascaded(ctx context.Context) error {
	query := `
		UPDATE apartments a
		SET status = 'available', maintenance_cause = 'none', version = a.version + 1, updated_at = NOW()
		FROM floors f
		WHERE a.floor_id = f.id
		  AND f.building_id = $1
		  AND a.status = 'maintenance'
		  AND a.maintenance_cause = 'cascade'
		  AND a.deleted_at IS NULL
	`

	if _, err := c.tx.ExecContext(ctx, query, c.buildingID); err != nil {
		return database.StoreError("releasing cascaded apartments", err)
	}

	return nil
}

type seedTx struct {
	tx *sql.Tx
}

func (s *Store) BeginSeed(ctx context.Context, buildingID uuid.UUID) (property.SeedTx, error) {
	dbTx, err := s.beginLocked(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	return &seedTx{tx: dbTx}, nil
}

func (stx *seedTx) Commit() error   { return stx.tx.Commit() }
func (stx *seedTx) Rollback() error { return stx.tx.Rollback() }

func (stx *seedTx) CreateFloor(ctx context.Context, f *property.Floor) error {
	return createFloor(ctx, stx.tx, f)
}

func (stx *seedTx) CreateApartments(ctx context.Context, as []*property.Apartment) error {
	query := `
		INSERT INTO apartments (id, floor_id, room_number, area, bedrooms, bathrooms, status, maintenance_cause, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, NOW())
		RETURNING version, created_at
	`

	for _, a := range as {
		a.ID = uuid.New()

		err := stx.tx.QueryRowContext(ctx, query,
			a.ID, a.FloorID, a.RoomNumber, a.Area, a.Bedrooms, a.Bathrooms,
			a.Status, a.MaintenanceCause,
		).Scan(&a.Version, &a.CreatedAt)
		if err != nil {
			return database.StoreError(fmt.Sprintf("creating apartment %s", a.RoomNumber), err)
		}
	}

	return nil
}
