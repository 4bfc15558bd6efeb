package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/actor"
	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/property"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*Contract, error)
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*Contract, error)
	ListActive(ctx context.Context) ([]*Contract, error)
	ListServices(ctx context.Context, contractID uuid.UUID) ([]*ServiceLine, error)
	ListHistory(ctx context.Context, contractID uuid.UUID) ([]*HistoryEntry, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx groups the writes of one lifecycle operation. The contract row,
// its service lines, the history entry, and the apartment status must
// commit together or not at all.
type Tx interface {
	CreateContract(ctx context.Context, c *Contract) error

	// UpdateContract is version-checked: a stale Version fails with a
	// conflict instead of overwriting a concurrent writer.
	UpdateContract(ctx context.Context, c *Contract) error

	ReplaceServices(ctx context.Context, contractID uuid.UUID, lines []*ServiceLine) error
	AppendHistory(ctx context.Context, h *HistoryEntry) error

	// GetApartmentForUpdate row-locks the apartment and reports its
	// stored status plus the ancestor maintenance overlay.
	GetApartmentForUpdate(ctx context.Context, apartmentID uuid.UUID) (*ApartmentState, error)
	SetApartmentStatus(ctx context.Context, apartmentID uuid.UUID, status property.ApartmentStatus, cause property.MaintenanceCause) error

	Commit() error
	Rollback() error
}

// ApartmentState is the slice of apartment state a lifecycle operation
// needs: the stored availability signal and whether an ancestor is
// under maintenance.
type ApartmentState struct {
	ID           uuid.UUID
	Status       property.ApartmentStatus
	UnderOverlay bool
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	ApartmentID uuid.UUID
	ResidentID  uuid.UUID
	Type        Type
	SignedDate  time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	MonthlyRent int64
	Deposit     int64
}

type ServiceParams struct {
	ServiceID uuid.UUID
	Name      string
	UnitPrice int64
}

// Create validates and persists a new contract, its service lines, and
// the matching apartment status in one transaction.
func (s *Service) Create(ctx context.Context, params CreateParams, services []ServiceParams) (*Contract, error) {
	c := &Contract{
		ApartmentID: params.ApartmentID,
		ResidentID:  params.ResidentID,
		Type:        params.Type,
		Status:      StatusActive,
		SignedDate:  params.SignedDate,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		MonthlyRent: params.MonthlyRent,
		Deposit:     params.Deposit,
	}

	switch params.Type {
	case TypeRental:
		if params.StartDate == nil {
			return nil, apperr.Validation("rental contract requires a start date")
		}

		if params.EndDate != nil && !params.EndDate.After(*params.StartDate) {
			return nil, apperr.Validation("end date must be after start date")
		}
	case TypeOwnership:
		// Ownership contracts never carry a period.
		c.StartDate = nil
		c.EndDate = nil
	default:
		return nil, apperr.Validation("unknown contract type %q", params.Type)
	}

	if params.MonthlyRent <= 0 {
		return nil, apperr.Validation("amount must be positive, got %d", params.MonthlyRent)
	}

	if params.Deposit < 0 {
		return nil, apperr.Validation("deposit must not be negative, got %d", params.Deposit)
	}

	for i, sp := range services {
		if sp.Name == "" {
			return nil, apperr.Validation("service %d: name is required", i+1)
		}

		if sp.UnitPrice < 0 {
			return nil, apperr.Validation("service %q: unit price must not be negative", sp.Name)
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	apt, err := tx.GetApartmentForUpdate(ctx, params.ApartmentID)
	if err != nil {
		return nil, err
	}

	if apt.Status != property.ApartmentAvailable {
		return nil, apperr.Conflict("apartment %s is %s", apt.ID, apt.Status)
	}

	if apt.UnderOverlay {
		return nil, apperr.Conflict("apartment %s is under building maintenance", apt.ID)
	}

	if err := tx.CreateContract(ctx, c); err != nil {
		return nil, fmt.Errorf("creating contract: %w", err)
	}

	appliedFrom := s.now()
	if c.StartDate != nil {
		appliedFrom = *c.StartDate
	}

	if err := tx.ReplaceServices(ctx, c.ID, toServiceLines(c.ID, services, appliedFrom)); err != nil {
		return nil, fmt.Errorf("creating service lines: %w", err)
	}

	if err := tx.AppendHistory(ctx, s.historyEntry(ctx, c.ID, ActionCreated, 0, "")); err != nil {
		return nil, fmt.Errorf("appending history: %w", err)
	}

	occupied := property.ApartmentRented
	if c.Type == TypeOwnership {
		occupied = property.ApartmentOwned
	}

	if err := tx.SetApartmentStatus(ctx, apt.ID, occupied, property.CauseNone); err != nil {
		return nil, fmt.Errorf("updating apartment status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create: %w", err)
	}

	return c, nil
}

// Renew extends a rental contract to a new end date, optionally with a
// new rent. The stored status is untouched.
func (s *Service) Renew(ctx context.Context, id uuid.UUID, newEndDate time.Time, newRent *int64) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Type != TypeRental {
		return nil, apperr.InvalidOperation("only rental contracts can be renewed")
	}

	if Classify(c, s.now()) == CategoryTerminated {
		return nil, apperr.InvalidOperation("contract %s is terminated", id)
	}

	if c.StartDate != nil && !newEndDate.After(*c.StartDate) {
		return nil, apperr.Validation("new end date must be after start date")
	}

	if newRent != nil && *newRent <= 0 {
		return nil, apperr.Validation("rent must be positive, got %d", *newRent)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin renew: %w", err)
	}
	defer tx.Rollback()

	c.EndDate = &newEndDate
	if newRent != nil {
		c.MonthlyRent = *newRent
	}

	if err := tx.UpdateContract(ctx, c); err != nil {
		return nil, fmt.Errorf("updating contract: %w", err)
	}

	if err := tx.AppendHistory(ctx, s.historyEntry(ctx, c.ID, ActionRenewed, 0, "")); err != nil {
		return nil, fmt.Errorf("appending history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit renew: %w", err)
	}

	return c, nil
}

// Terminate ends a contract, records a structured audit entry, and
// releases the apartment. An apartment whose ancestors are under
// maintenance goes to cascade maintenance instead of available, so the
// eventual reversal picks it up.
func (s *Service) Terminate(ctx context.Context, id uuid.UUID, terminationDate time.Time, refundAmount int64, reason string) (*Contract, error) {
	return s.close(ctx, id, ActionTerminated, StatusTerminated, terminationDate, refundAmount, reason)
}

// Cancel voids a contract by explicit operator action. Same release
// semantics as Terminate.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, reason string) (*Contract, error) {
	return s.close(ctx, id, ActionCancelled, StatusCancelled, s.now(), 0, reason)
}

func (s *Service) close(ctx context.Context, id uuid.UUID, action Action, terminal Status, when time.Time, refund int64, reason string) (*Contract, error) {
	if refund < 0 {
		return nil, apperr.Validation("refund must not be negative, got %d", refund)
	}

	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if Classify(c, s.now()) == CategoryTerminated {
		return nil, apperr.InvalidOperation("contract %s is already %s", id, c.Status)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin %s: %w", action, err)
	}
	defer tx.Rollback()

	c.Status = terminal

	if err := tx.UpdateContract(ctx, c); err != nil {
		return nil, fmt.Errorf("updating contract: %w", err)
	}

	h := s.historyEntry(ctx, c.ID, action, refund, reason)
	h.OccurredAt = when

	if err := tx.AppendHistory(ctx, h); err != nil {
		return nil, fmt.Errorf("appending history: %w", err)
	}

	apt, err := tx.GetApartmentForUpdate(ctx, c.ApartmentID)
	if err != nil {
		return nil, err
	}

	released := property.ApartmentAvailable
	cause := property.CauseNone

	if apt.UnderOverlay {
		released = property.ApartmentMaintenance
		cause = property.CauseCascade
	}

	if err := tx.SetApartmentStatus(ctx, apt.ID, released, cause); err != nil {
		return nil, fmt.Errorf("updating apartment status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit %s: %w", action, err)
	}

	return c, nil
}

// ReplaceServices swaps the full set of service lines on a contract,
// delete-then-insert.
func (s *Service) ReplaceServices(ctx context.Context, id uuid.UUID, services []ServiceParams) error {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return err
	}

	if Classify(c, s.now()) == CategoryTerminated {
		return apperr.InvalidOperation("contract %s is %s", id, c.Status)
	}

	for i, sp := range services {
		if sp.Name == "" {
			return apperr.Validation("service %d: name is required", i+1)
		}

		if sp.UnitPrice < 0 {
			return apperr.Validation("service %q: unit price must not be negative", sp.Name)
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace services: %w", err)
	}
	defer tx.Rollback()

	if err := tx.ReplaceServices(ctx, id, toServiceLines(id, services, s.now())); err != nil {
		return fmt.Errorf("replacing service lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace services: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return s.repo.GetContract(ctx, id)
}

func (s *Service) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*Contract, error) {
	return s.repo.ListByApartment(ctx, apartmentID)
}

func (s *Service) ListServices(ctx context.Context, id uuid.UUID) ([]*ServiceLine, error) {
	return s.repo.ListServices(ctx, id)
}

func (s *Service) ListHistory(ctx context.Context, id uuid.UUID) ([]*HistoryEntry, error) {
	return s.repo.ListHistory(ctx, id)
}

// ListExpiring returns the active contracts whose end date falls
// inside the expiry window, via Classify.
func (s *Service) ListExpiring(ctx context.Context) ([]*Contract, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var expiring []*Contract

	for _, c := range active {
		if Classify(c, now) == CategoryExpiring {
			expiring = append(expiring, c)
		}
	}

	return expiring, nil
}

// BuildingHasBlocking reports whether any apartment below the building
// holds a contract that blocks a maintenance transition.
func (s *Service) BuildingHasBlocking(ctx context.Context, buildingID uuid.UUID, now time.Time) (bool, error) {
	cs, err := s.repo.ListByBuilding(ctx, buildingID)
	if err != nil {
		return false, err
	}

	return anyBlocking(cs, now), nil
}

// ApartmentHasBlocking reports whether the apartment holds any
// non-terminated contract, which blocks its deletion.
func (s *Service) ApartmentHasBlocking(ctx context.Context, apartmentID uuid.UUID, now time.Time) (bool, error) {
	cs, err := s.repo.ListByApartment(ctx, apartmentID)
	if err != nil {
		return false, err
	}

	return anyBlocking(cs, now), nil
}

func anyBlocking(cs []*Contract, now time.Time) bool {
	for _, c := range cs {
		if Classify(c, now) != CategoryTerminated {
			return true
		}
	}

	return false
}

func (s *Service) historyEntry(ctx context.Context, contractID uuid.UUID, action Action, refund int64, reason string) *HistoryEntry {
	h := &HistoryEntry{
		ContractID:   contractID,
		Action:       action,
		RefundAmount: refund,
		Reason:       reason,
		OccurredAt:   s.now(),
	}

	if a, ok := actor.FromContext(ctx); ok {
		h.ActorName = a.Name
	}

	return h
}

func toServiceLines(contractID uuid.UUID, services []ServiceParams, appliedFrom time.Time) []*ServiceLine {
	lines := make([]*ServiceLine, len(services))
	for i, sp := range services {
		lines[i] = &ServiceLine{
			ContractID:  contractID,
			ServiceID:   sp.ServiceID,
			Name:        sp.Name,
			UnitPrice:   sp.UnitPrice,
			AppliedFrom: appliedFrom,
		}
	}

	return lines
}
