package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=property
type Repository interface {
	CreateBuilding(ctx context.Context, b *Building) error
	GetBuilding(ctx context.Context, id uuid.UUID) (*Building, error)

	CreateFloor(ctx context.Context, f *Floor) error
	GetFloor(ctx context.Context, id uuid.UUID) (*Floor, error)
	GetFloorByNumber(ctx context.Context, buildingID uuid.UUID, number int) (*Floor, error)
	ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*Floor, error)

	CreateApartment(ctx context.Context, a *Apartment) error
	GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	ListApartmentsByFloor(ctx context.Context, floorID uuid.UUID) ([]*Apartment, error)
	ListRoomNumbers(ctx context.Context, floorID uuid.UUID) ([]string, error)
	UpdateApartmentStatus(ctx context.Context, id uuid.UUID, status ApartmentStatus, cause MaintenanceCause) error
	DeleteApartment(ctx context.Context, id uuid.UUID) error

	BeginCascade(ctx context.Context, buildingID uuid.UUID) (CascadeTx, error)
	BeginSeed(ctx context.Context, buildingID uuid.UUID) (SeedTx, error)
}

// CascadeTx applies a building status change and its descendant
// updates as one atomic unit, under a lock scoped to the building.
type CascadeTx interface {
	SetBuildingStatus(ctx context.Context, status BuildingStatus) error
	SetFloorStatuses(ctx context.Context, status FloorStatus) error

	// MarkAvailableUnderMaintenance moves every AVAILABLE apartment of
	// the building to MAINTENANCE with the cascade cause. Rented and
	// owned apartments keep their stored status.
	MarkAvailableUnderMaintenance(ctx context.Context) error

	// ReleaseCascaded restores apartments whose maintenance was caused
	// by a cascade back to AVAILABLE. Operator-flagged apartments stay.
	ReleaseCascaded(ctx context.Context) error

	Commit() error
	Rollback() error
}

// SeedTx inserts a batch of floors and apartments atomically.
type SeedTx interface {
	CreateFloor(ctx context.Context, f *Floor) error
	CreateApartments(ctx context.Context, as []*Apartment) error
	Commit() error
	Rollback() error
}

// ContractGuard answers whether non-terminated contracts exist below a
// building or on an apartment. Implemented by the contract service so
// that classification stays in one place.
type ContractGuard interface {
	BuildingHasBlocking(ctx context.Context, buildingID uuid.UUID, now time.Time) (bool, error)
	ApartmentHasBlocking(ctx context.Context, apartmentID uuid.UUID, now time.Time) (bool, error)
}

type Service struct {
	repo      Repository
	contracts ContractGuard
	now       func() time.Time
}

func NewService(repo Repository, contracts ContractGuard) *Service {
	return &Service{repo: repo, contracts: contracts, now: time.Now}
}

type CreateBuildingParams struct {
	Name      string
	ManagerID uuid.UUID
}

func (s *Service) CreateBuilding(ctx context.Context, params CreateBuildingParams) (*Building, error) {
	if params.Name == "" {
		return nil, apperr.Validation("building name is required")
	}

	b := &Building{
		Name:      params.Name,
		Status:    BuildingActive,
		ManagerID: params.ManagerID,
	}
	if err := s.repo.CreateBuilding(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) GetBuilding(ctx context.Context, id uuid.UUID) (*Building, error) {
	return s.repo.GetBuilding(ctx, id)
}

func (s *Service) CreateFloor(ctx context.Context, buildingID uuid.UUID, number int) (*Floor, error) {
	if number < 1 {
		return nil, apperr.Validation("floor number must be positive, got %d", number)
	}

	if _, err := s.repo.GetBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	f := &Floor{
		BuildingID: buildingID,
		Number:     number,
		Status:     FloorActive,
	}
	if err := s.repo.CreateFloor(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*Floor, error) {
	return s.repo.ListFloors(ctx, buildingID)
}

type CreateApartmentParams struct {
	FloorID    uuid.UUID
	RoomNumber string // empty means derive from the floor's rooms
	Area       float64
	Bedrooms   int
	Bathrooms  int
}

func (s *Service) CreateApartment(ctx context.Context, params CreateApartmentParams) (*Apartment, error) {
	if params.Area <= 0 {
		return nil, apperr.Validation("apartment area must be positive, got %v", params.Area)
	}

	if params.Bedrooms < 0 || params.Bathrooms < 0 {
		return nil, apperr.Validation("room counts must not be negative")
	}

	floor, err := s.repo.GetFloor(ctx, params.FloorID)
	if err != nil {
		return nil, err
	}

	room := params.RoomNumber
	if room == "" {
		room, err = s.nextRoomOnFloor(ctx, floor)
		if err != nil {
			return nil, err
		}
	}

	a := &Apartment{
		FloorID:          floor.ID,
		RoomNumber:       room,
		Area:             params.Area,
		Bedrooms:         params.Bedrooms,
		Bathrooms:        params.Bathrooms,
		Status:           ApartmentAvailable,
		MaintenanceCause: CauseNone,
	}
	if err := s.repo.CreateApartment(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	return s.repo.GetApartment(ctx, id)
}

func (s *Service) ListApartmentsByFloor(ctx context.Context, floorID uuid.UUID) ([]*Apartment, error) {
	return s.repo.ListApartmentsByFloor(ctx, floorID)
}

// NextRoomNumberForFloor is the UI-assist variant of NextRoomNumber
// working from the floor's persisted rooms.
func (s *Service) NextRoomNumberForFloor(ctx context.Context, floorID uuid.UUID) (string, error) {
	floor, err := s.repo.GetFloor(ctx, floorID)
	if err != nil {
		return "", err
	}

	return s.nextRoomOnFloor(ctx, floor)
}

func (s *Service) nextRoomOnFloor(ctx context.Context, floor *Floor) (string, error) {
	rooms, err := s.repo.ListRoomNumbers(ctx, floor.ID)
	if err != nil {
		return "", fmt.Errorf("listing room numbers: %w", err)
	}

	return NextRoomNumber(floor.Number, rooms), nil
}

// SetBuildingStatus changes a building's status and cascades the
// change to its floors and apartments in one transaction.
//
// MAINTENANCE and INACTIVE are blocked while any apartment below the
// building holds an active contract. Returning to ACTIVE releases the
// floors and exactly the apartments the original cascade took down.
func (s *Service) SetBuildingStatus(ctx context.Context, buildingID uuid.UUID, status BuildingStatus) (*Building, error) {
	switch status {
	case BuildingActive, BuildingMaintenance, BuildingInactive:
	default:
		return nil, apperr.Validation("unknown building status %q", status)
	}

	b, err := s.repo.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	if b.Status == status {
		return b, nil
	}

	if status == BuildingMaintenance || status == BuildingInactive {
		blocked, err := s.contracts.BuildingHasBlocking(ctx, buildingID, s.now())
		if err != nil {
			return nil, fmt.Errorf("checking contracts: %w", err)
		}

		if blocked {
			return nil, apperr.Conflict("building %s has active contracts", buildingID)
		}
	}

	tx, err := s.repo.BeginCascade(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("begin cascade: %w", err)
	}
	defer tx.Rollback()

	if err := tx.SetBuildingStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("set building status: %w", err)
	}

	switch status {
	case BuildingMaintenance:
		if err := tx.SetFloorStatuses(ctx, FloorMaintenance); err != nil {
			return nil, fmt.Errorf("set floor statuses: %w", err)
		}

		if err := tx.MarkAvailableUnderMaintenance(ctx); err != nil {
			return nil, fmt.Errorf("mark apartments: %w", err)
		}
	case BuildingActive:
		if err := tx.SetFloorStatuses(ctx, FloorActive); err != nil {
			return nil, fmt.Errorf("set floor statuses: %w", err)
		}

		if err := tx.ReleaseCascaded(ctx); err != nil {
			return nil, fmt.Errorf("release apartments: %w", err)
		}
	case BuildingInactive:
		// No descendant updates; the overlay reports the building state.
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cascade: %w", err)
	}

	b.Status = status

	return b, nil
}

// SetApartmentMaintenance flags or clears operator-initiated
// maintenance on a single apartment.
func (s *Service) SetApartmentMaintenance(ctx context.Context, id uuid.UUID, underMaintenance bool) (*Apartment, error) {
	a, err := s.repo.GetApartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if underMaintenance {
		if a.Status != ApartmentAvailable {
			return nil, apperr.InvalidOperation("apartment %s is %s, only available apartments can enter maintenance", id, a.Status)
		}

		if err := s.repo.UpdateApartmentStatus(ctx, id, ApartmentMaintenance, CauseOperator); err != nil {
			return nil, err
		}

		a.Status = ApartmentMaintenance
		a.MaintenanceCause = CauseOperator

		return a, nil
	}

	if a.Status != ApartmentMaintenance || a.MaintenanceCause != CauseOperator {
		return nil, apperr.InvalidOperation("apartment %s is not under operator maintenance", id)
	}

	if err := s.repo.UpdateApartmentStatus(ctx, id, ApartmentAvailable, CauseNone); err != nil {
		return nil, err
	}

	a.Status = ApartmentAvailable
	a.MaintenanceCause = CauseNone

	return a, nil
}

// DeleteApartment soft-deletes an apartment. Blocked while any of its
// contracts is not terminated, whatever the stored apartment status
// says.
func (s *Service) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetApartment(ctx, id); err != nil {
		return err
	}

	blocked, err := s.contracts.ApartmentHasBlocking(ctx, id, s.now())
	if err != nil {
		return fmt.Errorf("checking contracts: %w", err)
	}

	if blocked {
		return apperr.Conflict("apartment %s has a non-terminated contract", id)
	}

	return s.repo.DeleteApartment(ctx, id)
}

// SeedApartment is one row of a bulk roster import.
type SeedApartment struct {
	FloorNumber int
	RoomNumber  string // empty means derive
	Area        float64
	Bedrooms    int
	Bathrooms   int
}

// SeedApartments bulk-creates apartments (and any missing floors) for
// a building, deriving blank room numbers per floor. All rows are
// inserted in a single transaction.
func (s *Service) SeedApartments(ctx context.Context, buildingID uuid.UUID, rows []SeedApartment) ([]*Apartment, error) {
	if len(rows) == 0 {
		return nil, apperr.Validation("roster is empty")
	}

	for i, row := range rows {
		if row.FloorNumber < 1 {
			return nil, apperr.Validation("row %d: floor number must be positive", i+1)
		}

		if row.Area <= 0 {
			return nil, apperr.Validation("row %d: area must be positive", i+1)
		}

		if row.Bedrooms < 0 || row.Bathrooms < 0 {
			return nil, apperr.Validation("row %d: room counts must not be negative", i+1)
		}
	}

	b, err := s.repo.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	if b.Status != BuildingActive {
		return nil, apperr.Conflict("building %s is %s, seeding requires an active building", buildingID, b.Status)
	}

	type floorPlan struct {
		floor   *Floor
		missing bool
		rooms   map[string]struct{}
	}

	plans := make(map[int]*floorPlan)

	for _, row := range rows {
		if _, ok := plans[row.FloorNumber]; ok {
			continue
		}

		plan := &floorPlan{rooms: make(map[string]struct{})}

		floor, err := s.repo.GetFloorByNumber(ctx, buildingID, row.FloorNumber)
		switch {
		case err == nil:
			plan.floor = floor

			rooms, err := s.repo.ListRoomNumbers(ctx, floor.ID)
			if err != nil {
				return nil, fmt.Errorf("listing room numbers: %w", err)
			}

			for _, r := range rooms {
				plan.rooms[r] = struct{}{}
			}
		case errors.Is(err, apperr.ErrNotFound):
			plan.floor = &Floor{
				BuildingID: buildingID,
				Number:     row.FloorNumber,
				Status:     FloorActive,
			}
			plan.missing = true
		default:
			return nil, err
		}

		plans[row.FloorNumber] = plan
	}

	var apartments []*Apartment

	for i, row := range rows {
		plan := plans[row.FloorNumber]

		room := row.RoomNumber
		if room == "" {
			room = NextRoomNumber(row.FloorNumber, roomKeys(plan.rooms))
		}

		if _, dup := plan.rooms[room]; dup {
			return nil, apperr.Conflict("row %d: room %s already exists on floor %d", i+1, room, row.FloorNumber)
		}

		plan.rooms[room] = struct{}{}

		apartments = append(apartments, &Apartment{
			FloorID:          plan.floor.ID,
			RoomNumber:       room,
			Area:             row.Area,
			Bedrooms:         row.Bedrooms,
			Bathrooms:        row.Bathrooms,
			Status:           ApartmentAvailable,
			MaintenanceCause: CauseNone,
		})
	}

	tx, err := s.repo.BeginSeed(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, plan := range plans {
		if !plan.missing {
			continue
		}

		if err := tx.CreateFloor(ctx, plan.floor); err != nil {
			return nil, fmt.Errorf("creating floor %d: %w", plan.floor.Number, err)
		}
	}

	// Floor ids are assigned on insert; stitch them onto the rows that
	// referenced a floor created in this batch.
	for i, row := range rows {
		apartments[i].FloorID = plans[row.FloorNumber].floor.ID
	}

	if err := tx.CreateApartments(ctx, apartments); err != nil {
		return nil, fmt.Errorf("creating apartments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed: %w", err)
	}

	return apartments, nil
}

func roomKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	return keys
}
