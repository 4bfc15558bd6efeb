package property

import (
	"time"

	"github.com/google/uuid"
)

// BuildingStatus is the operator-controlled state of a building.
type BuildingStatus string

const (
	BuildingActive      BuildingStatus = "active"
	BuildingMaintenance BuildingStatus = "maintenance"
	BuildingInactive    BuildingStatus = "inactive"
)

// FloorStatus mirrors the building status when a cascade runs.
type FloorStatus string

const (
	FloorActive      FloorStatus = "active"
	FloorMaintenance FloorStatus = "maintenance"
)

// ApartmentStatus is the stored availability signal of an apartment.
// It is never corrupted by an ancestor going under maintenance; see
// Apartment.EffectiveStatus for the read-side overlay.
type ApartmentStatus string

const (
	ApartmentAvailable   ApartmentStatus = "available"
	ApartmentRented      ApartmentStatus = "rented"
	ApartmentOwned       ApartmentStatus = "owned"
	ApartmentMaintenance ApartmentStatus = "maintenance"
)

// MaintenanceCause records why an apartment is under maintenance, so
// that reversing a building cascade releases only the apartments the
// cascade itself took down.
type MaintenanceCause string

const (
	CauseNone     MaintenanceCause = "none"
	CauseOperator MaintenanceCause = "operator"
	CauseCascade  MaintenanceCause = "cascade"
)

type Building struct {
	ID        uuid.UUID
	Name      string
	Status    BuildingStatus
	ManagerID uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Floor struct {
	ID         uuid.UUID
	BuildingID uuid.UUID
	Number     int
	Status     FloorStatus
	CreatedAt  time.Time
}

type Apartment struct {
	ID               uuid.UUID
	FloorID          uuid.UUID
	RoomNumber       string
	Area             float64
	Bedrooms         int
	Bathrooms        int
	Status           ApartmentStatus
	MaintenanceCause MaintenanceCause
	Version          int64

	// UnderOverlay is true when the floor or building is under
	// maintenance. Loaded via JOIN, never stored on the row.
	UnderOverlay bool

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// EffectiveStatus is what a caller should display: the stored status,
// overridden to maintenance while any ancestor is under maintenance.
func (a *Apartment) EffectiveStatus() ApartmentStatus {
	if a.UnderOverlay {
		return ApartmentMaintenance
	}

	return a.Status
}
