package contract

import (
	"time"

	"github.com/google/uuid"
)

// Type distinguishes rentals from purchases.
type Type string

const (
	TypeRental    Type = "rental"
	TypeOwnership Type = "ownership"
)

// Status is the stored lifecycle state. Only the terminal states are
// ever written by an operator action; the temporal states are derived
// by Classify and never persisted.
type Status string

const (
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
	StatusCancelled  Status = "cancelled"
)

// Contract binds a resident to an apartment. Ownership contracts never
// carry start or end dates; a rental with a nil end date runs
// indefinitely.
type Contract struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	ResidentID  uuid.UUID
	Type        Type
	Status      Status
	SignedDate  time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	MonthlyRent int64 // whole đồng; the purchase price for ownership
	Deposit     int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// ServiceLine is a recurring service activated for a contract, with
// the unit price snapshotted at activation time.
type ServiceLine struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	ServiceID   uuid.UUID
	Name        string
	UnitPrice   int64
	AppliedFrom time.Time
}

// Action labels an audit history entry.
type Action string

const (
	ActionCreated    Action = "created"
	ActionRenewed    Action = "renewed"
	ActionTerminated Action = "terminated"
	ActionCancelled  Action = "cancelled"
)

// HistoryEntry is an append-only audit record replacing the free-text
// note concatenation the desktop app used.
type HistoryEntry struct {
	ID           uuid.UUID
	ContractID   uuid.UUID
	Action       Action
	ActorName    string
	RefundAmount int64
	Reason       string
	OccurredAt   time.Time
}
