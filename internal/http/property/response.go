package property

import (
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/property"
)

type buildingResponse struct {
	ID        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	Status    property.BuildingStatus `json:"status"`
	ManagerID uuid.UUID               `json:"manager_id"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt *time.Time              `json:"updated_at,omitempty"`
}

func toBuildingResponse(b *property.Building) buildingResponse {
	return buildingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Status:    b.Status,
		ManagerID: b.ManagerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type floorResponse struct {
	ID         uuid.UUID            `json:"id"`
	BuildingID uuid.UUID            `json:"building_id"`
	Number     int                  `json:"number"`
	Status     property.FloorStatus `json:"status"`
}

func toFloorResponse(f *property.Floor) floorResponse {
	return floorResponse{
		ID:         f.ID,
		BuildingID: f.BuildingID,
		Number:     f.Number,
		Status:     f.Status,
	}
}

func toFloorResponseList(floors []*property.Floor) []floorResponse {
	resp := make([]floorResponse, len(floors))
	for i, f := range floors {
		resp[i] = toFloorResponse(f)
	}

	return resp
}

type apartmentResponse struct {
	ID         uuid.UUID `json:"id"`
	FloorID    uuid.UUID `json:"floor_id"`
	RoomNumber string    `json:"room_number"`
	Area       float64   `json:"area"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`

	// Status is the effective status: the stored one overridden while
	// an ancestor is under maintenance.
	Status           property.ApartmentStatus  `json:"status"`
	StoredStatus     property.ApartmentStatus  `json:"stored_status"`
	MaintenanceCause property.MaintenanceCause `json:"maintenance_cause"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toApartmentResponse(a *property.Apartment) apartmentResponse {
	return apartmentResponse{
		ID:               a.ID,
		FloorID:          a.FloorID,
		RoomNumber:       a.RoomNumber,
		Area:             a.Area,
		Bedrooms:         a.Bedrooms,
		Bathrooms:        a.Bathrooms,
		Status:           a.EffectiveStatus(),
		StoredStatus:     a.Status,
		MaintenanceCause: a.MaintenanceCause,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toApartmentResponseList(apartments []*property.Apartment) []apartmentResponse {
	resp := make([]apartmentResponse, len(apartments))
	for i, a := range apartments {
		resp[i] = toApartmentResponse(a)
	}

	return resp
}
