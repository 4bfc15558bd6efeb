package property

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/http/respond"
	"github.com/trungle-dev/renty/internal/property"
)

type Handler struct {
	svc *property.Service
}

func NewHandler(svc *property.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) BuildingRoutes(r chi.Router) {
	r.Post("/", h.createBuilding)
	r.Get("/{id}", h.getBuilding)
	r.Patch("/{id}/status", h.setBuildingStatus)
	r.Post("/{id}/floors", h.createFloor)
	r.Get("/{id}/floors", h.listFloors)
}

func (h *Handler) FloorRoutes(r chi.Router) {
	r.Get("/{id}/apartments", h.listApartments)
	r.Get("/{id}/next-room-number", h.nextRoomNumber)
}

func (h *Handler) ApartmentRoutes(r chi.Router) {
	r.Post("/", h.createApartment)
	r.Get("/{id}", h.getApartment)
	r.Patch("/{id}/maintenance", h.setApartmentMaintenance)
	r.Delete("/{id}", h.deleteApartment)
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

type createBuildingRequest struct {
	Name      string    `json:"name"`
	ManagerID uuid.UUID `json:"manager_id"`
}

func (h *Handler) createBuilding(w http.ResponseWriter, r *http.Request) {
	var req createBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.CreateBuilding(r.Context(), property.CreateBuildingParams{
		Name:      req.Name,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toBuildingResponse(b))
}

func (h *Handler) getBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.GetBuilding(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBuildingResponse(b))
}

type setStatusRequest struct {
	Status property.BuildingStatus `json:"status"`
}

func (h *Handler) setBuildingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.SetBuildingStatus(r.Context(), id, req.Status)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBuildingResponse(b))
}

type createFloorRequest struct {
	Number int `json:"number"`
}

func (h *Handler) createFloor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createFloorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.CreateFloor(r.Context(), id, req.Number)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toFloorResponse(f))
}

func (h *Handler) listFloors(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	floors, err := h.svc.ListFloors(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toFloorResponseList(floors))
}

type createApartmentRequest struct {
	FloorID    uuid.UUID `json:"floor_id"`
	RoomNumber string    `json:"room_number,omitempty"`
	Area       float64   `json:"area"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
}

func (h *Handler) createApartment(w http.ResponseWriter, r *http.Request) {
	var req createApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.CreateApartment(r.Context(), property.CreateApartmentParams{
		FloorID:    req.FloorID,
		RoomNumber: req.RoomNumber,
		Area:       req.Area,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toApartmentResponse(a))
}

func (h *Handler) getApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.GetApartment(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApartmentResponse(a))
}

func (h *Handler) listApartments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	apartments, err := h.svc.ListApartmentsByFloor(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApartmentResponseList(apartments))
}

type nextRoomNumberResponse struct {
	RoomNumber string `json:"room_number"`
}

func (h *Handler) nextRoomNumber(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	room, err := h.svc.NextRoomNumberForFloor(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, nextRoomNumberResponse{RoomNumber: room})
}

type setMaintenanceRequest struct {
	UnderMaintenance bool `json:"under_maintenance"`
}

func (h *Handler) setApartmentMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.SetApartmentMaintenance(r.Context(), id, req.UnderMaintenance)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApartmentResponse(a))
}

func (h *Handler) deleteApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteApartment(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
