package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/http/respond"
	"github.com/trungle-dev/renty/internal/importer"
	"github.com/trungle-dev/renty/internal/property"
)

type Handler struct {
	importSvc   *importer.Service
	propertySvc *property.Service
}

func NewHandler(importSvc *importer.Service, propertySvc *property.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		propertySvc: propertySvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importRoster)
}

type apartmentDTO struct {
	ID         uuid.UUID `json:"id"`
	FloorID    uuid.UUID `json:"floor_id"`
	RoomNumber string    `json:"room_number"`
	Area       float64   `json:"area"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
}

type importSuccessResponse struct {
	Imported   int            `json:"imported"`
	Apartments []apartmentDTO `json:"apartments"`
}

func (h *Handler) importRoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	buildingID, err := uuid.Parse(r.FormValue("building_id"))
	if err != nil {
		http.Error(w, "building_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(importer.FormatRoster, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	apartments, err := h.propertySvc.SeedApartments(r.Context(), buildingID, rows)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSuccessResponse(apartments))
}

func toSuccessResponse(apartments []*property.Apartment) importSuccessResponse {
	dtos := make([]apartmentDTO, 0, len(apartments))
	for _, a := range apartments {
		dtos = append(dtos, apartmentDTO{
			ID:         a.ID,
			FloorID:    a.FloorID,
			RoomNumber: a.RoomNumber,
			Area:       a.Area,
			Bedrooms:   a.Bedrooms,
			Bathrooms:  a.Bathrooms,
		})
	}

	return importSuccessResponse{
		Imported:   len(dtos),
		Apartments: dtos,
	}
}
