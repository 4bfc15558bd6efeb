package contract

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/contract"
	"github.com/trungle-dev/renty/internal/http/respond"
)

type Handler struct {
	svc *contract.Service
}

func NewHandler(svc *contract.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/expiring", h.listExpiring)
	r.Get("/{id}", h.get)
	r.Post("/{id}/renew", h.renew)
	r.Post("/{id}/terminate", h.terminate)
	r.Post("/{id}/cancel", h.cancel)
	r.Put("/{id}/services", h.replaceServices)
	r.Get("/{id}/services", h.listServices)
	r.Get("/{id}/history", h.listHistory)
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

type serviceDTO struct {
	ServiceID uuid.UUID `json:"service_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
}

func toServiceParams(dtos []serviceDTO) []contract.ServiceParams {
	params := make([]contract.ServiceParams, len(dtos))
	for i, d := range dtos {
		params[i] = contract.ServiceParams{
			ServiceID: d.ServiceID,
			Name:      d.Name,
			UnitPrice: d.UnitPrice,
		}
	}

	return params
}

type createContractRequest struct {
	ApartmentID uuid.UUID     `json:"apartment_id"`
	ResidentID  uuid.UUID     `json:"resident_id"`
	Type        contract.Type `json:"type"`
	SignedDate  time.Time     `json:"signed_date"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	MonthlyRent int64         `json:"monthly_rent"`
	Deposit     int64         `json:"deposit"`
	Services    []serviceDTO  `json:"services,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), contract.CreateParams{
		ApartmentID: req.ApartmentID,
		ResidentID:  req.ResidentID,
		Type:        req.Type,
		SignedDate:  req.SignedDate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	}, toServiceParams(req.Services))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c, time.Now()))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c, time.Now()))
}

type renewRequest struct {
	NewEndDate  time.Time `json:"new_end_date"`
	MonthlyRent *int64    `json:"monthly_rent,omitempty"`
}

func (h *Handler) renew(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req renewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Renew(r.Context(), id, req.NewEndDate, req.MonthlyRent)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c, time.Now()))
}

type terminateRequest struct {
	TerminationDate time.Time `json:"termination_date"`
	RefundAmount    int64     `json:"refund_amount"`
	Reason          string    `json:"reason"`
}

func (h *Handler) terminate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req terminateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	when := req.TerminationDate
	if when.IsZero() {
		when = time.Now()
	}

	c, err := h.svc.Terminate(r.Context(), id, when, req.RefundAmount, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c, time.Now()))
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c, time.Now()))
}

type replaceServicesRequest struct {
	Services []serviceDTO `json:"services"`
}

func (h *Handler) replaceServices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req replaceServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ReplaceServices(r.Context(), id, toServiceParams(req.Services)); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	lines, err := h.svc.ListServices(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toServiceLineResponseList(lines))
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.ListHistory(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toHistoryResponseList(entries))
}

func (h *Handler) listExpiring(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListExpiring(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(cs, time.Now()))
}
