package billing

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/renty/internal/billing"
	"github.com/trungle-dev/renty/internal/http/respond"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Post("/{id}/pay", h.markPaid)
	r.Post("/{id}/cancel", h.cancel)
	r.Get("/contract/{id}", h.listByContract)
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

type selectionDTO struct {
	Label     string          `json:"label"`
	UnitPrice int64           `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type generateRequest struct {
	ContractID  uuid.UUID      `json:"contract_id"`
	Month       int            `json:"month"`
	Year        int            `json:"year"`
	IncludeRent bool           `json:"include_rent"`
	DebtAmount  int64          `json:"debt_amount"`
	Selections  []selectionDTO `json:"selections,omitempty"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selections := make([]billing.Selection, len(req.Selections))
	for i, s := range req.Selections {
		selections[i] = billing.Selection{
			Label:     s.Label,
			UnitPrice: s.UnitPrice,
			Quantity:  s.Quantity,
		}
	}

	inv, err := h.svc.Generate(r.Context(), billing.GenerateParams{
		ContractID:  req.ContractID,
		Month:       req.Month,
		Year:        req.Year,
		IncludeRent: req.IncludeRent,
		DebtAmount:  req.DebtAmount,
		Selections:  selections,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

type markPaidRequest struct {
	PaymentDate time.Time `json:"payment_date"`
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req markPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	when := req.PaymentDate
	if when.IsZero() {
		when = time.Now()
	}

	inv, err := h.svc.MarkPaid(r.Context(), id, when)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) listByContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	invoices, err := h.svc.ListByContract(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invoices))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "month query parameter is required", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year query parameter is required", http.StatusBadRequest)
		return
	}

	sum, err := h.svc.Summary(r.Context(), month, year)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSummaryResponse(sum))
}
