package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// PartyService defines the behavior needed by PartyHandler.
type PartyService interface {
	CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, shopID, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error)
	RecordInvoice(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error)
	RecordPurchase(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error)
	RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (domain.RawDoc, error)
}

// PartyHandler handles party-related HTTP requests.
type PartyHandler struct {
	partyUC PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyUC PartyService) *PartyHandler {
	return &PartyHandler{partyUC: partyUC}
}

// Create onboards a new customer or vendor.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	party, err := h.partyUC.CreateParty(r.Context(), usecase.CreatePartyInput{
		ShopID:         middleware.ShopID(r.Context()),
		DisplayName:    req.DisplayName,
		Type:           domain.PartyType(req.Type),
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create party", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// Get retrieves a party by ID.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	party, err := h.partyUC.GetParty(r.Context(), middleware.ShopID(r.Context()), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// List lists parties of one type.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	partyType, err := domain.ParsePartyType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party type", err.Error())
		return
	}

	parties, err := h.partyUC.ListParties(r.Context(), middleware.ShopID(r.Context()), partyType)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list parties", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartiesFromDomain(parties))
}

// RecordInvoice records a sale invoice against a party.
func (h *PartyHandler) RecordInvoice(w http.ResponseWriter, r *http.Request) {
	h.recordDocument(w, r, h.partyUC.RecordInvoice)
}

// RecordPurchase records a purchase against a party.
func (h *PartyHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	h.recordDocument(w, r, h.partyUC.RecordPurchase)
}

// RecordPayment records a money movement against a party.
func (h *PartyHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := parseDocumentDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	doc, err := h.partyUC.RecordPayment(r.Context(), usecase.RecordPaymentInput{
		RecordDocumentInput: usecase.RecordDocumentInput{
			ShopID:  middleware.ShopID(r.Context()),
			PartyID: id,
			Date:    date,
			Amount:  req.Amount,
		},
		Direction: domain.EventKind(req.Direction),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DocumentResponse{Document: doc})
}

type recordFunc func(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error)

func (h *PartyHandler) recordDocument(w http.ResponseWriter, r *http.Request, record recordFunc) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	var req dto.RecordDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := parseDocumentDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	doc, err := record(r.Context(), usecase.RecordDocumentInput{
		ShopID:  middleware.ShopID(r.Context()),
		PartyID: id,
		Date:    date,
		Amount:  req.Amount,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record document", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DocumentResponse{Document: doc})
}

// parseDocumentDate parses an ISO day, defaulting to today when empty.
func parseDocumentDate(val string) (time.Time, error) {
	if val == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", val)
}
