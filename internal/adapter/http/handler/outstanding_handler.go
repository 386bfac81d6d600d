package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/export"
)

// OutstandingService defines the behavior needed by OutstandingHandler.
type OutstandingService interface {
	GetOutstandingSummary(ctx context.Context, shopID string, partyType domain.PartyType, asOf time.Time) ([]domain.SummaryRow, error)
}

// OutstandingHandler serves outstanding balance summaries.
type OutstandingHandler struct {
	outstandingUC OutstandingService
}

// NewOutstandingHandler creates a new OutstandingHandler.
func NewOutstandingHandler(outstandingUC OutstandingService) *OutstandingHandler {
	return &OutstandingHandler{outstandingUC: outstandingUC}
}

// Get computes balances for all parties of one type as of a date.
func (h *OutstandingHandler) Get(w http.ResponseWriter, r *http.Request) {
	partyType, err := domain.ParsePartyType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party type", err.Error())
		return
	}

	asOf, err := parseDayQuery(r, "as_of")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	rows, err := h.outstandingUC.GetOutstandingSummary(r.Context(), middleware.ShopID(r.Context()), partyType, asOf)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute summary", err.Error())
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="outstanding.csv"`)
		if err := export.WriteSummary(w, rows); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export summary", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(rows))
}
