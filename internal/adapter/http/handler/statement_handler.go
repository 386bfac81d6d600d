package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
	"github.com/iho/shopledger/internal/export"
	"github.com/iho/shopledger/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetRangeLedger(ctx context.Context, shopID, partyID string, from, to time.Time) (*usecase.RangeResult, error)
}

// StatementHandler serves itemized party statements.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get computes the statement for a party over a date range.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	from, err := parseDayQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDayQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}
	if from.IsZero() || to.IsZero() {
		writeError(w, http.StatusBadRequest, "missing date range", "from and to query parameters are required")
		return
	}

	result, err := h.statementUC.GetRangeLedger(r.Context(), middleware.ShopID(r.Context()), id, from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute statement", err.Error())
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="statement.csv"`)
		if err := export.WriteStatement(w, result); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export statement", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromResult(result))
}
