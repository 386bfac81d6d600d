package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PartyResponse represents a party in API responses.
type PartyResponse struct {
	ID             string          `json:"id"`
	DisplayName    string          `json:"display_name"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		Type:           string(p.Type),
		OpeningBalance: p.OpeningBalance,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// LedgerRowResponse represents one statement line.
type LedgerRowResponse struct {
	Date           string          `json:"date,omitempty"`
	Kind           string          `json:"kind"`
	Reference      string          `json:"reference,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// WarningResponse reports a record excluded during normalization.
type WarningResponse struct {
	SourceID string `json:"source_id"`
	Kind     string `json:"kind,omitempty"`
	Reason   string `json:"reason"`
}

// StatementResponse represents the itemized range ledger.
type StatementResponse struct {
	Party          *PartyResponse      `json:"party"`
	OpeningCarry   decimal.Decimal     `json:"opening_carry"`
	Rows           []LedgerRowResponse `json:"rows"`
	ClosingBalance decimal.Decimal     `json:"closing_balance"`
	Warnings       []WarningResponse   `json:"warnings,omitempty"`
}

// StatementFromResult converts a range result to a response.
func StatementFromResult(result *usecase.RangeResult) *StatementResponse {
	rows := make([]LedgerRowResponse, len(result.Rows))
	for i, row := range result.Rows {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.UTC().Format("2006-01-02")
		}
		rows[i] = LedgerRowResponse{
			Date:           date,
			Kind:           string(row.Kind),
			Reference:      row.SourceID,
			Amount:         row.Amount,
			RunningBalance: row.RunningBalance,
		}
	}

	warnings := make([]WarningResponse, len(result.Warnings))
	for i, w := range result.Warnings {
		warnings[i] = WarningResponse{
			SourceID: w.SourceID,
			Kind:     string(w.Kind),
			Reason:   w.Reason,
		}
	}

	return &StatementResponse{
		Party:          PartyFromDomain(result.Party),
		OpeningCarry:   result.OpeningCarry,
		Rows:           rows,
		ClosingBalance: result.ClosingBalance,
		Warnings:       warnings,
	}
}

// SummaryRowResponse represents one outstanding balance line.
type SummaryRowResponse struct {
	PartyID     string          `json:"party_id"`
	DisplayName string          `json:"display_name"`
	Balance     decimal.Decimal `json:"balance"`
	Degraded    bool            `json:"degraded,omitempty"`
}

// SummaryFromDomain converts summary rows to responses.
func SummaryFromDomain(rows []domain.SummaryRow) []SummaryRowResponse {
	result := make([]SummaryRowResponse, len(rows))
	for i, row := range rows {
		result[i] = SummaryRowResponse{
			PartyID:     row.PartyID,
			DisplayName: row.DisplayName,
			Balance:     row.Balance,
			Degraded:    row.Degraded,
		}
	}
	return result
}

// DocumentResponse wraps a stored raw document.
type DocumentResponse struct {
	Document domain.RawDoc `json:"document"`
}
