package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
)

// StatementUseCase produces the date-bounded itemized ledger for one party.
type StatementUseCase struct {
	store   LedgerStore
	metrics *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(store LedgerStore, m *metrics.Metrics) *StatementUseCase {
	return &StatementUseCase{
		store:   store,
		metrics: m,
	}
}

// RangeResult is the itemized statement for one party over a date window.
type RangeResult struct {
	Party          *domain.Party
	Rows           []domain.LedgerRow
	OpeningCarry   decimal.Decimal
	ClosingBalance decimal.Decimal
	Warnings       []domain.NormalizationWarning
}

// GetRangeLedger returns the ledger rows for the window [from, to] with a
// running balance that continues from the party's full history. The
// opening carry is the balance immediately before the window: the static
// opening balance plus every event dated strictly before from. The
// windowed view therefore always agrees with the bulk as-of figure for
// the same date.
func (uc *StatementUseCase) GetRangeLedger(ctx context.Context, shopID, partyID string, from, to time.Time) (*RangeResult, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	start := time.Now()

	party, err := uc.store.GetParty(ctx, shopID, partyID)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.store.FetchInvoices(ctx, shopID, partyID)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.store.FetchPurchases(ctx, shopID, partyID)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.store.FetchTransactions(ctx, shopID, partyID)
	if err != nil {
		return nil, err
	}

	events, warnings := domain.Normalize(party.OpeningBalance, invoices, purchases, transactions)

	allRows, err := domain.Reconcile(party.Type, events)
	if err != nil {
		return nil, err
	}

	carry := domain.BalanceBefore(party.OpeningBalance, allRows, from)

	// The window covers whole days: an event timestamped anywhere inside
	// the to day still belongs to the statement.
	end := domain.StartOfNextDay(to)

	windowed := make([]domain.LedgerRow, 0, len(allRows))
	for _, row := range allRows {
		if row.Date.Before(from) || !row.Date.Before(end) {
			continue
		}
		windowed = append(windowed, row)
	}

	closing := carry
	if len(windowed) > 0 {
		closing = windowed[len(windowed)-1].RunningBalance
	}

	if uc.metrics != nil {
		uc.metrics.StatementsComputed.Inc()
		uc.metrics.StatementDuration.Observe(time.Since(start).Seconds())
		uc.metrics.NormalizationWarnings.Add(float64(len(warnings)))
	}

	return &RangeResult{
		Party:          party,
		Rows:           windowed,
		OpeningCarry:   carry,
		ClosingBalance: closing,
		Warnings:       warnings,
	}, nil
}
