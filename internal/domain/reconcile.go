package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Reconcile orders events chronologically and folds them into running
// balances under the sign convention for the given party type.
//
// Events are sorted by (date, kind priority); same-date ties of the same
// kind keep their input order. The opening event, which carries a zero
// date and the lowest kind priority, always lands first. The function is
// pure: the input slice is not modified and identical input yields an
// identical output sequence.
func Reconcile(partyType PartyType, events []LedgerEvent) ([]LedgerRow, error) {
	sorted := make([]LedgerEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return kindPriority(sorted[i].Kind) < kindPriority(sorted[j].Kind)
	})

	rows := make([]LedgerRow, 0, len(sorted))
	balance := decimal.Zero

	for _, ev := range sorted {
		next, err := ApplyEvent(partyType, balance, ev)
		if err != nil {
			return nil, err
		}
		balance = next

		rows = append(rows, LedgerRow{
			LedgerEvent:    ev,
			RunningBalance: balance,
		})
	}

	return rows, nil
}

// BalanceBefore returns the running balance immediately before the cutoff
// instant, given reconciled rows and the party's opening balance. Rows
// dated strictly before cutoff contribute; with no such rows the opening
// balance alone stands.
func BalanceBefore(openingBalance decimal.Decimal, rows []LedgerRow, cutoff time.Time) decimal.Decimal {
	balance := openingBalance
	for _, row := range rows {
		if !row.Date.Before(cutoff) {
			break
		}
		balance = row.RunningBalance
	}
	return balance
}
