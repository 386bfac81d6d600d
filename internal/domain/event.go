package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind identifies the source of a ledger event.
type EventKind string

const (
	EventKindOpening  EventKind = "opening"
	EventKindInvoice  EventKind = "invoice"
	EventKindPurchase EventKind = "purchase"
	EventKindReceived EventKind = "received"
	EventKindPaid     EventKind = "paid"
)

// kindPriority orders same-date events deterministically. The opening
// event always sorts first.
func kindPriority(k EventKind) int {
	switch k {
	case EventKindOpening:
		return 0
	case EventKindInvoice:
		return 1
	case EventKindPurchase:
		return 2
	case EventKindReceived:
		return 3
	case EventKindPaid:
		return 4
	default:
		return 5
	}
}

// LedgerEvent is the canonical shape every raw financial record is
// normalized into. Amount is a non-negative magnitude for every kind
// except opening, which carries the signed opening balance; the sign
// convention is applied only by the reconciler.
type LedgerEvent struct {
	PartyID  string
	SourceID string
	Date     time.Time
	Kind     EventKind
	Amount   decimal.Decimal
}

// LedgerRow is a ledger event together with the cumulative balance
// immediately after applying it.
type LedgerRow struct {
	LedgerEvent

	RunningBalance decimal.Decimal
}

// NormalizationWarning reports a raw record that was excluded from a
// ledger because it could not be audited, typically an unparseable date.
type NormalizationWarning struct {
	SourceID string
	Kind     EventKind
	Reason   string
}

// SummaryRow is one line of the bulk outstanding-balance report.
type SummaryRow struct {
	PartyID     string
	DisplayName string
	Balance     decimal.Decimal
	Degraded    bool
}
