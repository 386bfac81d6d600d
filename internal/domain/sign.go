package domain

import "github.com/shopspring/decimal"

// balanceEffect is the adjustment a ledger event makes to a running balance.
type balanceEffect int

const (
	effectSet balanceEffect = iota // balance = amount (opening, signed)
	effectAdd                      // balance += amount
	effectSub                      // balance -= amount
)

// signTable is the single source of truth for how an event kind moves a
// party's balance. A positive balance means the party owes the shop
// (customers) or the shop owes the party (vendors). Payments received
// from a customer reduce what they owe; payments made to a vendor reduce
// what the shop owes. The cross cases (a customer the shop pays, a vendor
// the shop receives from) increase the outstanding amount again, which is
// how refunds and advances net out.
var signTable = map[PartyType]map[EventKind]balanceEffect{
	PartyTypeCustomer: {
		EventKindOpening:  effectSet,
		EventKindInvoice:  effectAdd,
		EventKindPurchase: effectAdd,
		EventKindReceived: effectSub,
		EventKindPaid:     effectAdd,
	},
	PartyTypeVendor: {
		EventKindOpening:  effectSet,
		EventKindInvoice:  effectAdd,
		EventKindPurchase: effectAdd,
		EventKindPaid:     effectSub,
		EventKindReceived: effectAdd,
	},
}

// ApplyEvent returns the balance after applying one event under the sign
// convention for the given party type.
func ApplyEvent(partyType PartyType, balance decimal.Decimal, ev LedgerEvent) (decimal.Decimal, error) {
	effects, ok := signTable[partyType]
	if !ok {
		return decimal.Zero, ErrInvalidPartyType
	}

	effect, ok := effects[ev.Kind]
	if !ok {
		return decimal.Zero, ErrUnknownEventKind
	}

	switch effect {
	case effectSet:
		return ev.Amount, nil
	case effectAdd:
		return balance.Add(ev.Amount), nil
	case effectSub:
		return balance.Sub(ev.Amount), nil
	default:
		return decimal.Zero, ErrUnknownEventKind
	}
}
