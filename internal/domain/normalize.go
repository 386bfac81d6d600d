package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawDoc is a financial record as stored: a loosely-typed document whose
// field names and date encodings vary by source and by age of the data.
type RawDoc map[string]any

// docAdapter maps one raw document source onto the canonical event shape.
// Field candidates are tried in order; the first present wins.
type docAdapter struct {
	kind         EventKind
	amountFields []string
	dateFields   []string
}

var (
	invoiceAdapter = docAdapter{
		kind:         EventKindInvoice,
		amountFields: []string{"totalAmount", "total", "amount"},
		dateFields:   []string{"date", "createdAt"},
	}
	purchaseAdapter = docAdapter{
		kind:         EventKindPurchase,
		amountFields: []string{"totalAmount", "total", "amount"},
		dateFields:   []string{"date", "createdAt"},
	}
	transactionAdapter = docAdapter{
		kind:         "", // resolved per document from its direction field
		amountFields: []string{"amount", "total"},
		dateFields:   []string{"date", "createdAt"},
	}
)

// Normalize converts raw invoice, purchase and payment documents for one
// party into canonical ledger events. A nonzero opening balance yields a
// single opening event dated at the zero time so it precedes everything.
// Soft-deleted documents are skipped silently; documents whose date or
// amount cannot be resolved are skipped with a warning so callers can
// surface them instead of silently losing records.
func Normalize(
	openingBalance decimal.Decimal,
	invoices, purchases, transactions []RawDoc,
) ([]LedgerEvent, []NormalizationWarning) {
	events := make([]LedgerEvent, 0, 1+len(invoices)+len(purchases)+len(transactions))
	var warnings []NormalizationWarning

	if !openingBalance.IsZero() {
		events = append(events, LedgerEvent{
			Kind:   EventKindOpening,
			Amount: openingBalance,
		})
	}

	for _, doc := range invoices {
		events, warnings = appendDoc(events, warnings, doc, invoiceAdapter)
	}
	for _, doc := range purchases {
		events, warnings = appendDoc(events, warnings, doc, purchaseAdapter)
	}
	for _, doc := range transactions {
		adapter := transactionAdapter
		kind, err := transactionKind(doc)
		if err != nil {
			warnings = append(warnings, NormalizationWarning{
				SourceID: docID(doc),
				Reason:   err.Error(),
			})
			continue
		}
		adapter.kind = kind
		events, warnings = appendDoc(events, warnings, doc, adapter)
	}

	return events, warnings
}

func appendDoc(
	events []LedgerEvent,
	warnings []NormalizationWarning,
	doc RawDoc,
	adapter docAdapter,
) ([]LedgerEvent, []NormalizationWarning) {
	if deleted, _ := doc["deleted"].(bool); deleted {
		return events, warnings
	}

	date, err := resolveDate(doc, adapter.dateFields)
	if err != nil {
		warnings = append(warnings, NormalizationWarning{
			SourceID: docID(doc),
			Kind:     adapter.kind,
			Reason:   err.Error(),
		})
		return events, warnings
	}

	amount, err := resolveAmount(doc, adapter.amountFields)
	if err != nil {
		warnings = append(warnings, NormalizationWarning{
			SourceID: docID(doc),
			Kind:     adapter.kind,
			Reason:   err.Error(),
		})
		return events, warnings
	}

	events = append(events, LedgerEvent{
		SourceID: docID(doc),
		Date:     date,
		Kind:     adapter.kind,
		Amount:   amount.Abs(),
	})

	return events, warnings
}

func resolveDate(doc RawDoc, fields []string) (time.Time, error) {
	for _, field := range fields {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		return ParseDate(v)
	}
	return time.Time{}, fmt.Errorf("%w: no date field among %s", ErrUnparseableDate, strings.Join(fields, ", "))
}

func resolveAmount(doc RawDoc, fields []string) (decimal.Decimal, error) {
	for _, field := range fields {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		return parseAmount(v)
	}
	return decimal.Zero, fmt.Errorf("%w: no amount field among %s", ErrInvalidAmount, strings.Join(fields, ", "))
}

func parseAmount(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case string:
		d, err := decimal.NewFromString(a)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, a)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(a.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, a.String())
		}
		return d, nil
	case decimal.Decimal:
		return a, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

// transactionKind resolves a payment document's direction. Older records
// use a "type" field with the same values.
func transactionKind(doc RawDoc) (EventKind, error) {
	for _, field := range []string{"direction", "type"} {
		v, ok := doc[field].(string)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "received":
			return EventKindReceived, nil
		case "paid":
			return EventKindPaid, nil
		}
	}
	return "", fmt.Errorf("%w: transaction has no usable direction", ErrUnknownEventKind)
}

func docID(doc RawDoc) string {
	if id, ok := doc["id"].(string); ok {
		return id
	}
	return ""
}
