package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePartyRequest represents the payload for onboarding a party.
type CreatePartyRequest struct {
	DisplayName    string          `json:"display_name"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// RecordDocumentRequest represents the payload for recording an invoice
// or purchase. Date is an ISO day (YYYY-MM-DD); empty means today.
type RecordDocumentRequest struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RecordPaymentRequest represents the payload for recording a payment.
type RecordPaymentRequest struct {
	RecordDocumentRequest

	Direction string `json:"direction"` // received or paid
}
