package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two sides of the shop's books.
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeVendor   PartyType = "vendor"
)

// ParsePartyType validates and normalizes a party type string.
func ParsePartyType(s string) (PartyType, error) {
	switch PartyType(s) {
	case PartyTypeCustomer:
		return PartyTypeCustomer, nil
	case PartyTypeVendor:
		return PartyTypeVendor, nil
	default:
		return "", ErrInvalidPartyType
	}
}

// Party represents a customer or vendor whose ledger the engine computes.
type Party struct {
	ID             string
	ShopID         string
	DisplayName    string
	Type           PartyType
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
