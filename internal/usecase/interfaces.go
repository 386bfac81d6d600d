package usecase

import (
	"context"
	"time"

	"github.com/iho/shopledger/internal/domain"
)

// LedgerStore is the read port over committed financial records. All
// methods are scoped to one shop; the engine never mutates what they
// return.
type LedgerStore interface {
	GetParty(ctx context.Context, shopID, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error)
	FetchInvoices(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error)
	FetchPurchases(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error)
	FetchTransactions(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error)
}

// DocumentWriter is the write port used by the document-entry endpoints.
type DocumentWriter interface {
	CreateParty(ctx context.Context, party *domain.Party) error
	SaveInvoice(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error
	SavePurchase(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error
	SaveTransaction(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error
}

// SummaryCache caches computed outstanding summaries.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
