package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
)

// PartyUseCase handles party onboarding and document entry. It is the
// only path that writes to the store; the ledger engine itself is
// read-only.
type PartyUseCase struct {
	store   LedgerStore
	writer  DocumentWriter
	idGen   IDGenerator
	metrics *metrics.Metrics
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(store LedgerStore, writer DocumentWriter, idGen IDGenerator, m *metrics.Metrics) *PartyUseCase {
	return &PartyUseCase{
		store:   store,
		writer:  writer,
		idGen:   idGen,
		metrics: m,
	}
}

// CreatePartyInput represents input for onboarding a party.
type CreatePartyInput struct {
	ShopID         string
	DisplayName    string
	Type           domain.PartyType
	OpeningBalance decimal.Decimal
}

// CreateParty onboards a customer or vendor. The opening balance may be
// negative: a customer in credit or a vendor the shop has prepaid.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	if err := domain.ValidateDisplayName(input.DisplayName); err != nil {
		return nil, err
	}
	if _, err := domain.ParsePartyType(string(input.Type)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	party := &domain.Party{
		ID:             uc.idGen.Generate(),
		ShopID:         input.ShopID,
		DisplayName:    input.DisplayName,
		Type:           input.Type,
		OpeningBalance: input.OpeningBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.writer.CreateParty(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by ID.
func (uc *PartyUseCase) GetParty(ctx context.Context, shopID, partyID string) (*domain.Party, error) {
	return uc.store.GetParty(ctx, shopID, partyID)
}

// ListParties lists all parties of one type for a shop.
func (uc *PartyUseCase) ListParties(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error) {
	if _, err := domain.ParsePartyType(string(partyType)); err != nil {
		return nil, err
	}
	return uc.store.ListParties(ctx, shopID, partyType)
}

// RecordDocumentInput represents input for recording an invoice or purchase.
type RecordDocumentInput struct {
	ShopID  string
	PartyID string
	Date    time.Time
	Amount  decimal.Decimal
}

// RecordPaymentInput represents input for recording a payment.
type RecordPaymentInput struct {
	RecordDocumentInput

	Direction domain.EventKind // received or paid
}

// RecordInvoice records a sale invoice document for a party.
func (uc *PartyUseCase) RecordInvoice(ctx context.Context, input RecordDocumentInput) (domain.RawDoc, error) {
	doc, err := uc.buildDocument(ctx, input, "totalAmount")
	if err != nil {
		return nil, err
	}

	if err := uc.writer.SaveInvoice(ctx, input.ShopID, input.PartyID, doc); err != nil {
		return nil, err
	}

	uc.countDocument("invoices")
	return doc, nil
}

// RecordPurchase records a purchase document for a party.
func (uc *PartyUseCase) RecordPurchase(ctx context.Context, input RecordDocumentInput) (domain.RawDoc, error) {
	doc, err := uc.buildDocument(ctx, input, "totalAmount")
	if err != nil {
		return nil, err
	}

	if err := uc.writer.SavePurchase(ctx, input.ShopID, input.PartyID, doc); err != nil {
		return nil, err
	}

	uc.countDocument("purchases")
	return doc, nil
}

// RecordPayment records a payment document for a party.
func (uc *PartyUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (domain.RawDoc, error) {
	if input.Direction != domain.EventKindReceived && input.Direction != domain.EventKindPaid {
		return nil, domain.ErrUnknownEventKind
	}

	doc, err := uc.buildDocument(ctx, input.RecordDocumentInput, "amount")
	if err != nil {
		return nil, err
	}
	doc["direction"] = string(input.Direction)

	if err := uc.writer.SaveTransaction(ctx, input.ShopID, input.PartyID, doc); err != nil {
		return nil, err
	}

	uc.countDocument("transactions")
	return doc, nil
}

// buildDocument validates shared fields and assembles the raw document
// in the canonical field names. New documents always use the modern
// names; the normalizer keeps accepting the legacy ones on read.
func (uc *PartyUseCase) buildDocument(ctx context.Context, input RecordDocumentInput, amountField string) (domain.RawDoc, error) {
	if err := domain.ValidateDocumentAmount(input.Amount); err != nil {
		return nil, err
	}

	if _, err := uc.store.GetParty(ctx, input.ShopID, input.PartyID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return domain.RawDoc{
		"id":        uc.idGen.Generate(),
		"date":      date.UTC().Format("2006-01-02"),
		amountField: input.Amount.String(),
	}, nil
}

func (uc *PartyUseCase) countDocument(collection string) {
	if uc.metrics != nil {
		uc.metrics.DocumentsRecorded.WithLabelValues(collection).Inc()
	}
}
