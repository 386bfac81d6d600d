package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

type partyServiceStub struct {
	createFn         func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	getFn            func(ctx context.Context, shopID, partyID string) (*domain.Party, error)
	listFn           func(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error)
	recordInvoiceFn  func(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error)
	recordPurchaseFn func(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error)
	recordPaymentFn  func(ctx context.Context, input usecase.RecordPaymentInput) (domain.RawDoc, error)
}

func (s *partyServiceStub) CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
	return s.createFn(ctx, input)
}

func (s *partyServiceStub) GetParty(ctx context.Context, shopID, partyID string) (*domain.Party, error) {
	return s.getFn(ctx, shopID, partyID)
}

func (s *partyServiceStub) ListParties(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error) {
	return s.listFn(ctx, shopID, partyType)
}

func (s *partyServiceStub) RecordInvoice(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error) {
	return s.recordInvoiceFn(ctx, input)
}

func (s *partyServiceStub) RecordPurchase(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error) {
	return s.recordPurchaseFn(ctx, input)
}

func (s *partyServiceStub) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (domain.RawDoc, error) {
	return s.recordPaymentFn(ctx, input)
}

func TestPartyHandler_Create_Success(t *testing.T) {
	party := &domain.Party{
		ID:             "p-1",
		ShopID:         "shop-1",
		DisplayName:    "Ravi Traders",
		Type:           domain.PartyTypeCustomer,
		OpeningBalance: decimal.RequireFromString("1000"),
	}

	var captured usecase.CreatePartyInput
	h := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			captured = input
			return party, nil
		},
	})

	body, _ := json.Marshal(dto.CreatePartyRequest{
		DisplayName:    "Ravi Traders",
		Type:           "customer",
		OpeningBalance: decimal.RequireFromString("1000"),
	})

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.DisplayName != "Ravi Traders" || captured.Type != domain.PartyTypeCustomer {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.PartyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "p-1" {
		t.Fatalf("expected party ID p-1, got %s", resp.ID)
	}
}

func TestPartyHandler_Create_InvalidType(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			return nil, domain.ErrInvalidPartyType
		},
	})

	body, _ := json.Marshal(dto.CreatePartyRequest{
		DisplayName: "Ravi Traders",
		Type:        "supplier",
	})

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_Get_NotFound(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		getFn: func(ctx context.Context, shopID, partyID string) (*domain.Party, error) {
			return nil, domain.ErrPartyNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/parties/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPartyHandler_List(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error) {
			return []*domain.Party{
				{ID: "p-1", Type: partyType},
				{ID: "p-2", Type: partyType},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/parties?type=vendor", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.PartyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(resp))
	}
}

func TestPartyHandler_List_MissingType(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/parties", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_RecordInvoice(t *testing.T) {
	var captured usecase.RecordDocumentInput
	h := NewPartyHandler(&partyServiceStub{
		recordInvoiceFn: func(ctx context.Context, input usecase.RecordDocumentInput) (domain.RawDoc, error) {
			captured = input
			return domain.RawDoc{"id": "doc-1"}, nil
		},
	})

	body, _ := json.Marshal(dto.RecordDocumentRequest{
		Date:   "2024-03-15",
		Amount: decimal.RequireFromString("500"),
	})

	req := httptest.NewRequest(http.MethodPost, "/parties/p-1/invoices", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "p-1")
	rec := httptest.NewRecorder()

	h.RecordInvoice(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.PartyID != "p-1" {
		t.Fatalf("expected party p-1, got %s", captured.PartyID)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !captured.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, captured.Date)
	}
}

func TestPartyHandler_RecordPayment_Direction(t *testing.T) {
	var captured usecase.RecordPaymentInput
	h := NewPartyHandler(&partyServiceStub{
		recordPaymentFn: func(ctx context.Context, input usecase.RecordPaymentInput) (domain.RawDoc, error) {
			captured = input
			return domain.RawDoc{"id": "txn-1"}, nil
		},
	})

	body := []byte(`{"date":"2024-03-15","amount":"200","direction":"received"}`)

	req := httptest.NewRequest(http.MethodPost, "/parties/p-1/payments", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "p-1")
	rec := httptest.NewRecorder()

	h.RecordPayment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Direction != domain.EventKindReceived {
		t.Fatalf("expected direction received, got %s", captured.Direction)
	}
}

func TestPartyHandler_RecordPayment_BadDate(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{})

	body := []byte(`{"date":"15/03/2024","amount":"200","direction":"paid"}`)

	req := httptest.NewRequest(http.MethodPost, "/parties/p-1/payments", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "p-1")
	rec := httptest.NewRecorder()

	h.RecordPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
