package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
	"github.com/iho/shopledger/internal/usecase/mocks"
)

func TestPartyUseCase_CreateParty(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreatePartyInput
		setupWriter func(*mocks.MockDocumentWriter)
		expectErr   error
	}{
		{
			name: "customer with negative opening balance",
			input: usecase.CreatePartyInput{
				ShopID:         testShop,
				DisplayName:    "Sharma Opticals",
				Type:           domain.PartyTypeCustomer,
				OpeningBalance: decimal.NewFromInt(-200),
			},
			setupWriter: func(w *mocks.MockDocumentWriter) {
				w.EXPECT().CreateParty(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "empty display name rejected",
			input: usecase.CreatePartyInput{
				ShopID: testShop,
				Type:   domain.PartyTypeVendor,
			},
			setupWriter: func(w *mocks.MockDocumentWriter) {},
			expectErr:   domain.ErrInvalidDisplayName,
		},
		{
			name: "unknown party type rejected",
			input: usecase.CreatePartyInput{
				ShopID:      testShop,
				DisplayName: "Lens Depot",
				Type:        "supplier",
			},
			setupWriter: func(w *mocks.MockDocumentWriter) {},
			expectErr:   domain.ErrInvalidPartyType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockLedgerStore(ctrl)
			writer := mocks.NewMockDocumentWriter(ctrl)
			idGen := mocks.NewMockIDGenerator(ctrl)
			idGen.EXPECT().Generate().Return("01TESTULID").AnyTimes()
			tt.setupWriter(writer)

			uc := usecase.NewPartyUseCase(store, writer, idGen, nil)
			party, err := uc.CreateParty(context.Background(), tt.input)

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if party.ID != "01TESTULID" {
				t.Errorf("expected generated id, got %q", party.ID)
			}
			if !party.OpeningBalance.Equal(tt.input.OpeningBalance) {
				t.Errorf("opening balance mismatch: %s", party.OpeningBalance)
			}
		})
	}
}

func TestPartyUseCase_RecordInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLedgerStore(ctrl)
	store.EXPECT().GetParty(gomock.Any(), testShop, "cust-1").Return(customerParty("cust-1", 0), nil)

	writer := mocks.NewMockDocumentWriter(ctrl)
	var saved domain.RawDoc
	writer.EXPECT().SaveInvoice(gomock.Any(), testShop, "cust-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, doc domain.RawDoc) error {
			saved = doc
			return nil
		})

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01INVOICE")

	uc := usecase.NewPartyUseCase(store, writer, idGen, nil)

	doc, err := uc.RecordInvoice(context.Background(), usecase.RecordDocumentInput{
		ShopID:  testShop,
		PartyID: "cust-1",
		Date:    day(5),
		Amount:  decimal.RequireFromString("499.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("document was not saved")
	}
	if doc["totalAmount"] != "499.5" {
		t.Errorf("expected canonical totalAmount field, got %+v", doc)
	}
	if doc["date"] != "2024-03-05" {
		t.Errorf("expected ISO date, got %v", doc["date"])
	}
}

func TestPartyUseCase_RecordPayment_Direction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLedgerStore(ctrl)
	writer := mocks.NewMockDocumentWriter(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewPartyUseCase(store, writer, idGen, nil)

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		RecordDocumentInput: usecase.RecordDocumentInput{
			ShopID:  testShop,
			PartyID: "cust-1",
			Amount:  decimal.NewFromInt(100),
		},
		Direction: domain.EventKindInvoice,
	})
	if !errors.Is(err, domain.ErrUnknownEventKind) {
		t.Fatalf("expected ErrUnknownEventKind for bad direction, got %v", err)
	}
}

func TestPartyUseCase_RecordPurchase_UnknownParty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLedgerStore(ctrl)
	store.EXPECT().GetParty(gomock.Any(), testShop, "missing").Return(nil, domain.ErrPartyNotFound)

	writer := mocks.NewMockDocumentWriter(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewPartyUseCase(store, writer, idGen, nil)

	_, err := uc.RecordPurchase(context.Background(), usecase.RecordDocumentInput{
		ShopID:  testShop,
		PartyID: "missing",
		Amount:  decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
}
