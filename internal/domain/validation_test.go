package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"valid name", "Sharma Opticals", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayName(tt.input)
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDocumentAmount(t *testing.T) {
	if err := ValidateDocumentAmount(decimal.NewFromInt(100)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDocumentAmount(decimal.Zero); err == nil {
		t.Error("expected error for zero amount")
	}
	if err := ValidateDocumentAmount(decimal.NewFromInt(-5)); err == nil {
		t.Error("expected error for negative amount")
	}
	if err := ValidateDocumentAmount(decimal.RequireFromString("2000000000")); err == nil {
		t.Error("expected error for amount above cap")
	}
}
