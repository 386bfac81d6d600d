package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "1500", "-200", "499.5", "0.01", "-0.005"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)

			got, err := numericToDecimal(decimalToNumeric(d))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(d) {
				t.Errorf("round trip changed %s to %s", d, got)
			}
		})
	}
}

func TestNumericToDecimal_Invalid(t *testing.T) {
	got, err := numericToDecimal(pgtype.Numeric{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero for null numeric, got %s", got)
	}

	if _, err := numericToDecimal(pgtype.Numeric{Valid: true, NaN: true}); err == nil {
		t.Error("expected error for NaN numeric")
	}
}
