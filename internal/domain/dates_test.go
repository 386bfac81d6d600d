package domain

import (
	"errors"
	"testing"
	"time"
)

type fakeTimestamp struct {
	t time.Time
}

func (f fakeTimestamp) ToDate() time.Time { return f.t }

func TestParseDate(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{"iso string", "2024-03-15", ref},
		{"rfc3339 string", "2024-03-15T00:00:00Z", ref},
		{"native time", ref, ref},
		{"time pointer", &ref, ref},
		{"timestamp object", fakeTimestamp{t: ref}, ref},
		{"epoch seconds", int64(1710460800), ref},
		{"epoch millis as float", float64(1710460800000), ref},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"garbage string", "yesterday-ish"},
		{"nil time pointer", (*time.Time)(nil)},
		{"unsupported type", struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if !errors.Is(err, ErrUnparseableDate) {
				t.Errorf("expected ErrUnparseableDate, got %v", err)
			}
		})
	}
}

func TestStartOfNextDay(t *testing.T) {
	at := time.Date(2024, time.March, 15, 18, 30, 12, 0, time.UTC)
	got := StartOfNextDay(at)
	want := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
