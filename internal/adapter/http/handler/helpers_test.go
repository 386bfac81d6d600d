package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/iho/shopledger/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrPartyNotFound, http.StatusNotFound},
		{domain.ErrInvalidPartyType, http.StatusBadRequest},
		{domain.ErrInvalidRange, http.StatusBadRequest},
		{domain.ErrInvalidAsOfDate, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrAmountTooLarge, http.StatusBadRequest},
		{domain.ErrInvalidDisplayName, http.StatusBadRequest},
		{domain.ErrUnknownEventKind, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("load party: %w", domain.ErrPartyNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
