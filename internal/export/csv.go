// Package export renders ledger views as CSV for the print/share
// features. Callers pass a writer explicitly; nothing is registered
// globally.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// statementHeader matches the columns of the itemized statement view.
var statementHeader = []string{"date", "kind", "reference", "amount", "balance"}

// summaryHeader matches the columns of the outstanding balance view.
var summaryHeader = []string{"party_id", "name", "balance", "degraded"}

// WriteStatement renders a range statement as CSV. The first data row
// carries the opening balance brought forward into the window; amounts
// are plain decimal strings without currency symbols or separators.
func WriteStatement(w io.Writer, result *usecase.RangeResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(statementHeader); err != nil {
		return err
	}

	if err := cw.Write([]string{"", "opening", "", "", result.OpeningCarry.String()}); err != nil {
		return err
	}

	for _, row := range result.Rows {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.UTC().Format("2006-01-02")
		}

		if err := cw.Write([]string{
			date,
			string(row.Kind),
			row.SourceID,
			row.Amount.String(),
			row.RunningBalance.String(),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary renders an outstanding summary as CSV.
func WriteSummary(w io.Writer, rows []domain.SummaryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(summaryHeader); err != nil {
		return err
	}

	for _, row := range rows {
		if err := cw.Write([]string{
			row.PartyID,
			row.DisplayName,
			row.Balance.String(),
			strconv.FormatBool(row.Degraded),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
