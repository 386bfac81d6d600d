package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
)

// Balances with a magnitude below this are settled for reporting
// purposes and excluded from the summary.
var epsilonBalance = decimal.RequireFromString("0.01")

// OutstandingConfig tunes the summary fan-out.
type OutstandingConfig struct {
	// Workers bounds the number of parties fetched concurrently.
	Workers int
	// FetchTimeout bounds the fetch for a single party; on expiry that
	// party degrades instead of stalling the whole summary.
	FetchTimeout time.Duration
	// CacheTTL is how long a computed summary may be served from cache.
	CacheTTL time.Duration
}

func (c OutstandingConfig) withDefaults() OutstandingConfig {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 5 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Minute
	}
	return c
}

// OutstandingUseCase produces the bulk "balance as of date" report across
// all parties of one type.
type OutstandingUseCase struct {
	store   LedgerStore
	cache   SummaryCache
	cfg     OutstandingConfig
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewOutstandingUseCase creates a new OutstandingUseCase. The cache may
// be nil, in which case every call computes from the store.
func NewOutstandingUseCase(store LedgerStore, cache SummaryCache, cfg OutstandingConfig, logger zerolog.Logger, m *metrics.Metrics) *OutstandingUseCase {
	return &OutstandingUseCase{
		store:   store,
		cache:   cache,
		cfg:     cfg.withDefaults(),
		logger:  logger,
		metrics: m,
	}
}

// GetOutstandingSummary returns one row per party of the given type whose
// balance as of asOf is at least a paisa in magnitude, largest balance
// first. The cutoff is the start of the day after asOf, so activity on
// the as-of day itself counts. A party whose records cannot be fetched
// yields a zero-balance row flagged Degraded instead of failing the
// report.
func (uc *OutstandingUseCase) GetOutstandingSummary(ctx context.Context, shopID string, partyType domain.PartyType, asOf time.Time) ([]domain.SummaryRow, error) {
	if _, err := domain.ParsePartyType(string(partyType)); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		return nil, domain.ErrInvalidAsOfDate
	}

	cacheKey := fmt.Sprintf("summary:%s:%s:%s", shopID, partyType, asOf.UTC().Format("2006-01-02"))
	if rows, ok := uc.cachedSummary(ctx, cacheKey); ok {
		return rows, nil
	}

	start := time.Now()
	cutoff := domain.StartOfNextDay(asOf)

	parties, err := uc.store.ListParties(ctx, shopID, partyType)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SummaryRow, len(parties))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < uc.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = uc.partyBalance(ctx, shopID, parties[i], cutoff)
			}
		}()
	}

	for i := range parties {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		// Caller gave up; partial results are discarded.
		return nil, err
	}

	rows := make([]domain.SummaryRow, 0, len(results))
	degraded := 0
	for _, row := range results {
		if row.Degraded {
			degraded++
		} else if row.Balance.Abs().LessThan(epsilonBalance) {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if cmp := rows[i].Balance.Cmp(rows[j].Balance); cmp != 0 {
			return cmp > 0
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})

	if uc.metrics != nil {
		uc.metrics.SummariesComputed.Inc()
		uc.metrics.SummaryDuration.Observe(time.Since(start).Seconds())
		uc.metrics.SummaryParties.Observe(float64(len(parties)))
		uc.metrics.DegradedRows.Add(float64(degraded))
	}

	uc.storeSummary(ctx, cacheKey, rows)

	return rows, nil
}

// partyBalance computes one summary row. Any fetch failure, including a
// per-party timeout, degrades the row rather than propagating.
func (uc *OutstandingUseCase) partyBalance(ctx context.Context, shopID string, party *domain.Party, cutoff time.Time) domain.SummaryRow {
	fetchCtx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	row := domain.SummaryRow{
		PartyID:     party.ID,
		DisplayName: party.DisplayName,
		Balance:     decimal.Zero,
	}

	balance, err := uc.fetchBalance(fetchCtx, shopID, party, cutoff)
	if err != nil {
		uc.logger.Warn().
			Err(err).
			Str("party_id", party.ID).
			Str("shop_id", shopID).
			Msg("party fetch failed, emitting degraded row")

		row.Degraded = true
		return row
	}

	row.Balance = balance
	return row
}

func (uc *OutstandingUseCase) fetchBalance(ctx context.Context, shopID string, party *domain.Party, cutoff time.Time) (decimal.Decimal, error) {
	invoices, err := uc.store.FetchInvoices(ctx, shopID, party.ID)
	if err != nil {
		return decimal.Zero, err
	}
	purchases, err := uc.store.FetchPurchases(ctx, shopID, party.ID)
	if err != nil {
		return decimal.Zero, err
	}
	transactions, err := uc.store.FetchTransactions(ctx, shopID, party.ID)
	if err != nil {
		return decimal.Zero, err
	}

	events, warnings := domain.Normalize(party.OpeningBalance, invoices, purchases, transactions)
	if uc.metrics != nil {
		uc.metrics.NormalizationWarnings.Add(float64(len(warnings)))
	}

	rows, err := domain.Reconcile(party.Type, events)
	if err != nil {
		return decimal.Zero, err
	}

	return domain.BalanceBefore(party.OpeningBalance, rows, cutoff), nil
}

func (uc *OutstandingUseCase) cachedSummary(ctx context.Context, key string) ([]domain.SummaryRow, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		if uc.metrics != nil {
			uc.metrics.SummaryCacheMisses.Inc()
		}
		return nil, false
	}

	var rows []domain.SummaryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		uc.logger.Debug().Err(err).Str("key", key).Msg("discarding unreadable cached summary")
		return nil, false
	}

	if uc.metrics != nil {
		uc.metrics.SummaryCacheHits.Inc()
	}
	return rows, true
}

func (uc *OutstandingUseCase) storeSummary(ctx context.Context, key string, rows []domain.SummaryRow) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cfg.CacheTTL); err != nil {
		uc.logger.Debug().Err(err).Str("key", key).Msg("failed to cache summary")
	}
}
