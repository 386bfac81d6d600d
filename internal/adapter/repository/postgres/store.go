package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/shopledger/internal/domain"
)

// Store implements usecase.LedgerStore and usecase.DocumentWriter over
// PostgreSQL. Parties live in a relational table; invoices, purchases and
// payment transactions are persisted as JSONB documents verbatim, which
// is why reads return raw documents for the normalizer to interpret.
type Store struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewStore creates a new Store.
func NewStore(pool *pgxpool.Pool, retrier *Retrier) *Store {
	return &Store{
		pool:    pool,
		retrier: retrier,
	}
}

const partyColumns = "id, shop_id, display_name, party_type, opening_balance, created_at, updated_at"

// GetParty retrieves one party scoped to a shop.
func (s *Store) GetParty(ctx context.Context, shopID, partyID string) (*domain.Party, error) {
	var party *domain.Party

	err := s.retry(ctx, func() error {
		row := s.pool.QueryRow(ctx,
			"SELECT "+partyColumns+" FROM parties WHERE shop_id = $1 AND id = $2",
			shopID, partyID,
		)

		p, err := scanParty(row)
		if err != nil {
			return err
		}
		party = p
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}

	return party, nil
}

// ListParties retrieves all parties of one type for a shop.
func (s *Store) ListParties(ctx context.Context, shopID string, partyType domain.PartyType) ([]*domain.Party, error) {
	var parties []*domain.Party

	err := s.retry(ctx, func() error {
		rows, err := s.pool.Query(ctx,
			"SELECT "+partyColumns+" FROM parties WHERE shop_id = $1 AND party_type = $2 ORDER BY display_name",
			shopID, string(partyType),
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		parties = parties[:0]
		for rows.Next() {
			p, err := scanParty(rows)
			if err != nil {
				return err
			}
			parties = append(parties, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return parties, nil
}

// FetchInvoices returns the raw invoice documents for a party.
func (s *Store) FetchInvoices(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error) {
	return s.fetchDocuments(ctx, "invoices", shopID, partyID)
}

// FetchPurchases returns the raw purchase documents for a party.
func (s *Store) FetchPurchases(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error) {
	return s.fetchDocuments(ctx, "purchases", shopID, partyID)
}

// FetchTransactions returns the raw payment documents for a party.
func (s *Store) FetchTransactions(ctx context.Context, shopID, partyID string) ([]domain.RawDoc, error) {
	return s.fetchDocuments(ctx, "transactions", shopID, partyID)
}

// fetchDocuments reads a whole JSONB collection for one party. The table
// name is always one of the three fixed collections, never user input.
func (s *Store) fetchDocuments(ctx context.Context, table, shopID, partyID string) ([]domain.RawDoc, error) {
	var docs []domain.RawDoc

	err := s.retry(ctx, func() error {
		rows, err := s.pool.Query(ctx,
			fmt.Sprintf("SELECT doc FROM %s WHERE shop_id = $1 AND party_id = $2 ORDER BY created_at, id", table),
			shopID, partyID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		docs = docs[:0]
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}

			var doc domain.RawDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("failed to decode %s document: %w", table, err)
			}
			docs = append(docs, doc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// CreateParty inserts a new party.
func (s *Store) CreateParty(ctx context.Context, party *domain.Party) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO parties (id, shop_id, display_name, party_type, opening_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		party.ID,
		party.ShopID,
		party.DisplayName,
		string(party.Type),
		decimalToNumeric(party.OpeningBalance),
		party.CreatedAt,
		party.UpdatedAt,
	)
	return err
}

// SaveInvoice persists a raw invoice document.
func (s *Store) SaveInvoice(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error {
	return s.saveDocument(ctx, "invoices", shopID, partyID, doc)
}

// SavePurchase persists a raw purchase document.
func (s *Store) SavePurchase(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error {
	return s.saveDocument(ctx, "purchases", shopID, partyID, doc)
}

// SaveTransaction persists a raw payment document.
func (s *Store) SaveTransaction(ctx context.Context, shopID, partyID string, doc domain.RawDoc) error {
	return s.saveDocument(ctx, "transactions", shopID, partyID, doc)
}

func (s *Store) saveDocument(ctx context.Context, table, shopID, partyID string, doc domain.RawDoc) error {
	id, _ := doc["id"].(string)

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", table, err)
	}

	_, err = s.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, shop_id, party_id, doc, created_at) VALUES ($1, $2, $3, $4, $5)`, table),
		id, shopID, partyID, raw, time.Now().UTC(),
	)
	return err
}

func (s *Store) retry(ctx context.Context, op func() error) error {
	if s.retrier == nil {
		return op()
	}
	return s.retrier.Retry(ctx, op)
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (*domain.Party, error) {
	var (
		p          domain.Party
		partyType  string
		openingBal pgtype.Numeric
		createdAt  time.Time
		updatedAt  time.Time
	)

	if err := row.Scan(&p.ID, &p.ShopID, &p.DisplayName, &partyType, &openingBal, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	opening, err := numericToDecimal(openingBal)
	if err != nil {
		return nil, err
	}

	p.Type = domain.PartyType(partyType)
	p.OpeningBalance = opening
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	return &p, nil
}
